package importexport

import "github.com/VictoriaMetrics/metrics"

var (
	importAcceptedRows  = metrics.NewCounter(`mycontact_import_rows_total{result="accepted"}`)
	importDuplicateRows = metrics.NewCounter(`mycontact_import_rows_total{result="duplicate"}`)
	importInvalidRows   = metrics.NewCounter(`mycontact_import_rows_total{result="invalid"}`)
	exportRuns          = metrics.NewCounter(`mycontact_export_runs_total`)
)
