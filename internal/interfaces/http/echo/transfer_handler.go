package echo

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	app "github.com/haanhduc/mycontact/internal/application/importexport"
)

// TransferHandler moves contacts in and out of the system as .xlsx
// workbooks.
type TransferHandler struct {
	runImport app.RunImport
	runExport app.RunExport
}

func NewTransferHandler(runImport app.RunImport, runExport app.RunExport) *TransferHandler {
	return &TransferHandler{runImport: runImport, runExport: runExport}
}

func (h *TransferHandler) ImportContacts(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "missing_file", "a file field is required")
	}

	upload, err := header.Open()
	if err != nil {
		return badRequest(c, "unreadable_file", "could not read the uploaded file")
	}
	defer upload.Close()

	data, err := io.ReadAll(upload)
	if err != nil {
		return badRequest(c, "unreadable_file", "could not read the uploaded file")
	}

	out, err := h.runImport.Execute(c.Request().Context(), app.RunImportInput{
		OwnerID: sessionFrom(c).UserID,
		Data:    data,
	})
	if err != nil {
		if errors.Is(err, app.ErrUnreadableFile) {
			return badRequest(c, "unreadable_file", "the file is not a readable spreadsheet")
		}
		return internalError(c, "failed to import contacts")
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *TransferHandler) ExportContacts(c echo.Context) error {
	out, err := h.runExport.Execute(c.Request().Context(), app.RunExportInput{
		OwnerID: sessionFrom(c).UserID,
	})
	if err != nil {
		return internalError(c, "failed to export contacts")
	}

	filename := fmt.Sprintf("contacts_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		out.Data)
}
