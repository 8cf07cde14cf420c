package importexport

import "strings"

// NormalizePhone restores the leading zero a spreadsheet drops when it
// treats a 10-digit local number as numeric. Only an all-digit token of
// exactly 9 characters not already starting with "0" is touched; every
// other input passes through trimmed but unchanged.
func NormalizePhone(raw string) string {
	token := strings.TrimSpace(raw)
	if len(token) != 9 || token[0] == '0' {
		return token
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return token
		}
	}
	return "0" + token
}
