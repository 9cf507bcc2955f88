// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"genevision/pkg/api"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes the report as a single pretty-indented v1 document.
func WriteJSON(w io.Writer, r api.ReportV1) error {
	return EncodePretty(w, r)
}
