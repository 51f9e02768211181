package surface

import (
	"encoding/json"
	"io"

	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

// JSONRenderer marshals a ComputedReport to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, report *scoring.ComputedReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
