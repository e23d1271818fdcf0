package layout

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON dumps recorded draw instructions as JSON for inspection or
// visualization.
func WriteDebugJSON(ops []Op, path string) error {
	data, err := json.MarshalIndent(ops, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
