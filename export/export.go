// Package export writes the harvested comment tree to disk.
package export

import (
	"encoding/json"
	"fmt"

	"ytcomb/youtube"
)

// WriteJSON writes the export to path as indented JSON. The write is atomic:
// an existing file keeps its previous content if anything fails.
func WriteJSON(path string, channel youtube.ChannelExport) error {
	w, err := newAtomicWriter(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(channel); err != nil {
		w.Abort()
		return fmt.Errorf("export: encode: %w", err)
	}

	if err := w.Commit(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
