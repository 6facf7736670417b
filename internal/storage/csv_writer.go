package storage

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"bin-tally/internal/inventory"
	"bin-tally/internal/logger"

	"github.com/spf13/afero"
)

const (
	Header           = "bin,part,qty"
	Delimiter        = ","
	DefaultExtension = "csv"
)

// CSVWriter writes each bin to <dir>/<bin_id>.<ext>, replacing any
// previous file. Fields are joined without quoting, so a bin or part
// identifier that contains the delimiter produces a malformed row.
type CSVWriter struct {
	fs        afero.Fs
	dir       string
	extension string
	logger    logger.Logger
}

func NewCSVWriter(fs afero.Fs, dir, extension string, log logger.Logger) *CSVWriter {
	extension = strings.TrimPrefix(extension, ".")
	if extension == "" {
		extension = DefaultExtension
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	return &CSVWriter{
		fs:        fs,
		dir:       dir,
		extension: extension,
		logger:    log,
	}
}

// Path returns the file a bin is written to.
func (w *CSVWriter) Path(binID string) string {
	return filepath.Join(w.dir, binID+"."+w.extension)
}

func (w *CSVWriter) Flush(snapshot inventory.Snapshot) error {
	if snapshot.BinID == "" {
		return nil
	}

	path := w.Path(snapshot.BinID)
	data := Encode(snapshot)

	if err := afero.WriteFile(w.fs, path, data, 0o644); err != nil {
		w.logger.Error("CSVWriter", err, map[string]interface{}{
			"path": path,
			"bin":  snapshot.BinID,
		})
		return fmt.Errorf("write bin %s to %s: %w", snapshot.BinID, path, err)
	}

	w.logger.Info("CSVWriter", "bin saved", map[string]interface{}{
		"path":  path,
		"bin":   snapshot.BinID,
		"parts": len(snapshot.Entries),
		"total": snapshot.TotalQuantity(),
		"bytes": len(data),
	})
	return nil
}

// Encode renders the header and one row per entry, newline terminated.
func Encode(snapshot inventory.Snapshot) []byte {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, e := range snapshot.Entries {
		b.WriteString(strings.Join([]string{
			snapshot.BinID,
			e.PartNumber,
			strconv.Itoa(e.Quantity),
		}, Delimiter))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
