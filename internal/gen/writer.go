package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes the generated declarations to path.
// It creates the parent directory if it doesn't exist.
func WriteFile(out Output, path string) error {
	err := os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	err = os.WriteFile(path, []byte(out.Code), filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

// WriteTo writes the generated declarations to w.
func WriteTo(w io.Writer, out Output) error {
	_, err := io.WriteString(w, out.Code)
	if err != nil {
		return fmt.Errorf("writing %s: %w", out.Ident, err)
	}

	return nil
}
