package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// sidecarName is the file holding the raw template output of filename when
// formatting failed, e.g. "zz_generated.mappy.unformatted.go".
func sidecarName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}

// WriteFiles writes files into outputDir, creating it when needed. Existing
// files are overwritten; the sidecar left by an earlier failed run of a Go
// file is removed.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		target := filepath.Join(outputDir, file.Filename)

		if err := os.WriteFile(target, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		if filepath.Ext(file.Filename) != ".go" {
			continue
		}

		stale := filepath.Join(outputDir, sidecarName(file.Filename))
		if err := os.Remove(stale); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing %s: %w", filepath.Base(stale), err)
		}
	}

	return nil
}

// writeDebugUnformatted stores unformatted output next to the intended file
// so that template errors can be inspected. Callers ignore its error.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, sidecarName(filename)), content, filePerm)
}
