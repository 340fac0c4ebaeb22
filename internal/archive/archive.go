// Package archive builds the zip payload uploaded on publish.
package archive

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/drnpkg/drn/internal/manifest"
)

// DepsDir is the installed-dependencies directory excluded from archives.
const DepsDir = "drn_modules"

// Build walks root and returns a zip of its files as an in-memory buffer.
// Excluded: the drn_modules subtree, the manifest file itself, and any *.zip.
// Entries use forward-slash paths relative to root and maximum compression.
func Build(root string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == DepsDir {
				return filepath.SkipDir
			}
			return nil
		}
		if excluded(rel) {
			return nil
		}
		return addFile(zw, path, filepath.ToSlash(rel))
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

func excluded(rel string) bool {
	if rel == manifest.FileName {
		return true
	}
	return strings.HasSuffix(rel, ".zip")
}

func addFile(zw *zip.Writer, path, rel string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := zw.Create(rel)
	if err != nil {
		return fmt.Errorf("add %s: %w", rel, err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("compress %s: %w", rel, err)
	}
	return nil
}
