package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes rendered files under the output root, creating
// directories as needed. Existing files are left untouched unless
// overwrite is set, in which case their content is fully replaced.
// Callers render everything before writing anything, so a failed run
// never leaves a partial artifact behind.
func WriteFiles(files []OutputFile, outDir string, overwrite bool) error {
	for _, file := range files {
		path := filepath.Join(outDir, file.Path)

		if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if !overwrite {
			if _, err := os.Stat(path); err == nil {
				logrus.WithField("path", path).Warn("file exists, not creating")
				continue
			} else if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}
		}

		if err := os.WriteFile(path, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path, err)
		}
		logrus.WithField("path", path).Debug("wrote file")
	}
	return nil
}
