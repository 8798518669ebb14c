package sink

import (
	"fmt"
	"path/filepath"

	"github.com/rs/xid"
	"github.com/spf13/afero"
)

// writeFile writes bs next to path under a temporary name, then renames it
// into place, so path either holds the complete content or is left untouched.
func writeFile(fs afero.Fs, path string, bs []byte) error {
	dir := filepath.Dir(path)
	if exists, err := afero.DirExists(fs, dir); err != nil {
		return err
	} else if !exists {
		if err2 := fs.MkdirAll(dir, 0755); err2 != nil {
			return err2
		}
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp", xid.New().String()))
	if err := afero.WriteFile(fs, tmp, bs, 0644); err != nil {
		_ = fs.Remove(tmp)
		return err
	}

	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return err
	}

	return nil
}
