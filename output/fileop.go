package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// checkDest refuses to replace anything but a regular file, and a regular
// file only when overwrite is set.
func checkDest(dest string, overwrite bool) error {
	destFileInfo, err := os.Stat(dest)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat destination file %q: %w", dest, err)
		}
		return nil
	}

	if !destFileInfo.Mode().IsRegular() {
		return fmt.Errorf("cannot replace non-regular file %q: %s", destFileInfo.Name(), destFileInfo.Mode().String())
	}
	if !overwrite {
		return fmt.Errorf("destination file already exists: %q", destFileInfo.Name())
	}
	return nil
}
