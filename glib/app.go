package glib

import (
	"os"
	"path/filepath"
)

func AppBaseDir() string {

	xFilePath, xFilePathErr := filepath.Abs(os.Args[0])
	if xFilePathErr != nil {
		return ""
	}

	return filepath.Dir(xFilePath)
}

// AppPath resolves p against the executable directory unless it is
// already absolute.
func AppPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(AppBaseDir(), p)
}
