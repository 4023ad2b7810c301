package glib

import (
	"os"
)

func FileExists(path string) bool {

	xFileInfo, xFileInfoErr := os.Stat(path)
	if xFileInfoErr != nil {
		return false
	}

	return !xFileInfo.IsDir()
}

func DirExists(path string) bool {

	xFileInfo, xFileInfoErr := os.Stat(path)
	if xFileInfoErr != nil {
		return false
	}

	return xFileInfo.IsDir()
}

// DirEnsure creates path and its parents when missing.
func DirEnsure(path string) error {
	if DirExists(path) {
		return nil
	}
	return os.MkdirAll(path, 0755)
}

func FileReadAllText(path string) string {

	xFileData, xFileDataErr := os.ReadFile(path)
	if xFileDataErr != nil {
		return ""
	}

	return string(xFileData)
}

func FileWriteAllText(path string, data string) bool {
	return os.WriteFile(path, []byte(data), 0644) == nil
}
