package common

import (
	"os"
	"path/filepath"
)

// GetAbsoluteDirectory resolves path to an absolute directory, failing
// fast when it does not exist or is not a directory.
func GetAbsoluteDirectory(path string) string {
	logWriter := GetLogWriter()
	absPath, err := filepath.Abs(path)
	if err != nil {
		logWriter.Fatalf("unable to resolve %q: %v", path, err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		logWriter.Fatalf("unable to stat %q: %v", absPath, err)
	}
	if !info.IsDir() {
		logWriter.Fatalf("%q is not a directory", absPath)
	}
	return absPath
}
