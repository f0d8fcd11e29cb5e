package common

import "strings"

// GuardPackage is the import path whose calls the scanner recognizes.
const GuardPackage = "github.com/guardkit/guardkit-go/guard"

// GeneratedSuffix marks catalog files written by the scanner. Files with
// this suffix are skipped on later scans.
const GeneratedSuffix = "_guard_catalog.go"

// MangleModuleName flattens a module path into a single path component
// usable as a file name.
func MangleModuleName(moduleName string) string {
	flattened := strings.ReplaceAll(moduleName, "\\", "_V_")
	return strings.ReplaceAll(flattened, "/", "_V_")
}
