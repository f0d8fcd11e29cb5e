package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

type CommandArgs struct {
	ShowVersion  bool
	InvalidArgs  bool
	LogfileName  string
	Verbosity    int
	WantsCatalog bool
	CatalogDir   string
	CatalogPkg   string
	InputDir     string
}

//go:embed version.txt
var versionString string

func parseArgs() *CommandArgs {
	versionPtr := flag.Bool("version", false, "the current version of this application")
	logfilePtr := flag.String("logfile", "", "file path to log into (default=stderr)")
	verbosePtr := flag.Int("V", 0, "verbosity level (default to 0)")
	checkOnlyPtr := flag.Bool("check_only", false, "report static verdicts ONLY - no guard catalog generation (default to false)")
	catalogDirPtr := flag.String("catalog_dir", "", "directory where the guard catalog will be generated (default: the input directory)")
	catalogPkgPtr := flag.String("catalog_pkg", "main", "package clause for the generated guard catalog")
	flag.Parse()

	cmdArgs := CommandArgs{
		InvalidArgs: false,
		ShowVersion: *versionPtr,
	}

	if cmdArgs.ShowVersion {
		return &cmdArgs
	}

	cmdArgs.LogfileName = strings.TrimSpace(*logfilePtr)
	cmdArgs.Verbosity = *verbosePtr
	cmdArgs.WantsCatalog = !*checkOnlyPtr
	cmdArgs.CatalogDir = strings.TrimSpace(*catalogDirPtr)
	cmdArgs.CatalogPkg = strings.TrimSpace(*catalogPkgPtr)

	if flag.NArg() < 1 {
		flag.Usage()
		fmt.Fprint(os.Stderr, "\nThis program requires:\n")
		fmt.Fprintf(os.Stderr, "- An input directory of Golang source to be scanned for guards\n")
		cmdArgs.InvalidArgs = true
		return &cmdArgs
	}

	cmdArgs.InputDir = flag.Arg(0)
	return &cmdArgs
}

// GetModuleName reads the module path from the go.mod of the scanned
// directory.
func GetModuleName(inputDir string) (string, error) {
	modFilePath := filepath.Join(inputDir, "go.mod")
	moduleData, err := os.ReadFile(modFilePath)
	if err != nil {
		return "", err
	}

	f, err := modfile.ParseLax("go.mod", moduleData, nil)
	if err != nil {
		return "", err
	}
	return f.Module.Mod.Path, nil
}
