// Guardscan catalogs every ordering-guard call site in a target module
// and decides, at build time, the guards whose operands are compile-time
// constants. A statically-violated guard fails the scan with a non-zero
// exit status, which turns a would-be runtime rejection into a build
// failure. Unless -check_only is given, guardscan also generates a guard
// catalog file that registers each discovered site with the guard
// package, so dormant guards can be reported after a run.
//
// Typical use from the module to be checked:
//
//	guardscan -catalog_dir . .
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"github.com/guardkit/guardkit-go/tools/guardscan/common"
	"github.com/guardkit/guardkit-go/tools/guardscan/scanner"
)

func main() {
	cmdArgs := parseArgs()
	if cmdArgs.InvalidArgs {
		os.Exit(2)
	}
	if cmdArgs.ShowVersion {
		fmt.Println(versionString)
		return
	}

	logWriter := common.NewLogWriter(cmdArgs.LogfileName, cmdArgs.Verbosity)

	inputDir := common.GetAbsoluteDirectory(cmdArgs.InputDir)
	moduleName, err := GetModuleName(inputDir)
	if err != nil {
		logWriter.Fatalf("unable to obtain go module name from %q: %v", inputDir, err)
	}

	gs := scanner.NewGuardScanner(moduleName)

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedCompiledGoFiles | packages.NeedModule,
		Dir:  inputDir,
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		logWriter.Fatalf("unable to load packages under %q: %v", inputDir, err)
	}

	for _, pkg := range pkgs {
		gs.SetPackage(pkg.Name)
		for _, filePath := range pkg.CompiledGoFiles {
			if scanner.IsGeneratedFile(filePath) {
				continue
			}
			if err := gs.ScanFile(filePath); err != nil {
				logWriter.Errorf("unable to scan %q: %v", filePath, err)
			}
		}
	}

	for _, site := range gs.Sites() {
		switch site.Verdict {
		case scanner.VerdictSatisfied:
			logWriter.Debugf("%s holds (%s)", site, site.Detail)
		case scanner.VerdictUndecidable:
			logWriter.Debugf("%s is not constant; deferred to the evaluation boundary", site)
		}
	}

	if cmdArgs.WantsCatalog && gs.HasSites() {
		catalogDir := cmdArgs.CatalogDir
		if catalogDir == "" {
			catalogDir = inputDir
		}
		catalogPath := filepath.Join(catalogDir, common.MangleModuleName(moduleName))
		if err := gs.WriteGuardCatalog(catalogPath, cmdArgs.CatalogPkg, versionString); err != nil {
			logWriter.Fatalf("unable to write guard catalog: %v", err)
		}
	}

	violations := gs.Violations()
	for _, site := range violations {
		logWriter.Errorf("%s cannot hold (%s is false for every execution)", site, site.Detail)
	}
	logWriter.Printf("guardscan: %d files, %d guard sites, %d static violations",
		gs.FilesScanned(), len(gs.Sites()), len(violations))
	if len(violations) > 0 {
		os.Exit(1)
	}
}
