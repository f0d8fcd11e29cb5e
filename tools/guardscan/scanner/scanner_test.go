package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureSource = `package demo

import (
	"github.com/guardkit/guardkit-go/guard"
)

const limit = 9

type worker struct{}

func (w *worker) run(n int) {
	guard.IfLess(3, 5)
	guard.IfLess(5, 3)
	guard.IfLessOutput(uint(0), 7, limit)
	guard.IfGreaterOrEqual(n, 4)
	guard.IfEqual(6, 6)
}
`

const aliasedSource = `package demo

import (
	g "github.com/guardkit/guardkit-go/guard"
)

func check() {
	g.IfGreaterOutput(0, 4, 7)
}
`

const unrelatedSource = `package demo

import (
	"example.com/other/guard"
)

func check() {
	guard.IfLess(5, 3)
}
`

const nestedSource = `package demo

import (
	"fmt"

	"github.com/guardkit/guardkit-go/guard"
)

func check() string {
	return fmt.Sprintf("%d", guard.IfLessOutput(0, 5, 3))
}
`

const guardInGuardSource = `package demo

import (
	"github.com/guardkit/guardkit-go/guard"
)

func check() int {
	return guard.IfLessOutput(guard.IfEqualOutput(0, 6, 6), 3, 5)
}
`

const instantiatedSource = `package demo

import (
	"github.com/guardkit/guardkit-go/guard"
)

func check() {
	guard.IfLessOutput[uint](uint(0), 5, 3)
}
`

func writeFixture(t *testing.T, name, source string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte(source), 0644))
	return filePath
}

func scanSource(t *testing.T, source string) *GuardScanner {
	t.Helper()
	gs := NewGuardScanner("example.com/demo")
	gs.SetPackage("demo")
	require.NoError(t, gs.ScanFile(writeFixture(t, "fixture.go", source)))
	return gs
}

func TestScanFileCatalogsGuardSites(t *testing.T) {
	gs := scanSource(t, fixtureSource)

	sites := gs.Sites()
	require.Len(t, sites, 5)
	require.True(t, gs.HasSites())
	require.Equal(t, 1, gs.FilesScanned())

	wantVerdicts := []Verdict{
		VerdictSatisfied,
		VerdictViolated,
		VerdictSatisfied,
		VerdictUndecidable,
		VerdictSatisfied,
	}
	wantFuncs := []string{"IfLess", "IfLess", "IfLessOutput", "IfGreaterOrEqual", "IfEqual"}
	for i, site := range sites {
		require.Equal(t, wantFuncs[i], site.TargetFunc, "site %d", i)
		require.Equal(t, wantVerdicts[i], site.Verdict, "site %d", i)
		require.Equal(t, "demo", site.Classname)
		require.Equal(t, "run", site.Funcname)
		require.Equal(t, "*worker", site.Receiver)
		require.Greater(t, site.Line, 0)
	}
	require.Equal(t, "5 < 3", sites[1].Detail)
	require.Equal(t, "7 < 9", sites[2].Detail)
	require.Empty(t, sites[3].Detail)

	violations := gs.Violations()
	require.Len(t, violations, 1)
	require.Equal(t, "5 < 3", violations[0].Detail)
}

func TestScanFileAliasedImport(t *testing.T) {
	gs := scanSource(t, aliasedSource)

	sites := gs.Sites()
	require.Len(t, sites, 1)
	require.Equal(t, "IfGreaterOutput", sites[0].TargetFunc)
	require.Equal(t, VerdictViolated, sites[0].Verdict)
	require.Equal(t, "4 > 7", sites[0].Detail)
	require.Equal(t, "check", sites[0].Funcname)
	require.Empty(t, sites[0].Receiver)
}

func TestScanFileIgnoresUnrelatedGuardPackage(t *testing.T) {
	gs := scanSource(t, unrelatedSource)
	require.Empty(t, gs.Sites())
}

func TestScanFileGuardNestedInOtherCall(t *testing.T) {
	gs := scanSource(t, nestedSource)

	sites := gs.Sites()
	require.Len(t, sites, 1)
	require.Equal(t, "IfLessOutput", sites[0].TargetFunc)
	require.Equal(t, VerdictViolated, sites[0].Verdict)
	require.Equal(t, "5 < 3", sites[0].Detail)
}

func TestScanFileGuardInGuardArguments(t *testing.T) {
	gs := scanSource(t, guardInGuardSource)

	sites := gs.Sites()
	require.Len(t, sites, 2)
	require.Equal(t, "IfLessOutput", sites[0].TargetFunc)
	require.Equal(t, VerdictSatisfied, sites[0].Verdict)
	require.Equal(t, "IfEqualOutput", sites[1].TargetFunc)
	require.Equal(t, VerdictSatisfied, sites[1].Verdict)
	require.Equal(t, "6 == 6", sites[1].Detail)
}

func TestScanFileExplicitInstantiation(t *testing.T) {
	gs := scanSource(t, instantiatedSource)

	sites := gs.Sites()
	require.Len(t, sites, 1)
	require.Equal(t, "IfLessOutput", sites[0].TargetFunc)
	require.Equal(t, VerdictViolated, sites[0].Verdict)
	require.Equal(t, "5 < 3", sites[0].Detail)
}

func TestWriteGuardCatalog(t *testing.T) {
	gs := scanSource(t, fixtureSource)

	destDir := t.TempDir()
	destPath := filepath.Join(destDir, "example.com_V_demo")
	require.NoError(t, gs.WriteGuardCatalog(destPath, "main", "v0.0.0-test"))

	generated, err := os.ReadFile(destPath + "_guard_catalog.go")
	require.NoError(t, err)
	catalog := string(generated)
	require.Contains(t, catalog, "package main")
	require.Contains(t, catalog, `guard "github.com/guardkit/guardkit-go/guard"`)
	require.Contains(t, catalog, `guard.RegisterSiteRaw("IfLess", "demo", "run"`)
	require.Contains(t, catalog, "Code generated by guardscan v0.0.0-test")
}

func TestWriteGuardCatalogBadDestination(t *testing.T) {
	gs := scanSource(t, fixtureSource)

	destPath := filepath.Join(t.TempDir(), "no-such-dir", "example.com_V_demo")
	require.Error(t, gs.WriteGuardCatalog(destPath, "main", "v0.0.0-test"))
}

func TestIsGeneratedFile(t *testing.T) {
	require.True(t, IsGeneratedFile("/tmp/out/example.com_V_demo_guard_catalog.go"))
	require.False(t, IsGeneratedFile("/tmp/out/scanner.go"))
}
