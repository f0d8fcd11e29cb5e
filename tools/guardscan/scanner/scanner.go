package scanner

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/guardkit/guardkit-go/tools/guardscan/common"
)

const nameNotAvailable = "anonymous"

// GuardSite is one recognized guard call together with its static
// verdict.
type GuardSite struct {
	*GuardFuncInfo
	Verdict   Verdict
	Detail    string
	Classname string
	Funcname  string
	Receiver  string
	Filename  string
	Line      int
}

func (site *GuardSite) String() string {
	return fmt.Sprintf("%s at %s:%d in %s.%s", site.TargetFunc, site.Filename, site.Line, site.Classname, site.Funcname)
}

// Capitalized struct items are accessed outside this file
type GuardScanner struct {
	hintMap      GuardHints
	fset         *token.FileSet
	logWriter    *common.LogWriter
	moduleName   string
	funcName     string
	receiver     string
	packageName  string
	imports      []string
	sites        []*GuardSite
	filesScanned int
}

func NewGuardScanner(moduleName string) *GuardScanner {
	logWriter := common.GetLogWriter()
	if logWriter.VerboseLevel(2) {
		logWriter.Printf(">> Module: %s", moduleName)
	}

	return &GuardScanner{
		hintMap:    SetupHintMap(),
		fset:       token.NewFileSet(),
		logWriter:  logWriter,
		moduleName: moduleName,
		imports:    []string{},
		sites:      []*GuardSite{},
	}
}

// SetPackage names the package the next scanned files belong to.
func (gs *GuardScanner) SetPackage(packageName string) {
	if gs.logWriter.VerboseLevel(2) {
		gs.logWriter.Printf(">>   Package: %s", packageName)
	}
	gs.packageName = packageName
}

func (gs *GuardScanner) resetForFile(filePath string) {
	if gs.logWriter.VerboseLevel(2) {
		gs.logWriter.Printf(">>     File: %s", filePath)
	}
	gs.imports = []string{}
	gs.funcName = ""
	gs.receiver = ""
}

// ScanFile catalogs every guard call in one source file.
func (gs *GuardScanner) ScanFile(filePath string) error {
	gs.resetForFile(filePath)
	file, err := parser.ParseFile(gs.fset, filePath, nil, 0)
	if err != nil {
		return err
	}

	astutil.Apply(file, gs.applyPre, nil)
	gs.filesScanned++
	return nil
}

func (gs *GuardScanner) applyPre(c *astutil.Cursor) bool {
	switch node := c.Node().(type) {
	case *ast.ImportSpec:
		pathName, _ := strconv.Unquote(node.Path.Value)
		alias := ""
		if node.Name != nil {
			alias = node.Name.Name
		}
		if pathName == common.GuardPackage {
			qualifier := path.Base(pathName)
			if alias != "" {
				qualifier = alias
			}
			gs.imports = append(gs.imports, qualifier)
		}

	case *ast.FuncDecl:
		gs.funcName = nameNotAvailable
		if node.Name != nil {
			gs.funcName = node.Name.Name
		}
		gs.receiver = ""
		if recv := node.Recv; recv != nil && recv.NumFields() > 0 {
			if recvType := recv.List[0].Type; recvType != nil {
				gs.receiver = types.ExprString(recvType)
			}
		}

	case *ast.CallExpr:
		return gs.inspectCall(node)
	}
	return true
}

func (gs *GuardScanner) inspectCall(call *ast.CallExpr) bool {
	fun := call.Fun
	// An explicitly instantiated guard wraps the selector in an index
	// expression.
	switch idx := fun.(type) {
	case *ast.IndexExpr:
		fun = idx.X
	case *ast.IndexListExpr:
		fun = idx.X
	}

	selExpr, ok := fun.(*ast.SelectorExpr)
	if !ok {
		// A plain identifier call; recurse into its arguments.
		return true
	}

	qualifier := identName(selExpr.X)
	if qualifier == "" || !gs.importedQualifier(qualifier) {
		return true
	}
	hints := gs.hintMap.HintsForName(selExpr.Sel.Name)
	if hints == nil {
		return true
	}

	lhsIdx, rhsIdx := 0, 1
	if hints.HasOutput {
		lhsIdx, rhsIdx = 1, 2
	}
	lhs := resolveConstArg(call.Args, lhsIdx)
	rhs := resolveConstArg(call.Args, rhsIdx)
	verdict := staticVerdict(hints.Relation, lhs, rhs)

	detail := ""
	if verdict != VerdictUndecidable {
		detail = fmt.Sprintf("%s %s %s", lhs.ExactString(), hints.Relation.Symbol(), rhs.ExactString())
	}

	position := gs.fset.Position(selExpr.Pos())
	gs.sites = append(gs.sites, &GuardSite{
		GuardFuncInfo: hints,
		Verdict:       verdict,
		Detail:        detail,
		Classname:     gs.packageName,
		Funcname:      gs.funcName,
		Receiver:      gs.receiver,
		Filename:      position.Filename,
		Line:          position.Line,
	})
	// Keep descending; a guard can sit in another guard's arguments.
	return true
}

func identName(expr ast.Expr) string {
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

func (gs *GuardScanner) importedQualifier(name string) bool {
	for _, importName := range gs.imports {
		if importName == name {
			return true
		}
	}
	return false
}

// Sites returns every guard call cataloged so far.
func (gs *GuardScanner) Sites() []*GuardSite {
	return gs.sites
}

// Violations filters the catalog down to statically-decided rejections.
func (gs *GuardScanner) Violations() []*GuardSite {
	violations := []*GuardSite{}
	for _, site := range gs.sites {
		if site.Verdict == VerdictViolated {
			violations = append(violations, site)
		}
	}
	return violations
}

func (gs *GuardScanner) HasSites() bool {
	return len(gs.sites) > 0
}

func (gs *GuardScanner) FilesScanned() int {
	return gs.filesScanned
}

// IsGeneratedFile reports whether fileName is a catalog written by a
// previous scan.
func IsGeneratedFile(fileName string) bool {
	baseName := filepath.Base(fileName)
	return strings.HasSuffix(baseName, common.GeneratedSuffix)
}
