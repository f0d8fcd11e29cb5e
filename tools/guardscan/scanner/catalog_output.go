package scanner

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"text/template"
	"time"

	"github.com/guardkit/guardkit-go/tools/guardscan/common"
)

// GenInfo feeds the catalog template.
type GenInfo struct {
	GuardPackageName string
	PackageName      string
	VersionText      string
	CreateDate       string
	Sites            []*GuardSite
}

const catalogTemplate = `// Code generated by guardscan {{.VersionText}} on {{.CreateDate}} - do not edit.

package {{.PackageName}}

import (
	guard {{textRepr .GuardPackageName}}
)

func init() {
{{- range .Sites}}
	guard.RegisterSiteRaw({{textRepr .TargetFunc}}, {{textRepr .Classname}}, {{textRepr .Funcname}}, {{textRepr .Filename}}, {{.Line}})
{{- end}}
}
`

func textRepr(s string) string {
	return strconv.Quote(s)
}

// catalogOutputFile opens (and truncates) the generated catalog next to
// destPath, whose final component is the mangled module name.
func catalogOutputFile(destPath string, logWriter *common.LogWriter) (*os.File, error) {
	dirName, fileName := path.Split(destPath)
	generatedName := fmt.Sprintf("%s%s", fileName, common.GeneratedSuffix)
	outputFileName := path.Join(dirName, generatedName)

	var file *os.File
	var err error
	if file, err = os.OpenFile(outputFileName, os.O_RDWR|os.O_CREATE, 0644); err != nil {
		file = nil
	}
	if file != nil {
		if err = file.Truncate(0); err != nil {
			file.Close()
			file = nil
		}
	}
	if err == nil {
		logWriter.Printf("Guard catalog: %q", outputFileName)
	} else {
		logWriter.Printf("Unable to generate guard catalog: %q", outputFileName)
	}
	return file, err
}

// WriteGuardCatalog generates a source file that registers every
// cataloged guard site with the guard package at init time.
func (gs *GuardScanner) WriteGuardCatalog(destPath, packageName, versionText string) error {
	createDate := time.Now().Format("Mon Jan 2 15:04:05 MST 2006")

	genInfo := GenInfo{
		GuardPackageName: common.GuardPackage,
		PackageName:      packageName,
		VersionText:      versionText,
		CreateDate:       createDate,
		Sites:            gs.sites,
	}

	tmpl := template.New("catalog").Funcs(template.FuncMap{
		"textRepr": textRepr,
	})
	tmpl, err := tmpl.Parse(catalogTemplate)
	if err != nil {
		return err
	}

	outFile, err := catalogOutputFile(destPath, gs.logWriter)
	if err != nil {
		return err
	}
	defer outFile.Close()

	return tmpl.Execute(outFile, &genInfo)
}
