package guard

import (
	"fmt"
	"path"
	"runtime"
	"strings"
)

// stackFrameOffset selects how many frames above newLocationInfo the
// reported call site sits. Order matters here since iota is being used.
type stackFrameOffset int

const (
	offsetNewLocationInfo stackFrameOffset = iota
	offsetHere
	offsetAPICaller
	offsetAPICallersCaller
)

// locationInfo identifies the call site of a guard as captured at
// evaluation time.
type locationInfo struct {
	Package  string `json:"package"`
	Function string `json:"function"`
	Filename string `json:"filename"`
	Line     int    `json:"line"`
}

func newLocationInfo(nframes stackFrameOffset) *locationInfo {
	function := "*function*"
	pkg := "*package*"
	pc, filename, line, ok := runtime.Caller(int(nframes))
	if !ok {
		filename = "*filename*"
		line = 0
	} else if fn := runtime.FuncForPC(pc); fn != nil {
		fullname := fn.Name()
		if ext := path.Ext(fullname); ext != "" {
			function = ext[1:]
			pkg, _ = strings.CutSuffix(fullname, ext)
		}
	}
	return &locationInfo{pkg, function, filename, line}
}

func makeKey(loc *locationInfo) string {
	return fmt.Sprintf("%s|%d", loc.Filename, loc.Line)
}
