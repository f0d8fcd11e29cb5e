// Package internal carries the structured output channel shared by the
// guard package. Records are emitted as JSON lines to the file named by
// the GUARDKIT_LOCAL_OUTPUT environment variable; when it is unset,
// emission is a no-op with minimal overhead.
package internal

import (
	"encoding/json"
	"log"
	"os"
)

// LocalOutputEnvVar names the file that receives guard records.
const LocalOutputEnvVar = "GUARDKIT_LOCAL_OUTPUT"

const errorLogLinePrefix = "[* guardkit *]"

type outputHandler interface {
	output(message string)
}

var handler outputHandler = openLocalHandler()

// JSONData marshals v and emits it as a single output line.
func JSONData(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	handler.output(string(data))
	return nil
}

type localHandler struct {
	outputFile *os.File // can be nil
}

func (h *localHandler) output(message string) {
	if h.outputFile != nil {
		h.outputFile.WriteString(message + "\n")
	}
}

// If LocalOutputEnvVar is set to a non-empty path, attempt to open that
// path and truncate the file to serve as the emission log. Otherwise there
// is no log file, and emission is a no-op.
func openLocalHandler() *localHandler {
	path, isSet := os.LookupEnv(LocalOutputEnvVar)
	if !isSet || len(path) == 0 {
		return &localHandler{nil}
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		log.Printf("%s Failed to open path %s: %v", errorLogLinePrefix, path, err)
		file = nil
	} else if err = file.Truncate(0); err != nil {
		log.Printf("%s Failed to truncate file at %s: %v", errorLogLinePrefix, path, err)
		file = nil
	}

	return &localHandler{file}
}
