package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalHandlerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guardkit-test.log")
	os.Setenv(LocalOutputEnvVar, path)
	defer os.Unsetenv(LocalOutputEnvVar)
	handler = openLocalHandler()
	if err := JSONData(map[string]string{"test": "output"}); err != nil {
		t.Fatal(err)
	}
	handler.(*localHandler).outputFile.Close()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var result map[string]string
	if err = json.Unmarshal(data, &result); err != nil {
		t.Fatal(err)
	}
	if result["test"] != "output" {
		t.Error("JSON does not roundtrip")
	}
}

func TestLocalHandlerNop(t *testing.T) {
	os.Setenv(LocalOutputEnvVar, "")
	defer os.Unsetenv(LocalOutputEnvVar)
	handler = openLocalHandler()
	if err := JSONData(map[string]string{"test": "output"}); err != nil {
		t.Fatal(err)
	}
	h, valid := handler.(*localHandler)
	if !valid {
		t.Fatal("not using the local handler")
	}
	if h.outputFile != nil {
		t.Error("should not be outputting to file")
	}
}

func TestJSONDataMarshalError(t *testing.T) {
	os.Setenv(LocalOutputEnvVar, "")
	defer os.Unsetenv(LocalOutputEnvVar)
	handler = openLocalHandler()
	if err := JSONData(make(chan int)); err == nil {
		t.Error("expected a marshal error for an unsupported type")
	}
}
