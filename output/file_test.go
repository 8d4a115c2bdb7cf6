package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jakopako/cselect/types"
)

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	w := NewFileWriter(&WriterConfig{Type: FILE_WRITER_TYPE, FilePath: path})

	resultChan := make(chan types.MatchResult)
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Write(resultChan)
	}()
	resultChan <- types.MatchResult{Name: "teasers", Selector: `a[href$=".png"]`, Count: 2}
	resultChan <- types.MatchResult{Name: "tags", Selector: ".tag", Count: 3}
	close(resultChan)
	<-done

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var results []types.MatchResult
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 || results[0].Name != "teasers" || results[1].Count != 3 {
		t.Fatalf("unexpected results in file: %+v", results)
	}
	// html characters in selectors must survive unescaped
	if !strings.Contains(string(data), `a[href$=".png"]`) {
		t.Fatalf("selector was escaped in output: %s", data)
	}
}

func TestNewWriter(t *testing.T) {
	tests := []struct {
		name     string
		wc       WriterConfig
		expectOk bool
	}{
		{name: "stdout", wc: WriterConfig{Type: STDOUT_WRITER_TYPE}, expectOk: true},
		{name: "default is stdout", wc: WriterConfig{}, expectOk: true},
		{name: "file", wc: WriterConfig{Type: FILE_WRITER_TYPE, FilePath: "x.json"}, expectOk: true},
		{name: "unknown", wc: WriterConfig{Type: "kafka"}, expectOk: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, err := NewWriter(&tc.wc)
			if tc.expectOk && (err != nil || w == nil) {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.expectOk && err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
