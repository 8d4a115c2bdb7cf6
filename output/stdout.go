package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jakopako/cselect/types"
)

// StdoutWriter represents a writer that writes to stdout
type StdoutWriter struct {
	logger *slog.Logger
}

// NewStdoutWriter returns a new StdoutWriter
func NewStdoutWriter(wc *WriterConfig) *StdoutWriter {
	return &StdoutWriter{
		logger: slog.With(slog.String("writer", STDOUT_WRITER_TYPE)),
	}
}

func (w *StdoutWriter) Write(resultChan <-chan types.MatchResult) {
	for result := range resultChan {
		// We cannot use json.MarshalIndent directly because it automatically
		// replaces certain html characters with the corresponding Unicode
		// replacement rune and selectors are full of those characters. See
		// https://stackoverflow.com/questions/28595664/how-to-stop-json-marshal-from-escaping-and
		buffer := &bytes.Buffer{}
		encoder := json.NewEncoder(buffer)
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(result); err != nil {
			w.logger.Error(fmt.Sprintf("error while writing result %v: %v", result, err))
			continue
		}

		var indentBuffer bytes.Buffer
		if err := json.Indent(&indentBuffer, buffer.Bytes(), "", "  "); err != nil {
			w.logger.Error(fmt.Sprintf("error while writing result %v: %v", result, err))
			continue
		}
		fmt.Print(indentBuffer.String())
	}
}

func (w *StdoutWriter) WriteStatus(status *types.CheckStatus) {
	statusJson, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		w.logger.Error(fmt.Sprintf("error while marshalling status json: %v", err))
		return
	}
	w.logger.Info(fmt.Sprintf("printing check status for url '%s'", status.URL))
	fmt.Println(string(statusJson))
}
