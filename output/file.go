package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/jakopako/cselect/types"
)

type FileWriter struct {
	writerConfig *WriterConfig
}

// NewFileWriter returns a new FileWriter
func NewFileWriter(wc *WriterConfig) *FileWriter {
	return &FileWriter{
		writerConfig: wc,
	}
}

func (fr *FileWriter) Write(resultChan <-chan types.MatchResult) {
	logger := slog.With(slog.String("writer", FILE_WRITER_TYPE))
	f, err := os.Create(fr.writerConfig.FilePath)
	if err != nil {
		logger.Error(fmt.Sprintf("error while trying to open file: %v", err))
		os.Exit(1)
	}
	defer f.Close()
	allResults := []types.MatchResult{}
	for result := range resultChan {
		allResults = append(allResults, result)
	}

	// html characters must not be escaped, see the comment in stdout.go
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(allResults); err != nil {
		logger.Error(fmt.Sprintf("error while encoding results: %v", err))
		return
	}

	var indentBuffer bytes.Buffer
	if err := json.Indent(&indentBuffer, buffer.Bytes(), "", "  "); err != nil {
		logger.Error(fmt.Sprintf("error while indenting json: %v", err))
		return
	}
	if _, err = f.Write(indentBuffer.Bytes()); err != nil {
		logger.Error(fmt.Sprintf("error while writing json to file: %v", err))
	} else {
		logger.Info(fmt.Sprintf("wrote %d results to file %s", len(allResults), fr.writerConfig.FilePath))
	}
}

func (fr *FileWriter) WriteStatus(status *types.CheckStatus) {
	// TODO implement WriteStatus for FileWriter
}
