// Package output provides the interface and configuration for writers
package output

import (
	"fmt"

	"github.com/jakopako/cselect/types"
)

// Writer defines the interface for all writers that are responsible
// for writing the check results to a specific output, eg. stdout.
type Writer interface {
	Write(resultChan <-chan types.MatchResult)
	WriteStatus(status *types.CheckStatus)
}

// WriterConfig defines the necessary parameters to make a new writer.
type WriterConfig struct {
	Type     string `yaml:"type" env:"WRITER_TYPE"`
	FilePath string `yaml:"filepath" env:"WRITER_FILEPATH"`
}

const (
	STDOUT_WRITER_TYPE = "stdout"
	FILE_WRITER_TYPE   = "file"
)

// NewWriter returns the writer that corresponds to the configured type.
func NewWriter(wc *WriterConfig) (Writer, error) {
	switch wc.Type {
	case STDOUT_WRITER_TYPE, "":
		return NewStdoutWriter(wc), nil
	case FILE_WRITER_TYPE:
		return NewFileWriter(wc), nil
	}
	return nil, fmt.Errorf("writer type '%s' does not exist", wc.Type)
}
