package recorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"wordsnake-arena/internal/application/port/output"
	"wordsnake-arena/internal/domain/entity"
)

var _ output.ResultRecorder = (*CSVRecorder)(nil)

var fieldnames = []string{"experiment_number", "winner", "reason"}

// CSVRecorder appends one row per experiment to a results file, writing the
// header only when the file is created. Rows are flushed as they land so a
// crashed run keeps everything recorded so far.
type CSVRecorder struct {
	file   *os.File
	writer *csv.Writer
}

func NewCSVRecorder(path string) (*CSVRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	_, statErr := os.Stat(path)
	isNew := os.IsNotExist(statErr)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}

	writer := csv.NewWriter(file)
	if isNew {
		if err := writer.Write(fieldnames); err != nil {
			file.Close()
			return nil, fmt.Errorf("write csv header: %w", err)
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			file.Close()
			return nil, fmt.Errorf("flush csv header: %w", err)
		}
	}

	return &CSVRecorder{
		file:   file,
		writer: writer,
	}, nil
}

func (r *CSVRecorder) Record(result entity.MatchResult) error {
	row := []string{
		strconv.Itoa(result.Experiment),
		result.Verdict.Winner,
		result.Verdict.Reason,
	}
	if err := r.writer.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		return fmt.Errorf("flush csv row: %w", err)
	}
	return nil
}

func (r *CSVRecorder) Close() error {
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		r.file.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	return r.file.Close()
}
