package showdown

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/lox/handrank/internal/fileutil"
)

// EncodeReport writes rep to w as TOML.
func EncodeReport(w io.Writer, rep *Report) error {
	if rep == nil {
		return fmt.Errorf("showdown: report is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(rep)
}

// WriteReport atomically replaces the file at path with the encoded report.
func WriteReport(path string, rep *Report) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return EncodeReport(w, rep)
	})
}

// DecodeReport reads a report previously written by EncodeReport.
func DecodeReport(r io.Reader) (*Report, error) {
	var rep Report
	if _, err := toml.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &rep, nil
}
