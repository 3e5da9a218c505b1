// Package output writes perft reports as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReportWriter is the interface for writing reports to output.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes reports in the line format of other perft tools:
// "move: nodes" per root move, then a blank line and the total.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes r immediately.
func (tw *TextWriter) WriteReport(r *Report) error {
	if _, err := fmt.Fprintf(tw.w, "%s\n", r.FEN); err != nil {
		return err
	}
	for _, m := range r.SortedMoves() {
		if _, err := fmt.Fprintf(tw.w, "%s: %d\n", m, r.Divide[m]); err != nil {
			return err
		}
	}
	if len(r.Divide) > 0 {
		if _, err := fmt.Fprintln(tw.w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(tw.w, "Nodes searched (depth %d): %d\n", r.Depth, r.Nodes)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*Report `json:"reports"`
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]*Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Reports: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
