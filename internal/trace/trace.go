// Package trace records a UCI session as msgpack frames for post-mortem
// analysis of GUI sessions.
package trace

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Record is one protocol line in either direction. Err is set when the line
// came from the GUI and failed to parse.
type Record struct {
	Dir  string `msgpack:"d"` // "gui" or "eng"
	Line string `msgpack:"l"`
	Err  string `msgpack:"e,omitempty"`
	Ms   int64  `msgpack:"t"` // millis since the session opened
}

// Writer appends records to a trace file. It is safe for use from the read
// and write sides of the shell at once.
type Writer struct {
	mu    sync.Mutex
	enc   *msgpack.Encoder
	f     *os.File
	start time.Time
}

// Open creates (or truncates) the trace file at path.
func Open(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{enc: msgpack.NewEncoder(f), f: f, start: time.Now()}, nil
}

// Gui records a line received from the GUI, with its parse error if any.
func (w *Writer) Gui(line string, parseErr error) error {
	errText := ""
	if parseErr != nil {
		errText = parseErr.Error()
	}
	return w.record("gui", line, errText)
}

// Eng records a line sent to the GUI.
func (w *Writer) Eng(line string) error {
	return w.record("eng", line, "")
}

func (w *Writer) record(dir, line, errText string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(Record{
		Dir:  dir,
		Line: line,
		Err:  errText,
		Ms:   time.Since(w.start).Milliseconds(),
	})
}

// Close flushes and closes the trace file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.f.Close()
}

// Read decodes every record in a trace file, for tooling and tests.
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	var records []Record
	for {
		var r Record
		if err := dec.Decode(&r); err != nil {
			if err == io.EOF {
				return records, nil
			}
			return nil, err
		}
		records = append(records, r)
	}
}
