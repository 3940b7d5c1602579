package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type logLine struct {
	msg       string
	level     Severity
	timestamp time.Time
	file      string
	line      int
}

func (ll *logLine) Equal(ol *logLine) bool {
	switch {
	case ll.msg != ol.msg:
		return false
	case ll.file != ol.file:
		return false
	case ll.line != ol.line:
		return false
	case ll.level != ol.level:
		return false
	}
	return true
}

// output holds the last written line back until a different line arrives, so
// that consecutive duplicates are written once with a counter.
var output = struct {
	sync.Mutex

	w          io.Writer
	pending    *logLine
	duplicates uint64
}{
	w: os.Stderr,
}

func write(line *logLine) {
	output.Lock()
	defer output.Unlock()

	if output.pending != nil && output.pending.Equal(line) {
		output.duplicates++
		return
	}

	writePending()
	output.pending = line
	output.duplicates = 0
}

// Flush writes a held back log line.
func Flush() {
	flush()
}

func flush() {
	output.Lock()
	defer output.Unlock()

	writePending()
	output.pending = nil
	output.duplicates = 0
}

// writePending must be called with the output lock held.
func writePending() {
	if output.pending == nil {
		return
	}
	fmt.Fprintln(output.w, formatLine(output.pending, output.duplicates, useColor))
}
