package progress

import (
	"fmt"
	"io"
	"sync"
)

// Reporter prints one "Lines remaining" line per finished row.
// It only observes the render; output is unaffected.
type Reporter struct {
	mu   sync.Mutex
	out  io.Writer
	rows int
}

// New returns a Reporter writing to out. A nil out discards everything.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Row records a finished row and the number of rows still to render.
func (r *Reporter) Row(remaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows++
	if r.out != nil {
		fmt.Fprintf(r.out, "Lines remaining: %d\n", remaining)
	}
}

// Rows returns how many rows have been reported.
func (r *Reporter) Rows() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows
}
