package cli

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Progress shows a spinner while a request is in flight.
// The zero value and a nil *Progress are valid and do nothing.
type Progress struct {
	s *spinner.Spinner
}

// StartProgress starts a spinner with the given message on w. The spinner
// only animates when w is a file attached to a terminal; in quiet mode or for
// any other writer nothing is shown.
func StartProgress(w io.Writer, message string, quiet bool) *Progress {
	f, ok := w.(*os.File)
	if quiet || !ok {
		return &Progress{}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))
	s.Suffix = " " + message
	s.Start()
	return &Progress{s: s}
}

// Stop stops the spinner and clears its line.
func (p *Progress) Stop() {
	if p == nil || p.s == nil {
		return
	}
	p.s.Stop()
}
