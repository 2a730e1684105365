package editor

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var defaultLanguage = language.English

// WithLanguage sets the language used to format Status numbers.
func WithLanguage(tag language.Tag) Option {
	return func(e *Editor) {
		e.status = newStatusFormatter(tag)
	}
}

// Status is the text of the editor's status bar.
type Status struct {
	// Zoom is the magnification, e.g. "100%".
	Zoom string

	// Size is the canvas size, e.g. "64 x 64 px".
	Size string

	// Position is the canvas cell under the pointer, e.g. "(32, 32)".
	// It is empty when the pointer is not over the canvas.
	Position string
}

type statusFormatter struct {
	p *message.Printer
}

func newStatusFormatter(tag language.Tag) statusFormatter {
	return statusFormatter{p: message.NewPrinter(tag)}
}

// Status returns the status bar text for the current state.
func (e *Editor) Status() Status {
	p := e.status.p
	s := Status{
		Zoom: p.Sprintf("%d%%", e.cam.ZoomPercent()),
		Size: p.Sprintf("%d x %d px", e.canvas.Width(), e.canvas.Height()),
	}
	m := e.state.Mouse
	if e.canvas.HitTest(m.WorldX, m.WorldY) {
		s.Position = p.Sprintf("(%d, %d)", m.Cell.X, m.Cell.Y)
	}
	return s
}
