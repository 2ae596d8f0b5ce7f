// Package logx contains the log handler used by the oecdrt command.
package logx

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
)

// Handler implements [log.Handler].
//
// The zero value is invalid; construct using [NewHandler] or
// [NewHandlerWithDefaultSettings].
type Handler struct {
	// Emoji is OPTIONAL and indicates whether to prefix each
	// line with an emoji describing the log level.
	Emoji bool

	// Now is the MANDATORY function returning the current time.
	Now func() time.Time

	// StartTime is the MANDATORY time when we started logging.
	StartTime time.Time

	// Writer is the MANDATORY writer where to emit logs.
	Writer io.Writer

	// mu serializes writes.
	mu sync.Mutex
}

var _ log.Handler = &Handler{}

// NewHandler creates a [*Handler] writing to the given writer. When the
// writer is an [*os.File], we wrap it so that colors work on Windows too.
func NewHandler(w io.Writer) *Handler {
	if fp, ok := w.(*os.File); ok {
		w = colorable.NewColorable(fp)
	}
	return &Handler{
		Emoji:     false,
		Now:       time.Now,
		StartTime: time.Now(),
		Writer:    w,
	}
}

// NewHandlerWithDefaultSettings is like [NewHandler] but writes to [os.Stderr].
func NewHandlerWithDefaultSettings() *Handler {
	return NewHandler(os.Stderr)
}

// levelColors maps each level to its color.
var levelColors = [...]*color.Color{
	log.DebugLevel: color.New(color.FgWhite),
	log.InfoLevel:  color.New(color.FgBlue),
	log.WarnLevel:  color.New(color.FgYellow),
	log.ErrorLevel: color.New(color.FgRed),
	log.FatalLevel: color.New(color.FgRed),
}

// levelEmoji maps each level to its emoji.
var levelEmoji = [...]string{
	log.DebugLevel: "🧐",
	log.InfoLevel:  "🙂",
	log.WarnLevel:  "🔥",
	log.ErrorLevel: "💥",
	log.FatalLevel: "💀",
}

// HandleLog implements log.Handler
func (h *Handler) HandleLog(e *log.Entry) (err error) {
	level := fmt.Sprintf("<%s>", e.Level)
	if int(e.Level) >= 0 && int(e.Level) < len(levelColors) {
		if h.Emoji {
			level = levelEmoji[e.Level]
		} else {
			level = levelColors[e.Level].Sprint(level)
		}
	}
	s := fmt.Sprintf("[%14.6f] %s %s", h.Now().Sub(h.StartTime).Seconds(), level, e.Message)
	if len(e.Fields) > 0 {
		s += fmt.Sprintf(": %+v", e.Fields)
	}
	s += "\n"
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.Writer.Write([]byte(s))
	return
}
