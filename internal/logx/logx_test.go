package logx

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/fatih/color"
)

func TestHandler(t *testing.T) {
	// make sure we don't emit escape sequences in tests
	color.NoColor = true

	newHandler := func(emoji bool) (*Handler, *bytes.Buffer) {
		buf := &bytes.Buffer{}
		start := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)
		h := NewHandler(buf)
		h.Emoji = emoji
		h.StartTime = start
		h.Now = func() time.Time {
			return start.Add(1500 * time.Millisecond)
		}
		return h, buf
	}

	t.Run("without emoji", func(t *testing.T) {
		h, buf := newHandler(false)
		logger := &log.Logger{Level: log.DebugLevel, Handler: h}
		logger.Infof("estimated %d countries", 34)
		expect := "[      1.500000] <info> estimated 34 countries\n"
		if buf.String() != expect {
			t.Fatalf("expected %q, got %q", expect, buf.String())
		}
	})

	t.Run("with emoji and fields", func(t *testing.T) {
		h, buf := newHandler(true)
		logger := &log.Logger{Level: log.DebugLevel, Handler: h}
		logger.WithField("country", "ISR").Warn("too short")
		got := buf.String()
		if !strings.Contains(got, "🔥 too short") {
			t.Fatal("missing emoji", got)
		}
		if !strings.Contains(got, "country:ISR") {
			t.Fatal("missing fields", got)
		}
	})
}
