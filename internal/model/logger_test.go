package model

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
)

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger
	logger.Debug("foo")
	logger.Debugf("%s", "foo")
	logger.Info("foo")
	logger.Infof("%s", "foo")
	logger.Warn("foo")
	logger.Warnf("%s", "foo")
}

func TestValidLoggerOrDefault(t *testing.T) {
	if ValidLoggerOrDefault(nil) != DiscardLogger {
		t.Fatal("expected the DiscardLogger")
	}
	handler := memory.New()
	var logger Logger = &log.Logger{Handler: handler, Level: log.DebugLevel}
	ValidLoggerOrDefault(logger).Warnf("country %s excluded", "DEU")
	if len(handler.Entries) != 1 || handler.Entries[0].Message != "country DEU excluded" {
		t.Fatal("unexpected entries", handler.Entries)
	}
}
