package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	log, err := New(false)
	if err != nil {
		t.Fatal(err)
	}
	if log.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info should be disabled without debug")
	}
	if !log.Desugar().Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("warn should be enabled")
	}

	dbg, err := New(true)
	if err != nil {
		t.Fatal(err)
	}
	if !dbg.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug should be enabled in debug mode")
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Warnw("discarded", "k", "v")
	if log.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("nop logger should not be enabled")
	}
}
