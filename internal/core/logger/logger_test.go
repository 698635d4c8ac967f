package logger

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestToWriter_OneEntryPerWrite(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	w := ToWriter(zap.New(core), zapcore.WarnLevel)

	fmt.Fprintln(w, "slow query")
	fmt.Fprint(w, "second\r\n")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].Message != "slow query" || entries[1].Message != "second" {
		t.Errorf("messages = %q, %q", entries[0].Message, entries[1].Message)
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("level = %v", entries[0].Level)
	}
}

func TestToWriter_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	w := ToWriter(zap.New(core), zapcore.InfoLevel)
	fmt.Fprintln(w, "dropped")
	if logs.Len() != 0 {
		t.Errorf("info entry should be filtered, got %d", logs.Len())
	}
}

func TestBuild_BadLevelFallsBackToInfo(t *testing.T) {
	l, cleanup := Build(Options{Level: "loud", JSON: true})
	defer cleanup()
	if !l.Core().Enabled(zapcore.InfoLevel) || l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected info level")
	}
}
