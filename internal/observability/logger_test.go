package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "")

	l.LogToolCall("run-1", "#E1", "Google", "capital of France")

	var evt Event
	if err := json.Unmarshal(buf.Bytes(), &evt); err != nil {
		t.Fatalf("failed to decode event %q: %v", buf.String(), err)
	}
	if evt.Type != EventTypeToolCall {
		t.Errorf("Expected type %s, got %s", EventTypeToolCall, evt.Type)
	}
	if evt.RunID != "run-1" || evt.StepID != "#E1" {
		t.Errorf("unexpected ids: %q %q", evt.RunID, evt.StepID)
	}
	if evt.Timestamp.IsZero() {
		t.Error("timestamp was not set")
	}
}

func TestLogger_LLMEventsGoToFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, dir)

	l.LogLLM("run-1", "#E2", "population of Paris", "2.1 million")
	l.LogSolve("run-1", "done")

	data, err := os.ReadFile(filepath.Join(dir, "llm.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line in llm.jsonl, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "2.1 million") {
		t.Errorf("llm.jsonl missing response: %s", lines[0])
	}
	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Errorf("Expected 2 events on the writer, got %d", got)
	}
}

func TestLogger_Rotation(t *testing.T) {
	dir := t.TempDir()
	l := NewLoggerTo(&bytes.Buffer{}, dir)
	l.maxSize = 10

	l.LogLLM("run-1", "#E1", "first prompt", "first response")
	l.LogLLM("run-1", "#E2", "second prompt", "second response")

	if _, err := os.Stat(filepath.Join(dir, "llm.jsonl.old")); err != nil {
		t.Fatalf("Expected rotated file: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "llm.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "first response") {
		t.Error("current log still holds the rotated entry")
	}
}

func TestLogger_Nil(t *testing.T) {
	var l *Logger
	l.LogError("run-1", "#E1", errors.New("boom"))
}
