package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EventType defines the category of the log event.
type EventType string

const (
	EventTypePlan       EventType = "plan"
	EventTypeStep       EventType = "step"
	EventTypeToolCall   EventType = "tool_call"
	EventTypeToolResult EventType = "tool_result"
	EventTypeLLM        EventType = "llm"
	EventTypeSolve      EventType = "solve"
	EventTypeError      EventType = "error"
)

// Event represents a structured log entry.
type Event struct {
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id,omitempty"`
	StepID    string    `json:"step_id,omitempty"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Logger handles structured logging. A nil *Logger discards every event.
type Logger struct {
	mu         sync.Mutex
	out        io.Writer
	llmLogPath string
	maxSize    int64
}

// NewLoggerTo writes events to out and keeps a copy of LLM exchanges in
// dir/llm.jsonl. An empty dir disables the file.
func NewLoggerTo(out io.Writer, dir string) *Logger {
	l := &Logger{
		out:     out,
		maxSize: 10 * 1024 * 1024, // 10MB
	}
	if dir != "" {
		l.llmLogPath = filepath.Join(dir, "llm.jsonl")
	}
	return l
}

// Log emits a structured JSON event.
func (l *Logger) Log(evt Event) {
	if l == nil {
		return
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	data, err := json.Marshal(evt)
	if err != nil {
		data = []byte(fmt.Sprintf("{\"error\": \"failed to marshal event: %v\"}", err))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, string(data))

	if evt.Type == EventTypeLLM && l.llmLogPath != "" {
		l.writeToFile(data)
	}
}

func (l *Logger) writeToFile(data []byte) {
	if err := os.MkdirAll(filepath.Dir(l.llmLogPath), 0755); err != nil {
		log.Printf("failed to create log directory: %v", err)
		return
	}

	// Check size before writing
	info, err := os.Stat(l.llmLogPath)
	if err == nil && info.Size() > l.maxSize {
		l.rotateLogs()
	}

	f, err := os.OpenFile(l.llmLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("failed to open log file: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		log.Printf("failed to write to log file: %v", err)
	}
}

func (l *Logger) rotateLogs() {
	// Simple rotation: keep one .old file
	oldPath := l.llmLogPath + ".old"
	_ = os.Remove(oldPath)
	_ = os.Rename(l.llmLogPath, oldPath)
}

// Helper methods for common events

func (l *Logger) LogPlan(runID string, steps int, task string) {
	l.Log(Event{
		Type:  EventTypePlan,
		RunID: runID,
		Data: map[string]any{
			"steps": steps,
			"task":  task,
		},
	})
}

func (l *Logger) LogStep(runID, stepID, plan string, index, total int) {
	l.Log(Event{
		Type:   EventTypeStep,
		RunID:  runID,
		StepID: stepID,
		Data: map[string]any{
			"plan":  plan,
			"index": index,
			"total": total,
		},
	})
}

func (l *Logger) LogToolCall(runID, stepID, tool, input string) {
	l.Log(Event{
		Type:   EventTypeToolCall,
		RunID:  runID,
		StepID: stepID,
		Data: map[string]string{
			"tool":  tool,
			"input": input,
		},
	})
}

func (l *Logger) LogToolResult(runID, stepID, tool, result string) {
	l.Log(Event{
		Type:   EventTypeToolResult,
		RunID:  runID,
		StepID: stepID,
		Data: map[string]string{
			"tool":   tool,
			"result": result,
		},
	})
}

func (l *Logger) LogLLM(runID, stepID, prompt, response string) {
	l.Log(Event{
		Type:   EventTypeLLM,
		RunID:  runID,
		StepID: stepID,
		Data: map[string]any{
			"prompt":   prompt,
			"response": response,
		},
	})
}

func (l *Logger) LogSolve(runID, result string) {
	l.Log(Event{
		Type:  EventTypeSolve,
		RunID: runID,
		Data:  map[string]string{"result": result},
	})
}

func (l *Logger) LogError(runID, stepID string, err error) {
	l.Log(Event{
		Type:   EventTypeError,
		RunID:  runID,
		StepID: stepID,
		Data:   map[string]string{"error": err.Error()},
	})
}
