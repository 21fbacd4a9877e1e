package usecase

import (
	"context"

	"calendar-assistant/pkg/openai"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// completion is a scripted reply for one mockLLM call.
type completion struct {
	resp *openai.Response
	err  error
}

// mockLLM replays scripted completions in order; the final one repeats
// once the script is exhausted.
type mockLLM struct {
	script []completion
	calls  int
}

func (m *mockLLM) ChatCompletion(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	i := m.calls
	m.calls++
	if i >= len(m.script) {
		i = len(m.script) - 1
	}
	c := m.script[i]
	return c.resp, c.err
}

func (m *mockLLM) Model() string { return "test-model" }

func textCompletion(content string) completion {
	return completion{resp: &openai.Response{Content: content}}
}
