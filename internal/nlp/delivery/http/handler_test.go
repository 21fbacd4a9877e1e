package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/nlp"
	"calendar-assistant/pkg/response"
)

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

type mockUseCase struct {
	result nlp.ParsedCommand
	err    error
}

func (m *mockUseCase) ParseCommand(ctx context.Context, text string) (nlp.ParsedCommand, error) {
	return m.result, m.err
}

func newTestRouter(uc nlp.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := &mockLogger{}
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, 0))
	return r
}

func postParse(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/nlp/parse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestParseHandler(t *testing.T) {
	title := "team standup"
	uc := &mockUseCase{result: nlp.ParsedCommand{
		Intent:       nlp.IntentCreateEvent,
		Entities:     nlp.Entities{Title: &title},
		Confidence:   0.6,
		OriginalText: "create a team standup",
	}}
	r := newTestRouter(uc)

	w := postParse(t, r, `{"text": "create a team standup"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("error code = %d, want 0", resp.ErrorCode)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data payload: %v", resp.Data)
	}
	if data["intent"] != "create_event" {
		t.Errorf("intent = %v, want create_event", data["intent"])
	}
	entities, _ := data["entities"].(map[string]interface{})
	if entities["title"] != "team standup" {
		t.Errorf("title = %v, want team standup", entities["title"])
	}
	if _, present := entities["location"]; present {
		t.Errorf("absent entity fields must be omitted, got %v", entities)
	}
}

func TestParseHandlerMissingBody(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := postParse(t, r, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestParseHandlerEmptyInput(t *testing.T) {
	r := newTestRouter(&mockUseCase{err: nlp.ErrEmptyInput})

	w := postParse(t, r, `{"text": "   "}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
