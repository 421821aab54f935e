package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mom-planner/config"
	"mom-planner/internal/intake"
	"mom-planner/internal/middleware"
	"mom-planner/internal/plan"
	"mom-planner/internal/plan/repository/memory"
	"mom-planner/internal/plan/usecase"
	"mom-planner/pkg/llmprovider"
	"mom-planner/pkg/log"
	"mom-planner/pkg/notify"
)

type stubProvider struct {
	text string
	err  error
}

func (s *stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Parts: []string{s.text}}, nil
}

func (s *stubProvider) Name() string  { return "stub" }
func (s *stubProvider) Model() string { return "stub-1" }

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type testServer struct {
	engine   *gin.Engine
	provider *stubProvider
	sent     []notify.Notification
}

func newTestServer(t *testing.T, perm notify.Permission) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	ts := &testServer{provider: &stubProvider{}}
	sink := notify.NotifierFunc(func(ctx context.Context, n notify.Notification) error {
		ts.sent = append(ts.sent, n)
		return nil
	})
	repo := memory.New(memory.Options{MaxSessions: 8, TTL: time.Hour}, l)
	uc := usecase.New(repo, ts.provider, notify.NewGate(perm, true), sink, usecase.Config{Timeout: time.Second}, l)

	h := New(l, uc, 1<<20)
	h.now = func() time.Time { return time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC) }

	ts.engine = gin.New()
	mw := middleware.New(l, config.RateLimitConfig{})
	RegisterRoutes(ts.engine.Group("/api/v1"), h, mw)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body string) (int, envelope) {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	r.Header.Set("Accept-Language", "en-US")
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, r)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (ts *testServer) createSession(t *testing.T) string {
	t.Helper()
	code, env := ts.do(t, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusOK, code)
	var s sessionResp
	require.NoError(t, json.Unmarshal(env.Data, &s))
	require.NotEmpty(t, s.ID)
	return s.ID
}

func decodeSession(t *testing.T, raw json.RawMessage) sessionResp {
	t.Helper()
	var s sessionResp
	require.NoError(t, json.Unmarshal(raw, &s))
	return s
}

const planJSON = `[{"time":"9:00 AM","task":"Read chapter 4","category":"Mental","duration":45,"notificationText":"Focus, dear."}]`

func TestPlanFlow(t *testing.T) {
	ts := newTestServer(t, notify.PermissionGranted)
	id := ts.createSession(t)

	code, env := ts.do(t, http.MethodGet, "/api/v1/sessions/"+id, "")
	require.Equal(t, http.StatusOK, code)
	s := decodeSession(t, env.Data)
	assert.Equal(t, plan.EmptyPlanTitle, s.Plan.Header)
	assert.Empty(t, s.Plan.Items)
	assert.Equal(t, "granted", s.Permission.State)

	ts.provider.text = planJSON
	code, env = ts.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/plan", `{"input":"read ch 4","tone":"Firm & Motivating"}`)
	require.Equal(t, http.StatusOK, code, env.Message)
	s = decodeSession(t, env.Data)
	require.Len(t, s.Plan.Items, 1)
	assert.Equal(t, plan.PlanHeader, s.Plan.Header)
	card := s.Plan.Items[0]
	assert.Equal(t, "45 min", card.DurationLabel)
	assert.Equal(t, "🧠", card.Icon)
	assert.Equal(t, "TBD", card.DueDateDisplay)
	assert.Equal(t, "Not Started", card.Status)
	assert.Equal(t, `MOM says: "Focus, dear."`, card.Quote)

	code, env = ts.do(t, http.MethodPatch, "/api/v1/sessions/"+id+"/plan/items/0/due-date", `{"due_date":"2025-06-15"}`)
	require.Equal(t, http.StatusOK, code)
	card = decodeSession(t, env.Data).Plan.Items[0]
	assert.Equal(t, "Jun 15, 2025", card.DueDateDisplay)
	assert.Equal(t, "Due in 5 days", card.DueStatus)

	code, env = ts.do(t, http.MethodPatch, "/api/v1/sessions/"+id+"/plan/items/0/status", `{"status":"In Progress"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "In Progress", decodeSession(t, env.Data).Plan.Items[0].Status)

	code, env = ts.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/plan/items/0/notify", "")
	require.Equal(t, http.StatusOK, code)
	var n notifyResp
	require.NoError(t, json.Unmarshal(env.Data, &n))
	assert.True(t, n.Sent)
	assert.Equal(t, "MOM Reminder ⏰ (9:00 AM)", n.Title)
	require.Len(t, ts.sent, 1)

	code, env = ts.do(t, http.MethodPut, "/api/v1/sessions/"+id+"/reminders", `{"enabled":true}`)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decodeSession(t, env.Data).Reminders)
}

func TestGenerate_Errors(t *testing.T) {
	ts := newTestServer(t, notify.PermissionDefault)
	id := ts.createSession(t)

	code, env := ts.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/plan", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, plan.EmptyInputMessage, env.Message)

	code, _ = ts.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/plan", `{"input":"x","tone":"Snarky"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	ts.provider.err = errors.New("upstream 500: quota")
	code, env = ts.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/plan", `{"input":"x"}`)
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, plan.GenerationFailedMessage, env.Message)
	assert.NotContains(t, string(env.Data), "quota")

	code, _ = ts.do(t, http.MethodPost, "/api/v1/sessions/nope/plan", `{"input":"x"}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestItemEndpoints_BadIndex(t *testing.T) {
	ts := newTestServer(t, notify.PermissionDefault)
	id := ts.createSession(t)

	code, _ := ts.do(t, http.MethodPatch, "/api/v1/sessions/"+id+"/plan/items/abc/status", `{"status":"Completed"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = ts.do(t, http.MethodPatch, "/api/v1/sessions/"+id+"/plan/items/3/status", `{"status":"Completed"}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = ts.do(t, http.MethodPatch, "/api/v1/sessions/"+id+"/plan/items/0/due-date", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestNotify_Denied(t *testing.T) {
	ts := newTestServer(t, notify.PermissionDenied)
	id := ts.createSession(t)
	ts.provider.text = planJSON
	code, _ := ts.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/plan", `{"input":"x"}`)
	require.Equal(t, http.StatusOK, code)

	code, env := ts.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/plan/items/0/notify", "")
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, notify.PermissionDenied.Tooltip(), env.Message)
	assert.Empty(t, ts.sent)
}

func TestPermission(t *testing.T) {
	ts := newTestServer(t, notify.PermissionDefault)

	code, env := ts.do(t, http.MethodGet, "/api/v1/notifications/permission", "")
	require.Equal(t, http.StatusOK, code)
	var p permissionResp
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "default", p.State)
	assert.Equal(t, notify.PermissionDefault.Tooltip(), p.Tooltip)

	code, env = ts.do(t, http.MethodPost, "/api/v1/notifications/permission", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "granted", p.State)
}

func TestUploadPDF_Garbage(t *testing.T) {
	ts := newTestServer(t, notify.PermissionDefault)
	id := ts.createSession(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "notes.pdf")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("not a pdf at all"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/input/pdf", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	s := decodeSession(t, env.Data)
	assert.Equal(t, intake.PDFFallbackText, s.Form.Text)
	assert.False(t, s.Form.Parsing)
	assert.True(t, s.PDFUnreadable)
	assert.False(t, s.CreatedAt.Time().IsZero())
}

func TestRespondError_Unmapped(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), nil, 1<<20)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.respondError(c, errors.New("disk on fire"), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Something went wrong", env.Message)
	assert.NotContains(t, w.Body.String(), "disk on fire")
}

func TestUploadPDF_MissingFile(t *testing.T) {
	ts := newTestServer(t, notify.PermissionDefault)
	id := ts.createSession(t)

	code, _ := ts.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/input/pdf", "")
	assert.Equal(t, http.StatusBadRequest, code)
}
