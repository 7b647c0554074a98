package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"quizhub_backend/internal/config"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/database"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, nil)
}

func newTestServerWith(t *testing.T, configure func(*config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0", Mode: "test"},
		JWT:     config.JWTConfig{Secret: "app-test-secret-app-test-secret-00", ExpireTime: time.Hour},
		Admin:   config.AdminConfig{Username: "admin", Password: "correct-horse"},
		Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: t.TempDir()},
	}

	if configure != nil {
		configure(cfg)
	}

	a := New(cfg, db, nil)
	t.Cleanup(a.Close)
	return &testServer{t: t, router: a.Router}
}

func (s *testServer) do(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var raw string
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		raw = string(data)
	}
	return s.doRaw(method, path, raw)
}

func (s *testServer) doRaw(method, path, body string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (s *testServer) login() {
	s.t.Helper()
	w, _ := s.do(http.MethodPost, "/api/admin/login", map[string]string{"username": "admin", "password": "correct-horse"})
	require.Equal(s.t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == util.AdminCookieName {
			s.cookie = c
		}
	}
	require.NotNil(s.t, s.cookie, "login must set the admin cookie")
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"database":"up"`)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	s := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/admin/quizzes"},
		{http.MethodPost, "/api/admin/quizzes"},
		{http.MethodDelete, "/api/admin/quizzes/some-id"},
		{http.MethodPost, "/api/admin/quizzes/some-id/questions"},
		{http.MethodPost, "/api/admin/quizzes/some-id/questions/q/options"},
		{http.MethodDelete, "/api/admin/quizzes/some-id/questions/q/options/o"},
	} {
		w, _ := s.do(route.method, route.path, map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/api/admin/login", map[string]string{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid credentials", env.Message)
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthoringAndTakingQuiz(t *testing.T) {
	s := newTestServer(t)
	s.login()

	// 创建测验
	w, env := s.do(http.MethodPost, "/api/admin/quizzes", map[string]string{"title": "My Quiz!!"})
	require.Equal(t, http.StatusCreated, w.Code)
	var quiz struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quiz))
	assert.Regexp(t, `^my-quiz-[a-z0-9]{8}$`, quiz.Slug)

	// 创建题目（默认判断题）
	w, env = s.do(http.MethodPost, "/api/admin/quizzes/"+quiz.ID+"/questions", map[string]string{"text": "Go has generics"})
	require.Equal(t, http.StatusCreated, w.Code)
	var question struct {
		ID      string `json:"id"`
		Type    string `json:"type"`
		Options []struct {
			ID        string `json:"id"`
			Text      string `json:"text"`
			IsCorrect bool   `json:"isCorrect"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &question))
	assert.Equal(t, "TRUE_FALSE", question.Type)

	optionsPath := "/api/admin/quizzes/" + quiz.ID + "/questions/" + question.ID + "/options"
	w, _ = s.do(http.MethodPost, optionsPath, map[string]interface{}{"text": "True", "isCorrect": false})
	require.Equal(t, http.StatusCreated, w.Code)
	w, env = s.do(http.MethodPost, optionsPath, map[string]interface{}{"text": "False"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &question))
	require.Len(t, question.Options, 2)
	assert.True(t, question.Options[0].IsCorrect, "first option is forced correct")
	correctID := question.Options[0].ID

	// 判断题第三个选项被拒绝
	w, env = s.do(http.MethodPost, optionsPath, map[string]interface{}{"text": "Maybe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "true/false questions can have at most 2 options", env.Message)

	// 删除唯一正确答案被拒绝
	w, env = s.do(http.MethodDelete, optionsPath+"/"+correctID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "cannot delete the last correct answer", env.Message)

	// 答题端不暴露正确答案
	s.cookie = nil
	w, env = s.do(http.MethodGet, "/api/public/quizzes/"+quiz.Slug, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(env.Data), "isCorrect")

	w, env = s.do(http.MethodPost, "/api/public/quizzes/"+quiz.Slug+"/attempts", map[string]interface{}{
		"name":    "Ada",
		"email":   "ada@example.com",
		"answers": map[string]interface{}{question.ID: map[string]string{"optionId": correctID}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var result struct {
		AttemptID string `json:"attemptId"`
		Score     int    `json:"score"`
		MaxScore  int    `json:"maxScore"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.NotEmpty(t, result.AttemptID)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 1, result.MaxScore)
}

func TestSubmitAttemptValidationAndNotFound(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(http.MethodPost, "/api/public/quizzes/unknown/attempts", map[string]string{"name": "", "email": "a@b.c"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := s.do(http.MethodPost, "/api/public/quizzes/unknown/attempts", map[string]string{"name": "Ada", "email": "a@b.c"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "quiz not found", env.Message)
}

func TestLogoutClearsCookie(t *testing.T) {
	s := newTestServer(t)
	s.login()

	w, _ := s.do(http.MethodPost, "/api/admin/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == util.AdminCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func (s *testServer) createQuizWithQuestion() (quizID, slug string) {
	s.t.Helper()
	_, env := s.do(http.MethodPost, "/api/admin/quizzes", map[string]interface{}{
		"title": "Answer Key",
		"questions": []map[string]interface{}{{
			"text":    "Go has generics",
			"options": []map[string]interface{}{{"text": "True", "isCorrect": true}, {"text": "False"}},
		}},
	})
	var quiz struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &quiz))
	require.NotEmpty(s.t, quiz.ID)
	return quiz.ID, quiz.Slug
}

func TestExportIsOnlyReadableByAdmin(t *testing.T) {
	s := newTestServer(t)
	s.login()
	quizID, slug := s.createQuizWithQuestion()

	w, env := s.do(http.MethodPost, "/api/admin/quizzes/"+quizID+"/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var export struct {
		Key  string `json:"key"`
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &export))

	w, _ = s.do(http.MethodGet, export.URL, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isCorrect": true`)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	s.cookie = nil
	for _, path := range []string{
		export.URL,
		"/uploads/" + export.Key,
		"/uploads/exports/quizzes/" + export.Name,
		"/api/public/quizzes/" + slug + "/exports/" + export.Name,
	} {
		w, _ := s.do(http.MethodGet, path, nil)
		assert.NotEqual(t, http.StatusOK, w.Code, path)
		assert.NotContains(t, w.Body.String(), "isCorrect", path)
	}
}

func TestSessionReportsAdmin(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(http.MethodGet, "/api/admin/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	s.login()
	w, env := s.do(http.MethodGet, "/api/admin/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var session struct {
		Username  string    `json:"username"`
		Role      string    `json:"role"`
		ExpiresAt time.Time `json:"expiresAt"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, util.RoleAdmin, session.Role)
	assert.True(t, session.ExpiresAt.After(time.Now()))
}

func TestMalformedBodiesGetStableMessages(t *testing.T) {
	s := newTestServer(t)

	w, env := s.doRaw(http.MethodPost, "/api/admin/login", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", env.Message)

	w, env = s.do(http.MethodPost, "/api/admin/login", map[string]interface{}{"username": 42, "password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "username has an invalid type", env.Message)
	assert.NotContains(t, env.Message, "json:")
}

func TestIntegralFloatOrderAccepted(t *testing.T) {
	s := newTestServer(t)
	s.login()
	quizID, _ := s.createQuizWithQuestion()

	w, env := s.doRaw(http.MethodPost, "/api/admin/quizzes/"+quizID+"/questions", `{"text":"Q","order":1.0}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var question struct {
		Order *int `json:"order"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &question))
	require.NotNil(t, question.Order)
	assert.Equal(t, 1, *question.Order)

	w, env = s.doRaw(http.MethodPost, "/api/admin/quizzes/"+quizID+"/questions", `{"text":"Q","order":1.5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "order must be a non-negative integer", env.Message)
}

func TestAttemptRateLimitUsesEnvelope(t *testing.T) {
	s := newTestServerWith(t, func(cfg *config.Config) {
		cfg.RateLimit.AttemptMaxRequests = 1
		cfg.RateLimit.WindowMinutes = 1
	})

	body := map[string]string{"name": "Ada", "email": "ada@example.com"}
	w, _ := s.do(http.MethodPost, "/api/public/quizzes/unknown/attempts", body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env := s.do(http.MethodPost, "/api/public/quizzes/unknown/attempts", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, http.StatusTooManyRequests, env.Code)
	assert.Equal(t, "too many requests, please try again later", env.Message)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
