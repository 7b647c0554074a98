package service

import (
	"context"
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/pkg/database"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db        *gorm.DB
	cache     *recordingCache
	quizzes   *QuizService
	questions *QuestionService
	public    *PublicQuizService
	attempts  *AttemptService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewQuizAttemptRepository(db)
	storage := &StorageService{Provider: &LocalStorageProvider{Root: t.TempDir()}}
	cache := &recordingCache{}

	return &testEnv{
		db:        db,
		cache:     cache,
		quizzes:   NewQuizService(quizRepo, attemptRepo, storage, cache),
		questions: NewQuestionService(db, quizRepo, questionRepo, cache),
		public:    NewPublicQuizService(quizRepo, cache),
		attempts:  NewAttemptService(quizRepo, attemptRepo),
	}
}

func (e *testEnv) createQuiz(t *testing.T, title string) *model.Quiz {
	t.Helper()
	quiz, err := e.quizzes.Create(context.Background(), CreateQuizRequest{Title: title})
	require.NoError(t, err)
	return quiz
}

func (e *testEnv) createQuestion(t *testing.T, quizID string, qType model.QuestionType) *model.Question {
	t.Helper()
	typ := string(qType)
	q, created, err := e.questions.UpsertQuestion(context.Background(), quizID, QuestionRequest{
		Text: "Question " + typ,
		Type: &typ,
	})
	require.NoError(t, err)
	require.True(t, created)
	return q
}

// addOption 创建选项并返回新选项
func (e *testEnv) addOption(t *testing.T, quizID, questionID, text string, correct bool) model.QuestionOption {
	t.Helper()
	q, created, err := e.questions.UpsertOption(context.Background(), quizID, questionID, OptionRequest{
		Text:      &text,
		IsCorrect: &correct,
	})
	require.NoError(t, err)
	require.True(t, created)
	opt, ok := findOption(q, text)
	require.True(t, ok, "option %q not returned", text)
	return opt
}

func findOption(q *model.Question, text string) (model.QuestionOption, bool) {
	for _, o := range q.Options {
		if o.Text == text {
			return o, true
		}
	}
	return model.QuestionOption{}, false
}

func correctIDs(q *model.Question) []string {
	ids := []string{}
	for _, o := range q.Options {
		if o.IsCorrect {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(v int) *int       { return &v }

// recordingCache 不缓存任何数据，只记录失效调用
type recordingCache struct {
	NoopQuizCache
	mu          sync.Mutex
	invalidated []string
}

func (c *recordingCache) Invalidate(_ context.Context, slugs ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, slugs...)
}

func (c *recordingCache) slugs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.invalidated...)
}
