package service

import (
	"context"
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/util"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertQuestionCreateDefaults(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "Defaults")

	q, created, err := env.questions.UpsertQuestion(context.Background(), quiz.ID, QuestionRequest{Text: "Is Go compiled?"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.QuestionTypeTrueFalse, q.Type)
	assert.Nil(t, q.Order)
	assert.Empty(t, q.Options)
	assert.Equal(t, quiz.ID, q.QuizID)
}

func TestUpsertQuestionValidation(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "Validation")
	ctx := context.Background()

	tests := []struct {
		name string
		req  QuestionRequest
	}{
		{"empty text", QuestionRequest{Text: "   "}},
		{"bad type", QuestionRequest{Text: "Q", Type: strPtr("ESSAY")}},
		{"negative order", QuestionRequest{Text: "Q", Order: util.Set(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.questions.UpsertQuestion(ctx, quiz.ID, tt.req)
			assert.True(t, util.IsValidation(err), "got %v", err)
		})
	}
}

func TestUpsertQuestionUnknownQuiz(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.questions.UpsertQuestion(context.Background(), "missing", QuestionRequest{Text: "Q"})
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestUpsertQuestionUpdateRetainsAndClears(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "Update")
	ctx := context.Background()

	q, _, err := env.questions.UpsertQuestion(ctx, quiz.ID, QuestionRequest{
		Text:  "Original",
		Type:  strPtr("SINGLE_CHOICE"),
		Order: util.Set(3),
	})
	require.NoError(t, err)

	// 未提供 type 和 order 时保持原值
	updated, created, err := env.questions.UpsertQuestion(ctx, quiz.ID, QuestionRequest{
		QuestionID: q.ID,
		Text:       "Renamed",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Renamed", updated.Text)
	assert.Equal(t, model.QuestionTypeSingleChoice, updated.Type)
	require.NotNil(t, updated.Order)
	assert.Equal(t, 3, *updated.Order)

	// 显式 null 清空排序
	cleared, _, err := env.questions.UpsertQuestion(ctx, quiz.ID, QuestionRequest{
		QuestionID: q.ID,
		Text:       "Renamed",
		Order:      util.Null[int](),
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.Order)
}

func TestUpsertQuestionOwnership(t *testing.T) {
	env := newTestEnv(t)
	quizA := env.createQuiz(t, "A")
	quizB := env.createQuiz(t, "B")
	q := env.createQuestion(t, quizA.ID, model.QuestionTypeSingleChoice)

	_, _, err := env.questions.UpsertQuestion(context.Background(), quizB.ID, QuestionRequest{
		QuestionID: q.ID,
		Text:       "Hijack",
	})
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestFirstOptionForcedCorrect(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "First")
	q := env.createQuestion(t, quiz.ID, model.QuestionTypeSingleChoice)

	opt := env.addOption(t, quiz.ID, q.ID, "Only", false)
	assert.True(t, opt.IsCorrect)
}

func TestTrueFalseOptionCap(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "TF")
	q := env.createQuestion(t, quiz.ID, model.QuestionTypeTrueFalse)

	env.addOption(t, quiz.ID, q.ID, "True", true)
	env.addOption(t, quiz.ID, q.ID, "False", false)

	_, _, err := env.questions.UpsertOption(context.Background(), quiz.ID, q.ID, OptionRequest{Text: strPtr("Maybe")})
	assert.ErrorIs(t, err, util.ErrTrueFalseOptionCap)
	assert.True(t, util.IsValidation(err))

	loaded, err := env.questions.loadQuestion(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Options, 2)
}

func TestSingleChoiceFlip(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "Flip")
	q := env.createQuestion(t, quiz.ID, model.QuestionTypeSingleChoice)

	o1 := env.addOption(t, quiz.ID, q.ID, "O1", true)
	o2 := env.addOption(t, quiz.ID, q.ID, "O2", false)
	env.addOption(t, quiz.ID, q.ID, "O3", false)

	updated, created, err := env.questions.UpsertOption(context.Background(), quiz.ID, q.ID, OptionRequest{
		OptionID:  o2.ID,
		IsCorrect: boolPtr(true),
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, []string{o2.ID}, correctIDs(updated))

	first, ok := findOption(updated, "O1")
	require.True(t, ok)
	assert.Equal(t, o1.ID, first.ID)
	assert.False(t, first.IsCorrect)
}

func TestCreateCorrectOptionClearsOthers(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "Create flip")
	q := env.createQuestion(t, quiz.ID, model.QuestionTypeTrueFalse)

	env.addOption(t, quiz.ID, q.ID, "True", true)
	o2 := env.addOption(t, quiz.ID, q.ID, "False", true)

	loaded, err := env.questions.loadQuestion(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{o2.ID}, correctIDs(loaded))
}

func TestUncorrectSoleCorrectRejected(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "Uncorrect")
	q := env.createQuestion(t, quiz.ID, model.QuestionTypeSingleChoice)
	o1 := env.addOption(t, quiz.ID, q.ID, "O1", true)
	env.addOption(t, quiz.ID, q.ID, "O2", false)

	_, _, err := env.questions.UpsertOption(context.Background(), quiz.ID, q.ID, OptionRequest{
		OptionID:  o1.ID,
		Text:      strPtr("changed"),
		IsCorrect: boolPtr(false),
	})
	assert.ErrorIs(t, err, util.ErrNoCorrectOption)

	loaded, err := env.questions.loadQuestion(context.Background(), q.ID)
	require.NoError(t, err)
	opt, ok := findOption(loaded, "O1")
	require.True(t, ok, "option text must be unchanged")
	assert.True(t, opt.IsCorrect)
}

func TestCreateIncorrectOptionWithoutCorrectRejected(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "No correct")
	q := env.createQuestion(t, quiz.ID, model.QuestionTypeSingleChoice)
	o1 := env.addOption(t, quiz.ID, q.ID, "O1", true)

	// 绕过服务直接制造没有正确答案的状态
	require.NoError(t, env.db.Model(&model.QuestionOption{}).Where("id = ?", o1.ID).Update("is_correct", false).Error)

	_, _, err := env.questions.UpsertOption(context.Background(), quiz.ID, q.ID, OptionRequest{
		Text:      strPtr("O2"),
		IsCorrect: boolPtr(false),
	})
	assert.ErrorIs(t, err, util.ErrNoCorrectOption)
}

func TestDeleteOption(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "Delete option")
	q := env.createQuestion(t, quiz.ID, model.QuestionTypeSingleChoice)
	o1 := env.addOption(t, quiz.ID, q.ID, "O1", true)
	o2 := env.addOption(t, quiz.ID, q.ID, "O2", false)
	ctx := context.Background()

	err := env.questions.DeleteOption(ctx, quiz.ID, q.ID, o1.ID)
	assert.ErrorIs(t, err, util.ErrLastCorrectOption)

	require.NoError(t, env.questions.DeleteOption(ctx, quiz.ID, q.ID, o2.ID))

	loaded, err := env.questions.loadQuestion(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Options, 1)
	assert.Equal(t, o1.ID, loaded.Options[0].ID)
	assert.True(t, loaded.Options[0].IsCorrect)

	err = env.questions.DeleteOption(ctx, quiz.ID, q.ID, o2.ID)
	assert.ErrorIs(t, err, util.ErrOptionNotFound)
}

func TestOptionOwnership(t *testing.T) {
	env := newTestEnv(t)
	quizA := env.createQuiz(t, "Owner A")
	quizB := env.createQuiz(t, "Owner B")
	qA := env.createQuestion(t, quizA.ID, model.QuestionTypeSingleChoice)
	qB := env.createQuestion(t, quizB.ID, model.QuestionTypeSingleChoice)
	optA := env.addOption(t, quizA.ID, qA.ID, "A1", true)
	ctx := context.Background()

	_, _, err := env.questions.UpsertOption(ctx, quizB.ID, qA.ID, OptionRequest{Text: strPtr("x")})
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)

	_, _, err = env.questions.UpsertOption(ctx, quizB.ID, qB.ID, OptionRequest{OptionID: optA.ID, Text: strPtr("x")})
	assert.ErrorIs(t, err, util.ErrOptionNotFound)

	err = env.questions.DeleteOption(ctx, quizB.ID, qB.ID, optA.ID)
	assert.ErrorIs(t, err, util.ErrOptionNotFound)
}

func TestUpsertOptionValidation(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "Option validation")
	q := env.createQuestion(t, quiz.ID, model.QuestionTypeSingleChoice)
	ctx := context.Background()

	_, _, err := env.questions.UpsertOption(ctx, quiz.ID, q.ID, OptionRequest{})
	assert.True(t, util.IsValidation(err))

	_, _, err = env.questions.UpsertOption(ctx, quiz.ID, q.ID, OptionRequest{Text: strPtr("x"), Order: util.Set(-2)})
	assert.True(t, util.IsValidation(err))
}

func TestDeleteQuestionCascades(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "Cascade")
	q := env.createQuestion(t, quiz.ID, model.QuestionTypeTrueFalse)
	env.addOption(t, quiz.ID, q.ID, "True", true)
	env.addOption(t, quiz.ID, q.ID, "False", false)
	ctx := context.Background()

	require.NoError(t, env.questions.DeleteQuestion(ctx, quiz.ID, q.ID))

	var count int64
	require.NoError(t, env.db.Model(&model.QuestionOption{}).Where("question_id = ?", q.ID).Count(&count).Error)
	assert.Zero(t, count)

	err := env.questions.DeleteQuestion(ctx, quiz.ID, q.ID)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestOptionOrderingRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "Ordering")
	q := env.createQuestion(t, quiz.ID, model.QuestionTypeSingleChoice)
	ctx := context.Background()

	inputs := []struct {
		text  string
		order *int
	}{
		{"two", intPtr(2)},
		{"nil-a", nil},
		{"zero", intPtr(0)},
		{"nil-b", nil},
		{"one", intPtr(1)},
	}
	var last *model.Question
	for _, in := range inputs {
		req := OptionRequest{Text: strPtr(in.text)}
		if in.order != nil {
			req.Order = util.Set(*in.order)
		}
		updated, _, err := env.questions.UpsertOption(ctx, quiz.ID, q.ID, req)
		require.NoError(t, err)
		last = updated
	}

	want := []string{"zero", "one", "two", "nil-a", "nil-b"}
	assert.Equal(t, want, optionTexts(last))

	fetched, err := env.quizzes.Get(ctx, quiz.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Questions, 1)
	assert.Equal(t, want, optionTexts(&fetched.Questions[0]))
}

func optionTexts(q *model.Question) []string {
	texts := make([]string, len(q.Options))
	for i, o := range q.Options {
		texts[i] = o.Text
	}
	return texts
}

func TestConcurrentFlipsKeepSingleCorrect(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "Concurrent")
	q := env.createQuestion(t, quiz.ID, model.QuestionTypeSingleChoice)

	var ids []string
	for _, text := range []string{"a", "b", "c", "d"} {
		ids = append(ids, env.addOption(t, quiz.ID, q.ID, text, false).ID)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, _, err := env.questions.UpsertOption(context.Background(), quiz.ID, q.ID, OptionRequest{
				OptionID:  id,
				IsCorrect: boolPtr(true),
			})
			assert.NoError(t, err)
		}(ids[i%len(ids)])
	}
	wg.Wait()

	loaded, err := env.questions.loadQuestion(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Len(t, correctIDs(loaded), 1)
}

func TestOptionWritesInvalidateCache(t *testing.T) {
	env := newTestEnv(t)
	quiz := env.createQuiz(t, "Cache")
	q := env.createQuestion(t, quiz.ID, model.QuestionTypeSingleChoice)

	env.addOption(t, quiz.ID, q.ID, "O1", true)

	assert.Contains(t, env.cache.slugs(), quiz.Slug)
}
