package service

import (
	"context"
	"errors"
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// PublicQuizSummary 公开列表项，不包含题目
type PublicQuizSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PublicQuiz 答题用视图，选项不含正确答案
type PublicQuiz struct {
	PublicQuizSummary
	Questions []PublicQuestion `json:"questions"`
}

type PublicQuestion struct {
	ID        string             `json:"id"`
	QuizID    string             `json:"quizId"`
	Text      string             `json:"text"`
	Type      model.QuestionType `json:"type"`
	Order     *int               `json:"order"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Options   []PublicOption     `json:"options"`
}

type PublicOption struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"questionId"`
	Text       string    `json:"text"`
	Order      *int      `json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
}

type PublicQuizService struct {
	QuizRepo *repository.QuizRepository
	Cache    QuizCache
}

func NewPublicQuizService(quizRepo *repository.QuizRepository, cache QuizCache) *PublicQuizService {
	if cache == nil {
		cache = NoopQuizCache{}
	}
	return &PublicQuizService{QuizRepo: quizRepo, Cache: cache}
}

func (s *PublicQuizService) ListQuizzes(ctx context.Context) ([]PublicQuizSummary, error) {
	if list, ok := s.Cache.GetList(ctx); ok {
		return list, nil
	}

	quizzes, err := s.QuizRepo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]PublicQuizSummary, len(quizzes))
	for i := range quizzes {
		list[i] = toPublicSummary(&quizzes[i])
	}
	s.Cache.SetList(ctx, list)
	return list, nil
}

func (s *PublicQuizService) GetQuizBySlug(ctx context.Context, slug string) (*PublicQuiz, error) {
	if quiz, ok := s.Cache.GetQuiz(ctx, slug); ok {
		return quiz, nil
	}

	quiz, err := s.QuizRepo.FindBySlugWithQuestions(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	res := ToPublicQuiz(quiz)
	s.Cache.SetQuiz(ctx, slug, res)
	return res, nil
}

func toPublicSummary(q *model.Quiz) PublicQuizSummary {
	return PublicQuizSummary{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Slug:        q.Slug,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

// ToPublicQuiz 排序后去掉 isCorrect 字段
func ToPublicQuiz(quiz *model.Quiz) *PublicQuiz {
	SortQuiz(quiz)

	res := &PublicQuiz{
		PublicQuizSummary: toPublicSummary(quiz),
		Questions:         make([]PublicQuestion, len(quiz.Questions)),
	}
	for i, q := range quiz.Questions {
		pq := PublicQuestion{
			ID:        q.ID,
			QuizID:    q.QuizID,
			Text:      q.Text,
			Type:      q.Type,
			Order:     q.Order,
			CreatedAt: q.CreatedAt,
			UpdatedAt: q.UpdatedAt,
			Options:   make([]PublicOption, len(q.Options)),
		}
		for j, o := range q.Options {
			pq.Options[j] = PublicOption{
				ID:         o.ID,
				QuestionID: o.QuestionID,
				Text:       o.Text,
				Order:      o.Order,
				CreatedAt:  o.CreatedAt,
			}
		}
		res.Questions[i] = pq
	}
	return res
}
