package service

import (
	"context"
	"encoding/json"
	"errors"
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"
	"quizhub_backend/pkg/monitoring"
	"quizhub_backend/pkg/tracing"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttemptService struct {
	QuizRepo    *repository.QuizRepository
	AttemptRepo *repository.QuizAttemptRepository
}

func NewAttemptService(quizRepo *repository.QuizRepository, attemptRepo *repository.QuizAttemptRepository) *AttemptService {
	return &AttemptService{QuizRepo: quizRepo, AttemptRepo: attemptRepo}
}

type AnswerSelection struct {
	OptionID string `json:"optionId"`
}

// SubmitAttemptRequest answers 以题目 ID 为键
type SubmitAttemptRequest struct {
	Name    string                     `json:"name" validate:"notblank,max=255"`
	Email   string                     `json:"email" validate:"notblank,max=255"`
	Answers map[string]AnswerSelection `json:"answers"`
}

type AttemptResult struct {
	AttemptID string           `json:"attemptId"`
	Score     int              `json:"score"`
	MaxScore  int              `json:"maxScore"`
	Breakdown []GradedQuestion `json:"breakdown"`
}

// SubmitAttempt 评分并保存一次提交，同一答题者可多次提交
func (s *AttemptService) SubmitAttempt(ctx context.Context, slug string, req SubmitAttemptRequest) (*AttemptResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "AttemptService.SubmitAttempt")
	defer span.End()
	span.SetAttributes(attribute.String("quiz.slug", slug))

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	quiz, err := s.QuizRepo.FindBySlugWithQuestions(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	answers := make(map[string]string, len(req.Answers))
	for questionID, sel := range req.Answers {
		answers[questionID] = sel.OptionID
	}
	graded := GradeAttempt(quiz, answers)

	breakdown, err := json.Marshal(graded.Breakdown)
	if err != nil {
		return nil, err
	}

	attempt := &model.QuizAttempt{
		QuizID:    quiz.ID,
		Name:      req.Name,
		Email:     req.Email,
		Score:     graded.Score,
		MaxScore:  graded.MaxScore,
		Breakdown: datatypes.JSON(breakdown),
	}
	if err := s.AttemptRepo.Create(ctx, attempt); err != nil {
		return nil, err
	}

	monitoring.ObserveAttempt(graded.Score, graded.MaxScore)
	logger.Log.Info("quiz attempt submitted",
		zap.String("quiz_id", quiz.ID),
		zap.String("attempt_id", attempt.ID),
		zap.Int("score", graded.Score),
		zap.Int("max_score", graded.MaxScore),
	)

	return &AttemptResult{
		AttemptID: attempt.ID,
		Score:     graded.Score,
		MaxScore:  graded.MaxScore,
		Breakdown: graded.Breakdown,
	}, nil
}
