package service

import (
	"context"
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
	"gorm.io/gorm"
)

// QuestionService 题目与选项的所有写入入口，负责维护以下规则：
//   - 单选 / 判断题同一时刻最多一个正确选项
//   - 判断题最多两个选项
//   - 题目有选项时至少保留一个正确选项，题目的第一个选项自动成为正确答案
//   - 删除题目时级联删除选项
//
// 选项写入在同一事务中完成，并先锁定所属题目行。
type QuestionService struct {
	DB           *gorm.DB
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	Cache        QuizCache
}

func NewQuestionService(db *gorm.DB, quizRepo *repository.QuizRepository, questionRepo *repository.QuestionRepository, cache QuizCache) *QuestionService {
	if cache == nil {
		cache = NoopQuizCache{}
	}
	return &QuestionService{
		DB:           db,
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
		Cache:        cache,
	}
}

// QuestionRequest questionId 为空时创建，否则更新
type QuestionRequest struct {
	QuestionID string                `json:"questionId"`
	Text       string                `json:"text"`
	Type       *string               `json:"type"`
	Order      util.UpdateField[int] `json:"order" swaggertype:"integer"`
}

// OptionRequest optionId 为空时创建，否则更新；未提供的字段保持原值
type OptionRequest struct {
	OptionID  string                `json:"optionId"`
	Text      *string               `json:"text"`
	IsCorrect *bool                 `json:"isCorrect"`
	Order     util.UpdateField[int] `json:"order" swaggertype:"integer"`
}

// UpsertQuestion 创建或更新题目，返回排好序的题目及是否为新建
func (s *QuestionService) UpsertQuestion(ctx context.Context, quizID string, req QuestionRequest) (*model.Question, bool, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, false, util.NewValidationError("question text is required")
	}

	var qType model.QuestionType
	if req.Type != nil {
		t, ok := model.ParseQuestionType(*req.Type)
		if !ok {
			return nil, false, util.NewValidationError("question type must be SINGLE_CHOICE or TRUE_FALSE")
		}
		qType = t
	}

	if !util.ValidOrder(req.Order.Ptr()) {
		return nil, false, util.ErrInvalidOrder
	}

	if _, err := s.QuizRepo.FindByID(ctx, quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, util.ErrQuizNotFound
		}
		return nil, false, err
	}

	var questionID string
	created := req.QuestionID == ""
	if created {
		if qType == "" {
			qType = model.QuestionTypeTrueFalse
		}
		q := &model.Question{
			QuizID: quizID,
			Text:   req.Text,
			Type:   qType,
			Order:  req.Order.Ptr(),
		}
		if err := s.QuestionRepo.Create(ctx, q); err != nil {
			return nil, false, err
		}
		questionID = q.ID
	} else {
		q, err := s.QuestionRepo.FindInQuiz(ctx, quizID, req.QuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, util.ErrQuestionNotFound
			}
			return nil, false, err
		}
		// 修改题型不回溯修正已有选项，规则只在选项写入时校验
		q.Text = req.Text
		if qType != "" {
			q.Type = qType
		}
		q.Order = req.Order.Apply(q.Order)
		if err := s.QuestionRepo.Update(ctx, q); err != nil {
			return nil, false, err
		}
		questionID = q.ID
	}

	question, err := s.loadQuestion(ctx, questionID)
	if err != nil {
		return nil, false, err
	}
	s.invalidate(ctx, quizID)
	return question, created, nil
}

// DeleteQuestion 删除题目及其全部选项
func (s *QuestionService) DeleteQuestion(ctx context.Context, quizID, questionID string) error {
	q, err := s.QuestionRepo.FindInQuiz(ctx, quizID, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}

	affected, err := s.QuestionRepo.Delete(ctx, q.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		// 并发删除
		return util.ErrQuestionNotFound
	}
	s.invalidate(ctx, quizID)
	return nil
}

// UpsertOption 创建或更新选项，返回所属题目（选项已排序）及是否为新建
func (s *QuestionService) UpsertOption(ctx context.Context, quizID, questionID string, req OptionRequest) (*model.Question, bool, error) {
	ctx, span := tracing.Tracer.Start(ctx, "QuestionService.UpsertOption")
	defer span.End()
	span.SetAttributes(attribute.String("question.id", questionID))

	if !util.ValidOrder(req.Order.Ptr()) {
		return nil, false, util.ErrInvalidOrder
	}

	created := req.OptionID == ""
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.QuestionRepo.WithTx(tx)

		question, err := repo.FindInQuizForUpdate(ctx, quizID, questionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrQuestionNotFound
			}
			return err
		}

		if created {
			return s.createOption(ctx, repo, question, req)
		}
		return s.updateOption(ctx, repo, question, req)
	})
	if err != nil {
		s.logRejection(err, questionID)
		return nil, false, err
	}

	question, err := s.loadQuestion(ctx, questionID)
	if err != nil {
		return nil, false, err
	}
	s.invalidate(ctx, quizID)
	return question, created, nil
}

func (s *QuestionService) createOption(ctx context.Context, repo *repository.QuestionRepository, question *model.Question, req OptionRequest) error {
	if req.Text == nil || strings.TrimSpace(*req.Text) == "" {
		return util.NewValidationError("option text is required")
	}

	count, err := repo.CountOptions(ctx, question.ID)
	if err != nil {
		return err
	}
	if limit := question.Type.MaxOptions(); limit > 0 && count >= int64(limit) {
		return util.ErrTrueFalseOptionCap
	}

	isCorrect := req.IsCorrect != nil && *req.IsCorrect
	// 第一个选项总是正确答案，忽略调用方传入的值
	if count == 0 {
		isCorrect = true
	}

	if !isCorrect {
		correct, err := repo.CountCorrectOptions(ctx, question.ID, "")
		if err != nil {
			return err
		}
		if correct == 0 {
			return util.ErrNoCorrectOption
		}
	}

	if isCorrect && question.Type.RequiresSingleCorrect() {
		if err := repo.ClearCorrect(ctx, question.ID, ""); err != nil {
			return err
		}
	}

	return repo.CreateOption(ctx, &model.QuestionOption{
		QuestionID: question.ID,
		Text:       *req.Text,
		IsCorrect:  isCorrect,
		Order:      req.Order.Ptr(),
	})
}

func (s *QuestionService) updateOption(ctx context.Context, repo *repository.QuestionRepository, question *model.Question, req OptionRequest) error {
	option, err := repo.FindOption(ctx, question.ID, req.OptionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrOptionNotFound
		}
		return err
	}

	text := option.Text
	if req.Text != nil {
		text = *req.Text
	}
	if strings.TrimSpace(text) == "" {
		return util.NewValidationError("option text is required")
	}

	isCorrect := option.IsCorrect
	if req.IsCorrect != nil {
		isCorrect = *req.IsCorrect
	}

	if !isCorrect {
		others, err := repo.CountCorrectOptions(ctx, question.ID, option.ID)
		if err != nil {
			return err
		}
		if others == 0 {
			return util.ErrNoCorrectOption
		}
	}

	if isCorrect && question.Type.RequiresSingleCorrect() {
		if err := repo.ClearCorrect(ctx, question.ID, option.ID); err != nil {
			return err
		}
	}

	option.Text = text
	option.IsCorrect = isCorrect
	option.Order = req.Order.Apply(option.Order)
	return repo.UpdateOption(ctx, option)
}

// DeleteOption 删除选项，唯一的正确选项不可删除
func (s *QuestionService) DeleteOption(ctx context.Context, quizID, questionID, optionID string) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.QuestionRepo.WithTx(tx)

		question, err := repo.FindInQuizForUpdate(ctx, quizID, questionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrQuestionNotFound
			}
			return err
		}

		option, err := repo.FindOption(ctx, question.ID, optionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrOptionNotFound
			}
			return err
		}

		if option.IsCorrect {
			others, err := repo.CountCorrectOptions(ctx, question.ID, option.ID)
			if err != nil {
				return err
			}
			if others == 0 {
				return util.ErrLastCorrectOption
			}
		}

		return repo.DeleteOption(ctx, option.ID)
	})
	if err != nil {
		s.logRejection(err, questionID)
		return err
	}

	s.invalidate(ctx, quizID)
	return nil
}

func (s *QuestionService) loadQuestion(ctx context.Context, id string) (*model.Question, error) {
	q, err := s.QuestionRepo.FindWithOptions(ctx, id)
	if err != nil {
		return nil, err
	}
	SortQuestion(q)
	return q, nil
}

func (s *QuestionService) invalidate(ctx context.Context, quizID string) {
	slug, err := s.QuizRepo.FindSlugByID(ctx, quizID)
	if err != nil {
		logger.Log.Warn("lookup quiz slug for cache invalidation failed", zap.String("quiz_id", quizID), zap.Error(err))
	}
	s.Cache.Invalidate(ctx, slug)
}

func (s *QuestionService) logRejection(err error, questionID string) {
	if !util.IsValidation(err) {
		return
	}
	monitoring.RuleRejections.WithLabelValues(rejectionRule(err)).Inc()
	logger.Log.Info("option write rejected",
		zap.String("question_id", questionID),
		zap.String("reason", err.Error()),
	)
}

func rejectionRule(err error) string {
	switch {
	case errors.Is(err, util.ErrNoCorrectOption):
		return "no_correct_option"
	case errors.Is(err, util.ErrLastCorrectOption):
		return "last_correct_option"
	case errors.Is(err, util.ErrTrueFalseOptionCap):
		return "true_false_cap"
	default:
		return "invalid_input"
	}
}
