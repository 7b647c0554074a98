package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const slugMaxRetries = 5

type QuizService struct {
	QuizRepo    *repository.QuizRepository
	AttemptRepo *repository.QuizAttemptRepository
	Storage     *StorageService
	Cache       QuizCache
}

func NewQuizService(quizRepo *repository.QuizRepository, attemptRepo *repository.QuizAttemptRepository, storage *StorageService, cache QuizCache) *QuizService {
	if cache == nil {
		cache = NoopQuizCache{}
	}
	return &QuizService{
		QuizRepo:    quizRepo,
		AttemptRepo: attemptRepo,
		Storage:     storage,
		Cache:       cache,
	}
}

type CreateQuizRequest struct {
	Title       string                  `json:"title" validate:"notblank,max=255"`
	Description *string                 `json:"description"`
	Questions   []CreateQuestionRequest `json:"questions" validate:"dive"`
}

type CreateQuestionRequest struct {
	Text    string                `json:"text" validate:"notblank"`
	Type    string                `json:"type"`
	Order   util.UpdateField[int] `json:"order" swaggertype:"integer"`
	Options []CreateOptionRequest `json:"options" validate:"dive"`
}

type CreateOptionRequest struct {
	Text      string                `json:"text" validate:"notblank"`
	IsCorrect bool                  `json:"isCorrect"`
	Order     util.UpdateField[int] `json:"order" swaggertype:"integer"`
}

// UpdateQuizRequest 只允许修改标题和描述，slug 保持不变
type UpdateQuizRequest struct {
	Title       *string                  `json:"title" validate:"omitempty,notblank,max=255"`
	Description util.UpdateField[string] `json:"description" swaggertype:"string"`
}

// ExportResult 导出文件只能通过管理端下载接口读取
type ExportResult struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

var exportNamePattern = regexp.MustCompile(`^[a-z0-9-]+\.json$`)

func exportPrefix(quizID string) string {
	return "exports/quizzes/" + quizID + "/"
}

// List 管理端列表，按创建时间倒序，题目与选项已排序
func (s *QuizService) List(ctx context.Context) ([]model.Quiz, error) {
	quizzes, err := s.QuizRepo.ListWithQuestions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range quizzes {
		SortQuiz(&quizzes[i])
	}
	return quizzes, nil
}

func (s *QuizService) Get(ctx context.Context, id string) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByIDWithQuestions(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	SortQuiz(quiz)
	return quiz, nil
}

// Create 创建测验，可同时携带题目与选项，嵌套数据遵循与单独写入相同的规则
func (s *QuizService) Create(ctx context.Context, req CreateQuizRequest) (*model.Quiz, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, req.Title)
	if err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Slug:        slug,
		Questions:   questions,
	}
	if err := s.QuizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}

	logger.Log.Info("quiz created", zap.String("quiz_id", quiz.ID), zap.String("slug", quiz.Slug))
	s.Cache.Invalidate(ctx)
	return s.Get(ctx, quiz.ID)
}

func buildQuestions(reqs []CreateQuestionRequest) ([]model.Question, error) {
	questions := make([]model.Question, 0, len(reqs))
	for i, qr := range reqs {
		qType := model.QuestionTypeTrueFalse
		if qr.Type != "" {
			t, ok := model.ParseQuestionType(qr.Type)
			if !ok {
				return nil, util.NewValidationError(fmt.Sprintf("questions[%d]: type must be SINGLE_CHOICE or TRUE_FALSE", i))
			}
			qType = t
		}

		if !util.ValidOrder(qr.Order.Ptr()) {
			return nil, util.ErrInvalidOrder
		}
		if limit := qType.MaxOptions(); limit > 0 && len(qr.Options) > limit {
			return nil, util.ErrTrueFalseOptionCap
		}

		options := make([]model.QuestionOption, 0, len(qr.Options))
		correct := 0
		for _, opt := range qr.Options {
			if !util.ValidOrder(opt.Order.Ptr()) {
				return nil, util.ErrInvalidOrder
			}
			if opt.IsCorrect {
				correct++
			}
			options = append(options, model.QuestionOption{
				Text:      opt.Text,
				IsCorrect: opt.IsCorrect,
				Order:     opt.Order.Ptr(),
			})
		}
		if correct > 1 && qType.RequiresSingleCorrect() {
			return nil, util.NewValidationError(fmt.Sprintf("questions[%d]: only one option can be correct", i))
		}
		if correct == 0 && len(options) > 0 {
			options[0].IsCorrect = true
		}

		questions = append(questions, model.Question{
			Text:    qr.Text,
			Type:    qType,
			Order:   qr.Order.Ptr(),
			Options: options,
		})
	}
	return questions, nil
}

func (s *QuizService) uniqueSlug(ctx context.Context, title string) (string, error) {
	for i := 0; i < slugMaxRetries; i++ {
		slug := util.GenerateSlug(title)
		exists, err := s.QuizRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique slug after %d attempts", slugMaxRetries)
}

func (s *QuizService) Update(ctx context.Context, id string, req UpdateQuizRequest) (*model.Quiz, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	quiz, err := s.QuizRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description.ShouldUpdate() {
		fields["description"] = req.Description.Ptr()
	}
	if len(fields) > 0 {
		fields["updated_at"] = time.Now()
		if err := s.QuizRepo.UpdateFields(ctx, quiz.ID, fields); err != nil {
			return nil, err
		}
		s.Cache.Invalidate(ctx, quiz.Slug)
	}
	return s.Get(ctx, quiz.ID)
}

// Delete 删除测验及其题目、选项和提交记录
func (s *QuizService) Delete(ctx context.Context, id string) error {
	quiz, err := s.QuizRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuizNotFound
		}
		return err
	}

	affected, err := s.QuizRepo.Delete(ctx, quiz.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrQuizNotFound
	}

	// 导出文件含正确答案，随测验一起删除
	removed, err := s.Storage.DeleteAll(ctx, exportPrefix(quiz.ID))
	if err != nil {
		logger.Log.Warn("failed to remove quiz exports", zap.String("quiz_id", quiz.ID), zap.Error(err))
	}

	logger.Log.Info("quiz deleted", zap.String("quiz_id", quiz.ID), zap.Int("exports_removed", removed))
	s.Cache.Invalidate(ctx, quiz.Slug)
	return nil
}

// ListAttempts 分页查询测验的提交记录，最新的在前
func (s *QuizService) ListAttempts(ctx context.Context, quizID string, page, limit int) ([]model.QuizAttempt, int64, error) {
	if _, err := s.QuizRepo.FindByID(ctx, quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, util.ErrQuizNotFound
		}
		return nil, 0, err
	}
	return s.AttemptRepo.ListByQuiz(ctx, quizID, page, limit)
}

// Export 将测验（含正确答案）的 JSON 快照写入存储
func (s *QuizService) Export(ctx context.Context, id string) (*ExportResult, error) {
	quiz, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(quiz, "", "  ")
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s-%s-%s.json", quiz.Slug, time.Now().Format("20060102150405"), uuid.NewString()[:8])
	key := exportPrefix(quiz.ID) + name
	if err := s.Storage.UploadBytes(ctx, key, data, util.MimeJSON); err != nil {
		return nil, err
	}

	logger.Log.Info("quiz exported", zap.String("quiz_id", quiz.ID), zap.String("key", key))
	return &ExportResult{
		Key:  key,
		Name: name,
		URL:  "/api/admin/quizzes/" + quiz.ID + "/exports/" + name,
	}, nil
}

// OpenExport 读取测验的导出文件，调用方负责关闭
func (s *QuizService) OpenExport(ctx context.Context, quizID, name string) (io.ReadCloser, error) {
	if !exportNamePattern.MatchString(name) {
		return nil, util.ErrExportNotFound
	}

	rc, err := s.Storage.Open(ctx, exportPrefix(quizID)+name)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, util.ErrExportNotFound
		}
		return nil, err
	}
	return rc, nil
}
