package repository

import (
	"context"
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// preloadQuestions 题目与选项按创建时间加载，排序值为空的记录因此保持创建顺序
func preloadQuestions(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		})
}

// Create 连同嵌套的题目和选项一起写入
func (r *QuizRepository) Create(ctx context.Context, quiz *model.Quiz) error {
	return r.DB.WithContext(ctx).Create(quiz).Error
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) FindByIDWithQuestions(ctx context.Context, id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := preloadQuestions(r.DB.WithContext(ctx)).Where("id = ?", id).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) FindBySlugWithQuestions(ctx context.Context, slug string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := preloadQuestions(r.DB.WithContext(ctx)).Where("slug = ?", slug).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) ListWithQuestions(ctx context.Context) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := preloadQuestions(r.DB.WithContext(ctx)).Order("created_at desc").Find(&quizzes).Error
	return quizzes, err
}

// ListSummaries 只查询公开列表需要的字段
func (r *QuizRepository) ListSummaries(ctx context.Context) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.WithContext(ctx).
		Select("id", "title", "description", "slug", "created_at", "updated_at").
		Order("created_at desc").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Quiz{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *QuizRepository) FindSlugByID(ctx context.Context, id string) (string, error) {
	var slug string
	err := r.DB.WithContext(ctx).Model(&model.Quiz{}).Where("id = ?", id).Limit(1).Pluck("slug", &slug).Error
	return slug, err
}

func (r *QuizRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.DB.WithContext(ctx).Model(&model.Quiz{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 在一个事务内删除测验及其题目、选项和提交记录
func (r *QuizRepository) Delete(ctx context.Context, id string) (int64, error) {
	var affected int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questionIDs := tx.Model(&model.Question{}).Select("id").Where("quiz_id = ?", id)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.QuestionOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.QuizAttempt{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Quiz{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}
