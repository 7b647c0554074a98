package repository

import (
	"context"
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) WithTx(tx *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: tx}
}

// FindInQuiz 按归属关系查找题目
func (r *QuestionRepository) FindInQuiz(ctx context.Context, quizID, questionID string) (*model.Question, error) {
	var q model.Question
	err := r.DB.WithContext(ctx).Where("id = ? AND quiz_id = ?", questionID, quizID).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// FindInQuizForUpdate 在事务中锁定题目行，串行化同一题目下的选项写入。
// SQLite 不支持 FOR UPDATE，其写事务本身已串行。
func (r *QuestionRepository) FindInQuizForUpdate(ctx context.Context, quizID, questionID string) (*model.Question, error) {
	query := r.DB.WithContext(ctx)
	if r.DB.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var q model.Question
	err := query.Where("id = ? AND quiz_id = ?", questionID, quizID).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) FindWithOptions(ctx context.Context, id string) (*model.Question, error) {
	var q model.Question
	err := r.DB.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Where("id = ?", id).
		First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.DB.WithContext(ctx).Omit("Options").Create(q).Error
}

// Update 保存文本、题型和排序值（排序值可置空）
func (r *QuestionRepository) Update(ctx context.Context, q *model.Question) error {
	return r.DB.WithContext(ctx).Model(q).
		Select("text", "type", "sort_order", "updated_at").
		Updates(map[string]interface{}{
			"text":       q.Text,
			"type":       q.Type,
			"sort_order": q.Order,
		}).Error
}

// Delete 级联删除选项后删除题目
func (r *QuestionRepository) Delete(ctx context.Context, id string) (int64, error) {
	var affected int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.QuestionOption{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Question{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (r *QuestionRepository) FindOption(ctx context.Context, questionID, optionID string) (*model.QuestionOption, error) {
	var o model.QuestionOption
	err := r.DB.WithContext(ctx).Where("id = ? AND question_id = ?", optionID, questionID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *QuestionRepository) CountOptions(ctx context.Context, questionID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.QuestionOption{}).
		Where("question_id = ?", questionID).
		Count(&count).Error
	return count, err
}

// CountCorrectOptions 统计正确选项数量，excludeID 非空时排除该选项
func (r *QuestionRepository) CountCorrectOptions(ctx context.Context, questionID, excludeID string) (int64, error) {
	var count int64
	query := r.DB.WithContext(ctx).Model(&model.QuestionOption{}).
		Where("question_id = ? AND is_correct = ?", questionID, true)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

// ClearCorrect 将题目下其他选项全部标记为错误，exceptID 非空时跳过该选项
func (r *QuestionRepository) ClearCorrect(ctx context.Context, questionID, exceptID string) error {
	query := r.DB.WithContext(ctx).Model(&model.QuestionOption{}).
		Where("question_id = ? AND is_correct = ?", questionID, true)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}
	return query.Update("is_correct", false).Error
}

func (r *QuestionRepository) CreateOption(ctx context.Context, o *model.QuestionOption) error {
	return r.DB.WithContext(ctx).Create(o).Error
}

func (r *QuestionRepository) UpdateOption(ctx context.Context, o *model.QuestionOption) error {
	return r.DB.WithContext(ctx).Model(o).
		Select("text", "is_correct", "sort_order").
		Updates(map[string]interface{}{
			"text":       o.Text,
			"is_correct": o.IsCorrect,
			"sort_order": o.Order,
		}).Error
}

func (r *QuestionRepository) DeleteOption(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.QuestionOption{}).Error
}
