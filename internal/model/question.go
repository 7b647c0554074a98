package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "SINGLE_CHOICE"
	QuestionTypeTrueFalse    QuestionType = "TRUE_FALSE"

	// 旧版前端使用的单选类型名称
	questionTypeLegacySingle = "MCQ_SINGLE"

	TrueFalseMaxOptions = 2
)

// ParseQuestionType 解析题型，兼容旧名称 MCQ_SINGLE
func ParseQuestionType(s string) (QuestionType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(QuestionTypeSingleChoice), questionTypeLegacySingle:
		return QuestionTypeSingleChoice, true
	case string(QuestionTypeTrueFalse):
		return QuestionTypeTrueFalse, true
	}
	return "", false
}

// RequiresSingleCorrect 该题型同一时刻最多只能有一个正确选项
func (t QuestionType) RequiresSingleCorrect() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeTrueFalse
}

// IsAutoGraded 该题型计入自动评分
func (t QuestionType) IsAutoGraded() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeTrueFalse
}

// MaxOptions 返回选项数量上限，0 表示不限制
func (t QuestionType) MaxOptions() int {
	if t == QuestionTypeTrueFalse {
		return TrueFalseMaxOptions
	}
	return 0
}

// swagger:model Question
type Question struct {
	UUIDBase
	QuizID  string           `gorm:"index;type:varchar(36);not null" json:"quizId"`
	Text    string           `gorm:"type:text;not null" json:"text"`
	Type    QuestionType     `gorm:"size:20;not null" json:"type"`
	Order   *int             `gorm:"column:sort_order" json:"order"`
	Options []QuestionOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options"`
}

func (Question) TableName() string {
	return "questions"
}

// CorrectOption 返回第一个正确选项，没有则返回 nil
func (q *Question) CorrectOption() *QuestionOption {
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			return &q.Options[i]
		}
	}
	return nil
}

// swagger:model QuestionOption
type QuestionOption struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	QuestionID string    `gorm:"index;type:varchar(36);not null" json:"questionId"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"isCorrect"`
	Order      *int      `gorm:"column:sort_order" json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}

func (o *QuestionOption) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = GenerateUUID()
	}
	return
}
