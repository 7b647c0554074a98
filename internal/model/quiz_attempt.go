package model

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrAttemptImmutable = errors.New("quiz attempts are immutable")

// QuizAttempt 一次公开答题的提交记录，创建后不可修改
// swagger:model QuizAttempt
type QuizAttempt struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	QuizID    string         `gorm:"index;type:varchar(36);not null" json:"quizId"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     string         `gorm:"size:255;not null" json:"email"`
	Score     int            `gorm:"not null;default:0" json:"score"`
	MaxScore  int            `gorm:"not null;default:0" json:"maxScore"`
	Breakdown datatypes.JSON `gorm:"type:json" json:"breakdown,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

func (a *QuizAttempt) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = GenerateUUID()
	}
	return
}

// BeforeUpdate 提交记录只允许插入
func (a *QuizAttempt) BeforeUpdate(tx *gorm.DB) (err error) {
	return ErrAttemptImmutable
}
