package service

import (
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/util"
)

func questionOrder(q model.Question) *int     { return q.Order }
func optionOrder(o model.QuestionOption) *int { return o.Order }

// SortQuestion 按排序值整理选项，nil 选项集合规范为空切片
func SortQuestion(q *model.Question) {
	if q.Options == nil {
		q.Options = []model.QuestionOption{}
	}
	util.SortByOrder(q.Options, optionOrder)
}

// SortQuiz 依次整理题目及其选项
func SortQuiz(quiz *model.Quiz) {
	if quiz.Questions == nil {
		quiz.Questions = []model.Question{}
	}
	util.SortByOrder(quiz.Questions, questionOrder)
	for i := range quiz.Questions {
		SortQuestion(&quiz.Questions[i])
	}
}
