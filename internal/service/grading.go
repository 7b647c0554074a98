package service

import "quizhub_backend/internal/model"

// GradedQuestion 单题评分明细，只出现在提交结果中
type GradedQuestion struct {
	QuestionID       string  `json:"questionId"`
	SelectedOptionID *string `json:"selectedOptionId"`
	CorrectOptionID  *string `json:"correctOptionId"`
	IsCorrect        bool    `json:"isCorrect"`
}

type GradeResult struct {
	Score     int              `json:"score"`
	MaxScore  int              `json:"maxScore"`
	Breakdown []GradedQuestion `json:"breakdown"`
}

// GradeAttempt 按题目 ID -> 选项 ID 的作答映射评分。
// 只有自动评分题型计入满分，每题 1 分；未作答、答错或该题没有正确选项均得 0 分。
func GradeAttempt(quiz *model.Quiz, answers map[string]string) GradeResult {
	SortQuiz(quiz)

	res := GradeResult{Breakdown: []GradedQuestion{}}
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		if !q.Type.IsAutoGraded() {
			continue
		}
		res.MaxScore++

		item := GradedQuestion{QuestionID: q.ID}
		if selected := answers[q.ID]; selected != "" {
			item.SelectedOptionID = &selected
		}
		if correct := q.CorrectOption(); correct != nil {
			id := correct.ID
			item.CorrectOptionID = &id
		}
		item.IsCorrect = item.SelectedOptionID != nil &&
			item.CorrectOptionID != nil &&
			*item.SelectedOptionID == *item.CorrectOptionID

		if item.IsCorrect {
			res.Score++
		}
		res.Breakdown = append(res.Breakdown, item)
	}
	return res
}
