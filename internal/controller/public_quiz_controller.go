package controller

import (
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PublicQuizController struct {
	PublicService  *service.PublicQuizService
	AttemptService *service.AttemptService
}

func NewPublicQuizController(publicService *service.PublicQuizService, attemptService *service.AttemptService) *PublicQuizController {
	return &PublicQuizController{
		PublicService:  publicService,
		AttemptService: attemptService,
	}
}

// ListQuizzes godoc
// @Summary 公开测验列表
// @Tags 答题
// @Produce json
// @Success 200 {object} util.Response{data=[]service.PublicQuizSummary}
// @Router /api/public/quizzes [get]
func (c *PublicQuizController) ListQuizzes(ctx *gin.Context) {
	list, err := c.PublicService.ListQuizzes(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// GetQuiz godoc
// @Summary 获取答题用测验
// @Description 选项不包含正确答案
// @Tags 答题
// @Produce json
// @Param slug path string true "测验 slug"
// @Success 200 {object} util.Response{data=service.PublicQuiz}
// @Failure 404 {object} util.Response
// @Router /api/public/quizzes/{slug} [get]
func (c *PublicQuizController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.PublicService.GetQuizBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// SubmitAttempt godoc
// @Summary 提交答卷
// @Description 评分并保存提交记录，返回得分与逐题明细
// @Tags 答题
// @Accept json
// @Produce json
// @Param slug path string true "测验 slug"
// @Param body body service.SubmitAttemptRequest true "答卷"
// @Success 201 {object} util.Response{data=service.AttemptResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 429 {object} util.Response
// @Router /api/public/quizzes/{slug}/attempts [post]
func (c *PublicQuizController) SubmitAttempt(ctx *gin.Context) {
	var req service.SubmitAttemptRequest
	if err := util.BindJSON(ctx, &req); err != nil {
		util.HandleError(ctx, err)
		return
	}

	result, err := c.AttemptService.SubmitAttempt(ctx.Request.Context(), ctx.Param("slug"), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, result)
}
