package controller

import (
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// UpsertQuestion godoc
// @Summary 创建或修改题目
// @Description questionId 为空时创建（题型默认 TRUE_FALSE），否则修改；order 传 null 表示清空排序
// @Tags 题目管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "测验ID"
// @Param body body service.QuestionRequest true "题目内容"
// @Success 200 {object} util.Response{data=model.Question} "修改成功"
// @Success 201 {object} util.Response{data=model.Question} "创建成功"
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/quizzes/{id}/questions [post]
func (c *QuestionController) UpsertQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := util.BindJSON(ctx, &req); err != nil {
		util.HandleError(ctx, err)
		return
	}

	question, created, err := c.QuestionService.UpsertQuestion(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	respondUpsert(ctx, question, created)
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Description 同时删除题目的全部选项
// @Tags 题目管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "测验ID"
// @Param questionId path string true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/quizzes/{id}/questions/{questionId} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	err := c.QuestionService.DeleteQuestion(ctx.Request.Context(), ctx.Param("id"), ctx.Param("questionId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UpsertOption godoc
// @Summary 创建或修改选项
// @Description 单选/判断题设置正确答案时自动取消其他选项；题目至少保留一个正确答案；判断题最多两个选项
// @Tags 题目管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "测验ID"
// @Param questionId path string true "题目ID"
// @Param body body service.OptionRequest true "选项内容"
// @Success 200 {object} util.Response{data=model.Question} "修改成功"
// @Success 201 {object} util.Response{data=model.Question} "创建成功"
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/quizzes/{id}/questions/{questionId}/options [post]
func (c *QuestionController) UpsertOption(ctx *gin.Context) {
	var req service.OptionRequest
	if err := util.BindJSON(ctx, &req); err != nil {
		util.HandleError(ctx, err)
		return
	}

	question, created, err := c.QuestionService.UpsertOption(ctx.Request.Context(), ctx.Param("id"), ctx.Param("questionId"), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	respondUpsert(ctx, question, created)
}

// DeleteOption godoc
// @Summary 删除选项
// @Description 不能删除唯一的正确答案
// @Tags 题目管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "测验ID"
// @Param questionId path string true "题目ID"
// @Param optionId path string true "选项ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/quizzes/{id}/questions/{questionId}/options/{optionId} [delete]
func (c *QuestionController) DeleteOption(ctx *gin.Context) {
	err := c.QuestionService.DeleteOption(ctx.Request.Context(), ctx.Param("id"), ctx.Param("questionId"), ctx.Param("optionId"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func respondUpsert(ctx *gin.Context, data interface{}, created bool) {
	if created {
		util.Created(ctx, data)
		return
	}
	util.Success(ctx, data)
}
