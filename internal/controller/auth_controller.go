package controller

import (
	"net/http"
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	IsRelease   bool // 是否为生产环境，决定 Cookie 是否带 Secure
}

func NewAuthController(authService *service.AuthService, isRelease bool) *AuthController {
	return &AuthController{
		AuthService: authService,
		IsRelease:   isRelease,
	}
}

// Login godoc
// @Summary 管理员登录
// @Description 校验管理员凭据，返回令牌并写入 admin-auth Cookie
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.LoginRequest true "登录信息"
// @Success 200 {object} util.Response{data=object} "登录成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "用户名或密码错误"
// @Router /api/admin/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := util.BindJSON(ctx, &req); err != nil {
		util.HandleError(ctx, err)
		return
	}

	token, err := c.AuthService.Login(req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(util.AdminCookieName, token, util.AdminSessionMaxAge, "/", "", c.IsRelease, true)
	util.Success(ctx, gin.H{"token": token})
}

// SessionInfo 当前管理员会话
type SessionInfo struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Session godoc
// @Summary 当前会话
// @Description 返回当前登录的管理员及会话过期时间，前端据此判断登录状态
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=controller.SessionInfo}
// @Failure 401 {object} util.Response
// @Router /api/admin/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	claims := util.GetClaimsFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	info := SessionInfo{Username: claims.Subject, Role: claims.Role}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	util.Success(ctx, info)
}

// Logout godoc
// @Summary 管理员退出登录
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response
// @Router /api/admin/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(util.AdminCookieName, "", -1, "/", "", c.IsRelease, true)
	util.Success(ctx, nil)
}
