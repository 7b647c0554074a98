package service

import (
	"crypto/subtle"
	"quizhub_backend/internal/config"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService 管理后台只有一个管理员账号，凭据来自配置，配置热更新时通过 ApplyConfig 替换
type AuthService struct {
	mu     sync.RWMutex
	admin  config.AdminConfig
	secret string
	expire time.Duration
}

func NewAuthService(cfg *config.Config) *AuthService {
	s := &AuthService{}
	s.ApplyConfig(cfg)
	return s
}

func (s *AuthService) ApplyConfig(cfg *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = cfg.Admin
	s.secret = cfg.JWT.Secret
	s.expire = cfg.JWT.ExpireTime
	if s.expire <= 0 {
		s.expire = util.AdminSessionMaxAge * time.Second
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

// Login 校验管理员凭据并签发会话令牌
func (s *AuthService) Login(req LoginRequest) (string, error) {
	if err := validateStruct(req); err != nil {
		return "", err
	}

	s.mu.RLock()
	admin, secret, expire := s.admin, s.secret, s.expire
	s.mu.RUnlock()

	if !checkAdminCredentials(admin, strings.TrimSpace(req.Username), req.Password) {
		logger.Log.Warn("admin login failed", zap.String("username", req.Username))
		return "", util.ErrInvalidCredentials
	}
	return util.GenerateJWT(admin.Username, util.RoleAdmin, secret, expire)
}

func checkAdminCredentials(admin config.AdminConfig, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(admin.Username)) == 1

	var passOK bool
	if admin.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
	} else {
		passOK = admin.Password != "" && subtle.ConstantTimeCompare([]byte(password), []byte(admin.Password)) == 1
	}
	return userOK && passOK
}

// VerifyToken 令牌有效且角色为管理员时返回其声明
func (s *AuthService) VerifyToken(token string) (*util.Claims, error) {
	if token == "" {
		return nil, util.NewUnauthorizedError("missing admin session")
	}

	s.mu.RLock()
	secret := s.secret
	s.mu.RUnlock()

	claims, err := util.ParseJWT(token, secret)
	if err != nil {
		return nil, util.NewUnauthorizedError("invalid admin session")
	}
	if claims.Role != util.RoleAdmin {
		return nil, util.NewUnauthorizedError("invalid admin session")
	}
	return claims, nil
}
