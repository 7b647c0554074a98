package util

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// BindJSON 绑定请求体，解码错误统一转换为 ValidationError，不向调用方暴露解码器细节
func BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return bindError(err)
	}
	return nil
}

func bindError(err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return NewValidationError(fmt.Sprintf("%s has an invalid type", typeErr.Field))
	}
	return ErrInvalidBody
}
