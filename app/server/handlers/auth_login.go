package handlers

import (
	"contact-manager/app/server/constants"
	"contact-manager/app/server/jwt"
	"contact-manager/app/server/middlewares"
	"contact-manager/app/server/models"
	"contact-manager/app/server/types"
	"contact-manager/app/server/validators"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"time"
)

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.LoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 校验字段：邮箱格式错误不单独提示
	if err := c.Validate(&req); err != nil {
		if validators.FailedTag(err) == validators.TagRequired {
			return a.erm(c, http.StatusBadRequest, constants.MessageLoginFieldsRequired)
		}
		return a.erm(c, http.StatusBadRequest, constants.MessageInvalidCredentials)
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "email = ?", validators.NormalizeEmail(req.Email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusUnauthorized, constants.MessageInvalidCredentials)
		} else {
			a.l.Error("failed to find user", zap.Error(err))
			return a.ie(c, err)
		}
	}

	// 被锁定的账户，先于密码校验
	if user.IsBlocked {
		return a.erm(c, http.StatusForbidden, constants.MessageAccountLocked)
	}

	// 提取密码 hash 并进行校验
	if match, err := a.hasher.Check(req.Password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.ie(c, err)
	} else if !match {
		// 密码不一致
		return a.erm(c, http.StatusUnauthorized, constants.MessageInvalidCredentials)
	}

	// 签出 JWT
	now := time.Now()
	token, err := a.jwt.SignToken(&jwt.User{
		ID:       user.ID,
		IssuedAt: now.Unix(),
		Expires:  now.Add(constants.AuthTokenDuration).Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.ie(c, err)
	}

	// 返回
	return c.JSON(http.StatusOK, &types.LoginToken{
		Token: token,
		User:  types.NewUserInfo(&user),
	})
}

func (a *App) Protected(c echo.Context) error {
	user, ok := middlewares.GetUser(c)
	if !ok {
		return a.er(c, http.StatusUnauthorized)
	}

	return c.JSON(http.StatusOK, types.NewUserInfo(user))
}
