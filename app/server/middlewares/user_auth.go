package middlewares

import (
	"contact-manager/app/server/cache"
	"contact-manager/app/server/constants"
	"contact-manager/app/server/jwt"
	"contact-manager/app/server/models"
	"contact-manager/app/server/types"
	"errors"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
)

// UserAuth 验证 Bearer token ，并把对应的用户放入 context
func UserAuth(j *jwt.JWT, db *gorm.DB, uc *cache.UserCache, l *zap.Logger) echo.MiddlewareFunc {
	gate := echojwt.WithConfig(echojwt.Config{
		ContextKey:  constants.ContextKeyJWTUser,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return j.ParseUser(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			l.Debug("rejected auth token", zap.String("URI", c.Request().RequestURI), zap.Error(err))
			return c.JSON(http.StatusUnauthorized, types.NewErrorMessage(http.StatusUnauthorized, ""))
		},
	})
	resolve := resolveUser(db, uc, l)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return gate(resolve(next))
	}
}

func resolveUser(db *gorm.DB, uc *cache.UserCache, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			jwtUser, ok := c.Get(constants.ContextKeyJWTUser).(*jwt.User)
			if !ok {
				return c.JSON(http.StatusUnauthorized, types.NewErrorMessage(http.StatusUnauthorized, ""))
			}

			rctx := c.Request().Context()

			// 查询缓存
			user, version := uc.Get(rctx, jwtUser.ID)
			if user == nil {
				// 查询数据库
				var dbUser models.User
				if err := db.WithContext(rctx).First(&dbUser, "id = ?", jwtUser.ID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						// 用户已经不存在了
						return c.JSON(http.StatusUnauthorized, types.NewErrorMessage(http.StatusUnauthorized, ""))
					}
					l.Error("failed to find token user", zap.String("id", jwtUser.ID.String()), zap.Error(err))
					return c.JSON(http.StatusInternalServerError, types.NewErrorMessage(http.StatusInternalServerError, ""))
				}

				// 加入缓存，方便下一次查询
				uc.Set(rctx, &dbUser, version)
				user = &dbUser
			}

			// 已锁定的账户不能继续使用之前签发的 token
			if user.IsBlocked {
				return c.JSON(http.StatusForbidden, types.NewErrorMessage(http.StatusForbidden, constants.MessageAccountLocked))
			}

			// 设置 context
			c.Set(constants.ContextKeyUser, user)

			// 继续处理
			return next(c)
		}
	}
}

// RequireAdmin 必须放在 UserAuth 之后
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := GetUser(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, types.NewErrorMessage(http.StatusUnauthorized, ""))
			}
			if !user.IsAdmin() {
				return c.JSON(http.StatusForbidden, types.NewErrorMessage(http.StatusForbidden, constants.MessageNotAuthorized))
			}
			return next(c)
		}
	}
}

func GetUser(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(constants.ContextKeyUser).(*models.User)
	return user, ok && user != nil
}
