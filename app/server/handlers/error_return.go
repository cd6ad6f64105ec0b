package handlers

import (
	"contact-manager/app/server/types"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return a.erm(c, statusCode, "")
}

func (a *App) erm(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, types.NewErrorMessage(statusCode, message))
}

// ie 内部错误：非生产环境下带上原始错误信息，方便调试
func (a *App) ie(c echo.Context, err error) error {
	message := ""
	if !a.isProd && err != nil {
		message = err.Error()
	}
	return a.erm(c, http.StatusInternalServerError, message)
}
