package handlers

import (
	"contact-manager/app/server/middlewares"
	"contact-manager/app/server/validators"
	"github.com/labstack/echo/v4"
)

func (a *App) RegisterHandlers(e *echo.Echo) {
	e.Validator = validators.NewEchoValidator()

	auth := middlewares.UserAuth(a.jwt, a.db, a.uc, a.l)
	admin := middlewares.RequireAdmin()

	e.GET("/", a.Root)
	e.GET("/healthz", a.HealthCheck)
	e.GET("/protected", a.Protected, auth)

	api := e.Group("/api")
	api.POST("/register", a.UserRegister)
	api.POST("/login", a.AuthLogin)
	api.GET("/users", a.UserList, auth, admin)
	api.PUT("/user/lock/:id", a.UserLock, auth, admin)
	api.PUT("/user/unlock/:id", a.UserUnlock, auth, admin)
	api.DELETE("/user/delete", a.UserDelete, auth, admin)
	api.DELETE("/user/delete/:id", a.UserDelete, auth, admin)
}
