package handlers

import (
	"contact-manager/app/server/constants"
	"fmt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseID 解析路径中的 id ，失败时返回给客户端的提示
func (a *App) parseID(c echo.Context) (uuid.UUID, string, error) {
	idStr := c.Param("id")
	if idStr == "" {
		return uuid.Nil, constants.MessageIDNotFound, fmt.Errorf("missing id")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, constants.MessageIDInvalid, fmt.Errorf("invalid id %q: %w", idStr, err)
	}

	return id, "", nil
}
