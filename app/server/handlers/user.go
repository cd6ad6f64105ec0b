package handlers

import (
	"contact-manager/app/server/constants"
	"contact-manager/app/server/middlewares"
	"contact-manager/app/server/models"
	"contact-manager/app/server/types"
	"contact-manager/app/server/validators"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"strconv"
)

func (a *App) UserRegister(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.RegisterRequest
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 依次校验：必填字段、邮箱格式、密码强度
	if err := c.Validate(&req); err != nil {
		switch validators.FailedTag(err) {
		case validators.TagRequired:
			return a.erm(c, http.StatusBadRequest, constants.MessageFieldsRequired)
		case validators.TagEmailSyntax:
			return a.erm(c, http.StatusBadRequest, constants.MessageEmailInvalid)
		case validators.TagPasswordPolicy:
			return a.erm(c, http.StatusBadRequest, constants.MessagePasswordWeak)
		default:
			return a.er(c, http.StatusBadRequest)
		}
	}

	email := validators.NormalizeEmail(req.Email)

	// 检查是否已经注册
	var counter int64
	if err := a.db.WithContext(rctx).Model(&models.User{}).Where("email = ?", email).Count(&counter).Error; err != nil {
		a.l.Error("failed to count user by email", zap.Error(err))
		return a.ie(c, err)
	} else if counter > 0 {
		return a.erm(c, http.StatusConflict, fmt.Sprintf(constants.MessageAlreadyRegistered, email))
	}

	// 处理密码
	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.ie(c, err)
	}

	// 创建用户：公开注册只能得到普通、未锁定的账户
	user := models.User{
		Name:     req.Name,
		Email:    email,
		Role:     models.RoleUser,
		Password: passwordHash,
	}

	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发注册同一个邮箱
			return a.erm(c, http.StatusConflict, fmt.Sprintf(constants.MessageAlreadyRegistered, email))
		}
		a.l.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return a.ie(c, err)
	}

	return c.JSON(http.StatusOK, types.NewUserInfo(&user))
}

func (a *App) UserList(c echo.Context) error {
	rctx := c.Request().Context()

	showAll, page, limit, err := a.parsePagination(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	var users []models.User
	queryBase := a.db.WithContext(rctx).Model(&models.User{}).Order("created_at ASC")
	if !showAll {
		queryBase = queryBase.Limit(limit).Offset(page * limit)
	}

	if err := queryBase.Find(&users).Error; err != nil {
		a.l.Error("failed to get user list", zap.Error(err))
		return a.ie(c, err)
	}

	if !showAll {
		var usersCount int64
		if err := a.db.WithContext(rctx).Model(&models.User{}).Count(&usersCount).Error; err != nil {
			a.l.Error("failed to count user", zap.Error(err))
			return a.ie(c, err)
		}
		c.Response().Header().Set("X-Page-Max", strconv.FormatInt(a.calcMaxPage(usersCount, showAll, limit), 10))
	}

	resUsers := []*types.UserInfo{}
	for i := range users {
		resUsers = append(resUsers, types.NewUserInfo(&users[i]))
	}

	return c.JSON(http.StatusOK, resUsers)
}

func (a *App) UserLock(c echo.Context) error {
	return a.userSetBlocked(c, true)
}

func (a *App) UserUnlock(c echo.Context) error {
	return a.userSetBlocked(c, false)
}

func (a *App) userSetBlocked(c echo.Context, blocked bool) error {
	id, message, err := a.parseID(c)
	if err != nil {
		return a.erm(c, http.StatusBadRequest, message)
	}

	rctx := c.Request().Context()

	// 从数据库中获得指定的用户
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusNotFound, constants.MessageUserNotFound)
		} else {
			a.l.Error("failed to get user", zap.String("id", id.String()), zap.Error(err))
			return a.ie(c, err)
		}
	}

	// 更新锁定状态
	if err := a.db.WithContext(rctx).Model(&user).Update("is_blocked", blocked).Error; err != nil {
		a.l.Error("failed to update user", zap.String("id", id.String()), zap.Bool("blocked", blocked), zap.Error(err))
		return a.ie(c, err)
	}
	user.IsBlocked = blocked

	// 清理缓存，让鉴权立即看到新状态
	a.uc.Del(rctx, user.ID)

	return c.JSON(http.StatusOK, types.NewUserInfo(&user))
}

func (a *App) UserDelete(c echo.Context) error {
	id, message, err := a.parseID(c)
	if err != nil {
		return a.erm(c, http.StatusBadRequest, message)
	}

	caller, ok := middlewares.GetUser(c)
	if !ok {
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()

	// 确认用户存在
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusNotFound, constants.MessageUserNotFound)
		} else {
			a.l.Error("failed to get user", zap.String("id", id.String()), zap.Error(err))
			return a.ie(c, err)
		}
	}

	// 删除用户
	result := a.db.WithContext(rctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		a.l.Error("failed to delete user", zap.String("id", id.String()), zap.Error(result.Error))
		return a.ie(c, result.Error)
	}
	a.uc.Del(rctx, id)

	// 返回操作者创建的联系人列表
	var contacts []models.Contact
	if err := a.db.WithContext(rctx).
		Preload("Creator").
		Where("posted_by = ?", caller.ID).
		Order("created_at ASC").
		Find(&contacts).Error; err != nil {
		a.l.Error("failed to get contact list", zap.String("postedBy", caller.ID.String()), zap.Error(err))
		return a.ie(c, err)
	}

	resContacts := []types.ContactInfo{}
	for i := range contacts {
		resContacts = append(resContacts, types.NewContactInfo(&contacts[i]))
	}

	return c.JSON(http.StatusOK, &types.UserDeleteResponse{
		Result:   types.DeleteResult{DeletedCount: result.RowsAffected},
		Contacts: resContacts,
	})
}
