package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"math"
)

const (
	PageLimitDefault = 100
	PageLimitMax     = 1000
)

// parsePagination 返回 (showAll, page, limit, err)
func (a *App) parsePagination(c echo.Context) (bool, int, int, error) {
	hasPage, hasLimit := c.QueryParam("page") != "", c.QueryParam("limit") != ""
	if !hasPage && !hasLimit {
		// 没有分页参数：展示全部
		return true, -1, -1, nil
	}

	var page, limit uint
	if err := echo.QueryParamsBinder(c).
		Uint("page", &page).
		Uint("limit", &limit).
		BindError(); err != nil {
		return false, 0, 0, err
	}

	if page == 0 && limit == 0 && hasPage && hasLimit {
		// 特殊参数：展示全部
		return true, -1, -1, nil
	}

	// 映射前：第几页，每页限制多少个
	// 映射后：页减一，限制最多为 PageLimitMax
	var parsedPage, parsedLimit uint

	if page < 1 {
		parsedPage = 0
	} else {
		parsedPage = page - 1
	}

	if limit == 0 {
		parsedLimit = PageLimitDefault
	} else if limit > PageLimitMax {
		parsedLimit = PageLimitMax
	} else {
		parsedLimit = limit
	}

	// 偏移量 page * limit 必须能放进 int32
	if parsedPage > math.MaxInt32/parsedLimit {
		return false, 0, 0, fmt.Errorf("page %d out of range", page)
	}

	return false, int(parsedPage), int(parsedLimit), nil
}

func (a *App) calcMaxPage(count int64, showAll bool, limit int) int64 {
	if showAll {
		return 1
	} else {
		pageMax := count / int64(limit)
		if (count % int64(limit)) != 0 {
			pageMax++
		}
		return pageMax
	}
}
