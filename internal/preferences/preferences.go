package preferences

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName matches what the web client writes for table views.
	CookieName = "table-items-per-page"

	DefaultItemsPerPage = 5
	maxItemsPerPage     = 100

	cookieMaxAge = 60 * 60 * 24 * 365 // 1 year
)

// ItemsPerPage resolves the effective page size for a list request: the
// explicit query parameter wins, then the preference cookie, then the
// default.
func ItemsPerPage(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			return clamp(v)
		}
	}

	if raw, err := c.Cookie(CookieName); err == nil {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			return clamp(v)
		}
	}

	return DefaultItemsPerPage
}

// Set persists the preference on the response.
func Set(c *gin.Context, itemsPerPage int) {
	c.SetCookie(CookieName, strconv.Itoa(clamp(itemsPerPage)), cookieMaxAge, "/", "", false, false)
}

func clamp(v int) int {
	if v > maxItemsPerPage {
		return maxItemsPerPage
	}
	return v
}
