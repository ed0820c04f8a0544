package preferences_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-onboard/internal/preferences"
)

func testContext(target string, cookie string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != "" {
		c.Request.AddCookie(&http.Cookie{Name: preferences.CookieName, Value: cookie})
	}
	return c
}

func TestItemsPerPage(t *testing.T) {
	t.Run("defaults without query or cookie", func(t *testing.T) {
		c := testContext("/users", "")
		assert.Equal(t, preferences.DefaultItemsPerPage, preferences.ItemsPerPage(c))
	})

	t.Run("cookie overrides default", func(t *testing.T) {
		c := testContext("/users", "25")
		assert.Equal(t, 25, preferences.ItemsPerPage(c))
	})

	t.Run("query parameter wins over cookie", func(t *testing.T) {
		c := testContext("/users?limit=10", "25")
		assert.Equal(t, 10, preferences.ItemsPerPage(c))
	})

	t.Run("invalid values fall through", func(t *testing.T) {
		c := testContext("/users?limit=abc", "zero")
		assert.Equal(t, preferences.DefaultItemsPerPage, preferences.ItemsPerPage(c))

		c = testContext("/users?limit=0", "-3")
		assert.Equal(t, preferences.DefaultItemsPerPage, preferences.ItemsPerPage(c))
	})

	t.Run("oversized values clamp", func(t *testing.T) {
		c := testContext("/users?limit=5000", "")
		assert.Equal(t, 100, preferences.ItemsPerPage(c))
	})
}

func TestSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	preferences.Set(c, 20)

	res := w.Result()
	cookies := res.Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, preferences.CookieName, cookies[0].Name)
		assert.Equal(t, "20", cookies[0].Value)
	}
}
