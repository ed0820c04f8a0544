package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-onboard/internal/user"
	usererrors "go-onboard/internal/user/errors"
)

type fakeUserService struct {
	CreateFn     func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	GetAllFn     func(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, int64, error)
	GetByIDFn    func(ctx context.Context, id string) (user.UserResponse, error)
	GetByEmailFn func(ctx context.Context, email string) (user.UserResponse, error)
	UpdateFn     func(ctx context.Context, id string, req user.UpdateUserRequest) (user.UserResponse, error)
	DeleteFn     func(ctx context.Context, id string) error
}

func (f *fakeUserService) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeUserService) GetAll(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, int64, error) {
	return f.GetAllFn(ctx, filter)
}
func (f *fakeUserService) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeUserService) GetByEmail(ctx context.Context, email string) (user.UserResponse, error) {
	return f.GetByEmailFn(ctx, email)
}
func (f *fakeUserService) Update(ctx context.Context, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeUserService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{
			CreateFn: func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
				assert.Equal(t, "Jane Doe", req.Name)
				assert.Equal(t, user.RoleEmployee, req.Role)
				return user.UserResponse{ID: uuid.New().String(), Name: req.Name, Email: req.Email, Role: string(req.Role)}, nil
			},
		}

		h := user.NewHandler(svc)
		c, w := newTestContext(t)

		body := `{"name":"Jane Doe","email":"jane@example.com","role":"EMPLOYEE"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "jane@example.com")
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		h := user.NewHandler(&fakeUserService{})
		c, w := newTestContext(t)

		body := `{"name":"Jane Doe","email":"jane@example.com","role":"SUPERHERO"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		h := user.NewHandler(&fakeUserService{})
		c, w := newTestContext(t)

		body := `{"name":"Jane Doe","email":"not-an-email","role":"EMPLOYEE"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_GetByID(t *testing.T) {
	t.Run("rejects a non uuid id without touching the service", func(t *testing.T) {
		called := false
		svc := &fakeUserService{
			GetByIDFn: func(ctx context.Context, id string) (user.UserResponse, error) {
				called = true
				return user.UserResponse{}, nil
			},
		}

		h := user.NewHandler(svc)
		c, w := newTestContext(t)
		c.Request = httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("maps not found to 404", func(t *testing.T) {
		svc := &fakeUserService{
			GetByIDFn: func(ctx context.Context, id string) (user.UserResponse, error) {
				return user.UserResponse{}, usererrors.ErrUserNotFound
			},
		}

		h := user.NewHandler(svc)
		c, w := newTestContext(t)
		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodGet, "/users/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_List(t *testing.T) {
	t.Run("page size comes from the preference cookie", func(t *testing.T) {
		var gotFilter user.ListFilter
		svc := &fakeUserService{
			GetAllFn: func(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, int64, error) {
				gotFilter = filter
				return []user.UserResponse{}, 0, nil
			},
		}

		h := user.NewHandler(svc)
		c, w := newTestContext(t)
		c.Request = httptest.NewRequest(http.MethodGet, "/users?page=2&search=jane", nil)
		c.Request.AddCookie(&http.Cookie{Name: "table-items-per-page", Value: "25"})

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, gotFilter.Page)
		assert.Equal(t, 25, gotFilter.Limit)
		assert.Equal(t, "jane", gotFilter.Search)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeUserService{
			DeleteFn: func(ctx context.Context, got string) error {
				assert.Equal(t, id, got)
				return nil
			},
		}

		h := user.NewHandler(svc)
		c, w := newTestContext(t)
		c.Request = httptest.NewRequest(http.MethodDelete, "/users/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
