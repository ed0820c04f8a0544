package preferences

import (
	"net/http"

	"go-onboard/internal/shared/apperror"
	"go-onboard/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type TablePreferencesRequest struct {
	ItemsPerPage int `json:"itemsPerPage" binding:"required,min=1,max=100"`
}

type TablePreferencesResponse struct {
	ItemsPerPage int `json:"itemsPerPage"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, TablePreferencesResponse{
		ItemsPerPage: ItemsPerPage(c),
	}, nil)
}

func (h *Handler) Put(c *gin.Context) {
	var req TablePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	Set(c, req.ItemsPerPage)
	response.Success(c, http.StatusOK, TablePreferencesResponse{
		ItemsPerPage: req.ItemsPerPage,
	}, nil)
}
