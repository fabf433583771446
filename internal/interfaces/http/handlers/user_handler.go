package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"stayhub.admin/internal/domain/entities"
	domainerrors "stayhub.admin/internal/domain/errors"
	"stayhub.admin/internal/interfaces/http/middleware"
	"stayhub.admin/internal/interfaces/http/response"
	"stayhub.admin/internal/usecases"
	"stayhub.admin/pkg/utils"
)

// UserHandler handles unified user endpoints
type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

type listUsersQuery struct {
	Platform      string `form:"platform"`
	UserType      string `form:"user_type"`
	AccountStatus string `form:"account_status"`
	Search        string `form:"search"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

// List returns a filtered page of unified users
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	var q listUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	filter := entities.UserFilter{
		Platform:      q.Platform,
		UserType:      q.UserType,
		AccountStatus: q.AccountStatus,
		Search:        q.Search,
	}
	page := utils.GetPaginationParams(q.Page, q.Limit)

	users, meta, err := h.userUsecase.List(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, users, meta)
}

// Get returns a single unified user
// GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	user, err := h.userUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// UpdateStatus changes a user's moderation status
// PATCH /api/v1/users/:id/status
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	var input entities.UpdateUserStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	adminID, _ := middleware.GetAdminID(c)
	user, err := h.userUsecase.UpdateStatus(c.Request.Context(), adminID, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User status updated", user)
}
