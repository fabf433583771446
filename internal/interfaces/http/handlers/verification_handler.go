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
)

// VerificationHandler handles verification review endpoints
type VerificationHandler struct {
	verifUsecase *usecases.VerificationUsecase
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verifUsecase *usecases.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{
		verifUsecase: verifUsecase,
	}
}

// Queue returns the verification queue, optionally filtered by status
// GET /api/v1/verification/queue
func (h *VerificationHandler) Queue(c *gin.Context) {
	items, err := h.verifUsecase.Queue(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"data":  items,
		"total": len(items),
	})
}

// Details returns a single verification item
// GET /api/v1/verification/:id
func (h *VerificationHandler) Details(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid verification id"))
		return
	}

	item, err := h.verifUsecase.Details(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// Approve resolves a verification item as approved
// POST /api/v1/verification/:id/approve
func (h *VerificationHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid verification id"))
		return
	}

	var input entities.ApproveVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	adminID, _ := middleware.GetAdminID(c)
	item, err := h.verifUsecase.Approve(c.Request.Context(), adminID, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Verification approved", item)
}

// Reject resolves a verification item as rejected
// POST /api/v1/verification/:id/reject
func (h *VerificationHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid verification id"))
		return
	}

	var input entities.RejectVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	adminID, _ := middleware.GetAdminID(c)
	item, err := h.verifUsecase.Reject(c.Request.Context(), adminID, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Verification rejected", item)
}

// Statistics returns aggregate queue counts
// GET /api/v1/verification/statistics
func (h *VerificationHandler) Statistics(c *gin.Context) {
	stats, err := h.verifUsecase.Statistics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
