package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "stayhub.admin/internal/domain/errors"
	"stayhub.admin/pkg/utils"
)

// Envelope is the body of every mutation response.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Page is the body of every list response.
type Page struct {
	Data       interface{} `json:"data"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
}

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// OK sends an enveloped success response
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Paginated sends a paginated list response
func Paginated(c *gin.Context, data interface{}, meta utils.PaginationMeta) {
	c.JSON(http.StatusOK, Page{
		Data:       data,
		Page:       meta.Page,
		Limit:      meta.Limit,
		Total:      meta.Total,
		TotalPages: meta.TotalPages,
	})
}

// Error sends an error response. Bare domain sentinels get mapped to their
// conventional status; anything unrecognized is a 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Status, gin.H{
		"success": false,
		"message": appErr.Message,
		"error":   appErr.Message,
	})
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest("invalid input")
	case errors.Is(err, domainerrors.ErrReasonRequired):
		return domainerrors.BadRequest("a reason is required for this action")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.Unauthorized("invalid email or password")
	case errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.Unauthorized("token has expired")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("insufficient permissions")
	case errors.Is(err, domainerrors.ErrAlreadyReviewed):
		return domainerrors.NewAppError(http.StatusConflict, "verification already reviewed", domainerrors.ErrAlreadyReviewed)
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	default:
		return domainerrors.InternalError(err)
	}
}
