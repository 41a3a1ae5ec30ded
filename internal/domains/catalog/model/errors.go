package model

import (
	"errors"
	"net/http"

	"b2b-showcase-backend/internal/shared/response"
	"b2b-showcase-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	ErrMissingRequiredFields = errors.New("name, description, price and category are required")
	ErrProductNotFound       = errors.New("product not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrFeaturedLimitReached  = errors.New("maximum of 3 featured products allowed, unfeature one first")
	ErrRemoteStore           = errors.New("remote catalog store error")
)

var catalogErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrMissingRequiredFields: {
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: "Name, description, price and category are required",
	},
	ErrProductNotFound: {
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: "The specified product does not exist",
	},
	ErrCategoryNotFound: {
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: "The specified category does not exist",
	},
	ErrFeaturedLimitReached: {
		Status:  http.StatusConflict,
		Code:    "FEATURED_LIMIT",
		Message: "Maximum of 3 featured products allowed. Please unfeature one first",
	},
	ErrRemoteStore: {
		Status:  http.StatusBadGateway,
		Code:    "REMOTE_STORE_ERROR",
		Message: "The catalog store rejected the operation",
	},
}

// HandleCatalogError writes the HTTP response for a service error.
// Returns false when err is nil so handlers can continue.
func HandleCatalogError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range catalogErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorWithDetails(c, cfg.Status, cfg.Code, cfg.Message, err.Error())
			return true
		}
	}

	// Lỗi không xác định
	logger.Error("catalog handler: unexpected error", err)
	response.InternalServerError(c, "Internal server error")
	return true
}
