package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"b2b-showcase-backend/internal/domains/catalog/model"
	"b2b-showcase-backend/internal/domains/catalog/service"
	"b2b-showcase-backend/internal/infrastructure/storage"
	"b2b-showcase-backend/internal/shared/middleware"
	"b2b-showcase-backend/internal/shared/response"
	"b2b-showcase-backend/internal/shared/utils"
	"b2b-showcase-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type CatalogHandler struct {
	service service.ServiceInterface
	images  storage.ImageHost
}

func NewCatalogHandler(svc service.ServiceInterface, images storage.ImageHost) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		images:  images,
	}
}

// maxImageSize caps multipart uploads at 5 MB.
const maxImageSize = 5 << 20

// ========== READ: GET /v1/products ==========
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.ListProducts())
}

// ========== READ: GET /v1/products/featured ==========
// Showcase slots: at most 3 products carry the featured flag.
func (h *CatalogHandler) FeaturedProducts(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.FeaturedProducts())
}

// ========== READ: GET /v1/products/categories ==========
// Distinct category names referenced by products, in first-seen order.
func (h *CatalogHandler) DistinctCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.DistinctCategories())
}

// ========== CREATE: POST /v1/products ==========
func (h *CatalogHandler) AddProduct(c *gin.Context) {
	// ========== Parse Request ==========
	var req model.AddProductRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, err := h.service.AddProduct(c.Request.Context(), req, middleware.UserEmail(c))
	if err != nil {
		if !model.HandleCatalogError(c, err) {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// ========== DELETE: DELETE /v1/products/:id ==========
// Removing an unknown id is a no-op, not an error.
func (h *CatalogHandler) RemoveProduct(c *gin.Context) {
	if err := h.service.RemoveProduct(c.Request.Context(), c.Param("id")); err != nil {
		if !model.HandleCatalogError(c, err) {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

// ========== UPDATE: PATCH /v1/products/:id/image ==========
func (h *CatalogHandler) UpdateImage(c *gin.Context) {
	var req model.UpdateImageRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := h.service.UpdateImage(c.Request.Context(), c.Param("id"), req.ImageURL, middleware.UserEmail(c))
	if err != nil {
		if !model.HandleCatalogError(c, err) {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

// ========== UPDATE: POST /v1/products/:id/image/upload ==========
// Multipart upload. The file goes to the image host first, then the
// returned public URL runs through the normal image update path.
func (h *CatalogHandler) UploadProductImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		response.BadRequest(c, "image exceeds the 5MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.images.Replace(c.Request.Context(), "products", c.Param("id"), data, contentType)
	if err != nil {
		logger.Error("image upload failed", err)
		response.BadGateway(c, "image hosting is unavailable")
		return
	}

	if err := h.service.UpdateImage(c.Request.Context(), c.Param("id"), url, middleware.UserEmail(c)); err != nil {
		if !model.HandleCatalogError(c, err) {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"imageUrl": url})
}

// ========== UPLOAD: POST /v1/uploads/:folder ==========
// Standalone upload used by the creation flow: the client uploads
// first, then submits the returned URL with the draft. A hosting
// failure answers the placeholder URL instead of an error so creation
// can still proceed.
func (h *CatalogHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		response.BadRequest(c, "image exceeds the 5MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filename := utils.GenerateSlug(strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename)))
	if filename == "" {
		filename = uuid.New().String()
	}
	filename += strings.ToLower(filepath.Ext(fileHeader.Filename))

	url, err := h.images.Upload(c.Request.Context(), c.Param("folder"), filename, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		logger.Error("image upload failed, answering placeholder", err)
		response.Success(c, http.StatusOK, gin.H{
			"imageUrl":    storage.PlaceholderImageURL,
			"placeholder": true,
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{"imageUrl": url})
}

// ========== UPDATE: PATCH /v1/products/:id/featured ==========
// Enforces the 3-slot showcase cap; a full showcase answers 409.
func (h *CatalogHandler) SetFeatured(c *gin.Context) {
	var req model.UpdateFeaturedRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := h.service.SetFeatured(c.Request.Context(), c.Param("id"), *req.Featured, middleware.UserEmail(c))
	if err != nil {
		if !model.HandleCatalogError(c, err) {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"featured": *req.Featured})
}

// ========== UPDATE: PATCH /v1/products/:id/stock ==========
func (h *CatalogHandler) SetInStock(c *gin.Context) {
	var req model.UpdateStockRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := h.service.SetInStock(c.Request.Context(), c.Param("id"), *req.InStock, middleware.UserEmail(c))
	if err != nil {
		if !model.HandleCatalogError(c, err) {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"inStock": *req.InStock})
}

// ========== READ: GET /v1/categories ==========
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.ListCategories())
}

// ========== CREATE: POST /v1/categories ==========
func (h *CatalogHandler) AddCategory(c *gin.Context) {
	var req model.AddCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, err := h.service.AddCategory(c.Request.Context(), req, middleware.UserEmail(c))
	if err != nil {
		if !model.HandleCatalogError(c, err) {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// ========== DELETE: DELETE /v1/categories/:id ==========
// Categories are tombstoned, never hard-deleted.
func (h *CatalogHandler) RemoveCategory(c *gin.Context) {
	err := h.service.RemoveCategory(c.Request.Context(), c.Param("id"), middleware.UserEmail(c))
	if err != nil {
		if !model.HandleCatalogError(c, err) {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

// ========== UPDATE: PATCH /v1/categories/:id/image ==========
func (h *CatalogHandler) UpdateCategoryImage(c *gin.Context) {
	var req model.UpdateImageRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := h.service.UpdateCategoryImage(c.Request.Context(), c.Param("id"), req.ImageURL, middleware.UserEmail(c))
	if err != nil {
		if !model.HandleCatalogError(c, err) {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}
