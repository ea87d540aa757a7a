package products

import (
	"errors"
	"net/http"
	"strconv"

	"product-studio/internal/domain/products"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func mustEmail(c *gin.Context) (string, bool) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authenticated"})
		return "", false
	}
	return email, true
}

// ------------------------------
// POST /products
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	email, ok := mustEmail(c)
	if !ok {
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input data"})
		return
	}

	var in CreateInput
	switch req.CreationType {
	case string(products.OriginNiche):
		in.Origin = products.OriginNiche
		if req.Niche != nil {
			in.Text = *req.Niche
		}
	case string(products.OriginIdea):
		in.Origin = products.OriginIdea
		if req.IdeaDescription != nil {
			in.Text = *req.IdeaDescription
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input data"})
		return
	}

	id, err := h.svc.Create(c.Request.Context(), email, in)
	if err != nil {
		status, msg := createFailure(err)
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "product_id": id})
}

// createFailure maps creation errors to a status and a user-facing message.
// Infrastructure failures collapse to generic text; the detail is already in
// the logs.
func createFailure(err error) (int, string) {
	switch {
	case errors.Is(err, products.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid input data"
	case errors.Is(err, products.ErrUserNotFound):
		return http.StatusNotFound, "User account not found"
	case errors.Is(err, products.ErrQuotaExceeded):
		return http.StatusForbidden, "Product limit reached on the free plan"
	case errors.Is(err, ErrGenerationFailed), errors.Is(err, ErrParseFailed):
		return http.StatusBadGateway, "Failed to generate content. Try again"
	default:
		return http.StatusInternalServerError, "Failed to save the product"
	}
}

// ------------------------------
// GET /products
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	email, ok := mustEmail(c)
	if !ok {
		return
	}

	items, err := h.svc.List(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": items})
}

// ------------------------------
// GET /products/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	email, ok := mustEmail(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	p, err := h.svc.Get(c.Request.Context(), uint(id), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	if p == nil {
		// Absent and foreign-owned look the same on purpose.
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or access denied"})
		return
	}

	c.JSON(http.StatusOK, toProductDTO(p))
}

// ------------------------------
// DELETE /products/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	email, ok := mustEmail(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	err = h.svc.Delete(c.Request.Context(), uint(id), email)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	case errors.Is(err, products.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, products.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
	}
}
