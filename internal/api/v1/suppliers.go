package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
)

type listSuppliersResponse struct {
	Items              []model.SupplierCompliance `json:"items"`
	Total              int                        `json:"total"`
	ExpiringWindowDays int                        `json:"expiringWindowDays"`
}

// ListSuppliers 供应商合规视图
// GET /api/suppliers?window=
func (h *Handler) ListSuppliers(c *gin.Context) {
	window := h.expiringWindow(c)

	view, err := h.compliance.SupplierView(h.now(), window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listSuppliersResponse{
		Items:              view,
		Total:              len(view),
		ExpiringWindowDays: window,
	})
}
