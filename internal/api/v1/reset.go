package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResetDemoData 重置演示数据
// POST /api/reset
func (h *Handler) ResetDemoData(c *gin.Context) {
	if err := h.store.ResetDemoData(h.now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.compliance.Invalidate()

	c.JSON(http.StatusOK, gin.H{"reset": true})
}
