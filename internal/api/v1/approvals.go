package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
)

// ListApprovals 审批日志，最新的在前
// GET /api/approvals
func (h *Handler) ListApprovals(c *gin.Context) {
	entries, err := h.store.ListApprovals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []model.ApprovalEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"items": entries, "total": len(entries)})
}
