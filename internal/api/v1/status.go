package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized        bool `json:"initialized"`        // 是否已有演示数据
	TotalCertificates  int  `json:"totalCertificates"`  // 证书总数
	Valid              int  `json:"valid"`              // 有效证书数
	Expiring           int  `json:"expiring"`           // 即将过期证书数
	Expired            int  `json:"expired"`            // 已过期证书数
	TotalSuppliers     int  `json:"totalSuppliers"`     // 供应商总数
	SuppliersAtRisk    int  `json:"suppliersAtRisk"`    // 存在风险的供应商数
	ExpiringWindowDays int  `json:"expiringWindowDays"` // 当前过期窗口
	PendingSubmissions int  `json:"pendingSubmissions"` // 待审批提交数
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	window := h.expiringWindow(c)

	stats, err := h.compliance.Stats(h.now(), window)
	if err != nil {
		c.JSON(http.StatusOK, StatusResponse{Initialized: false})
		return
	}

	pending := 0
	if subs, err := h.store.ListSubmissions(); err == nil {
		pending = len(subs)
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:        stats.TotalCertificates > 0,
		TotalCertificates:  stats.TotalCertificates,
		Valid:              stats.Valid,
		Expiring:           stats.Expiring,
		Expired:            stats.Expired,
		TotalSuppliers:     stats.TotalSuppliers,
		SuppliersAtRisk:    stats.SuppliersAtRisk,
		ExpiringWindowDays: window,
		PendingSubmissions: pending,
	})
}
