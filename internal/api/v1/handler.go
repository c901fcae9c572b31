// Package v1 提供仪表盘 JSON API
package v1

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inshiratech/halal-compliance-demo/internal/config"
	"github.com/inshiratech/halal-compliance-demo/internal/service/compliance"
	"github.com/inshiratech/halal-compliance-demo/internal/store"
)

// 催办接口限流：每分钟每 IP 最多 5 次
const (
	reminderRateCapacity = 5
	reminderRateWindow   = time.Minute
)

// Handler V1 API 处理器
type Handler struct {
	store      *store.Store
	compliance *compliance.Service
	cfg        *config.AppConfig
	dataDir    string
	downloads  *packDownloadStore
	limiter    *rateLimiter
}

// NewHandler 创建 V1 API 处理器
func NewHandler(st *store.Store, svc *compliance.Service, cfg *config.AppConfig, dataDir string) *Handler {
	return &Handler{
		store:      st,
		compliance: svc,
		cfg:        cfg,
		dataDir:    dataDir,
		downloads:  newPackDownloadStore(),
		limiter:    newRateLimiter(reminderRateCapacity, reminderRateWindow),
	}
}

// Close 释放处理器持有的后台资源
func (h *Handler) Close() {
	h.limiter.stop()
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 证书库与告警
	router.GET("/certificates", h.ListCertificates)
	router.GET("/suppliers", h.ListSuppliers)
	router.GET("/alerts", h.ListAlerts)

	// 供应商入库
	router.POST("/intake/extract", h.ExtractIntake)
	router.GET("/intake/submissions", h.ListSubmissions)
	router.POST("/intake/submissions", h.CreateSubmission)
	router.POST("/intake/submissions/:id/approve", h.ApproveSubmission)
	router.POST("/intake/submissions/:id/reject", h.RejectSubmission)

	// 审批日志
	router.GET("/approvals", h.ListApprovals)

	// 催办中心
	router.GET("/reminders", h.ListReminders)
	router.POST("/reminders", h.rateLimit(h.SendReminder))

	// ROI 估算
	router.POST("/roi", h.CalculateROI)

	// 审计包导出
	router.POST("/audit-pack", h.ExportAuditPack)
	router.GET("/audit-pack/download/:token", h.DownloadAuditPack)

	// 重置演示数据
	router.POST("/reset", h.ResetDemoData)
}

// now 统一取 UTC 时间
func (h *Handler) now() time.Time {
	return time.Now().UTC()
}

// timestamp 日志时间戳格式，与原演示保持一致
func timestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04") + " UTC"
}

// expiringWindow 解析 window 查询参数，缺失时用配置默认值
func (h *Handler) expiringWindow(c *gin.Context) int {
	window := h.cfg.Alerts.ExpiringWindowDays
	if v := c.Query("window"); v != "" {
		window = parseIntWithDefault(v, window)
	}
	return config.ClampExpiringWindow(window)
}

func parseIntWithDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
