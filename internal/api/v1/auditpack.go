package v1

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inshiratech/halal-compliance-demo/internal/auditpack"
	"github.com/inshiratech/halal-compliance-demo/internal/config"
	"github.com/inshiratech/halal-compliance-demo/internal/model"
)

const downloadTTL = 10 * time.Minute

const (
	formatZip  = "zip"
	formatXlsx = "xlsx"
)

const (
	zipDownloadName  = "audit_pack_demo.zip"
	xlsxDownloadName = "certificate_register_demo.xlsx"
	zipContentType   = "application/zip"
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type exportAuditPackRequest struct {
	IDs    []string `json:"ids"`
	Format string   `json:"format"` // zip（默认）或 xlsx
	Window int      `json:"window"` // 可选，过期窗口
}

// ExportAuditPack 导出审计包并发放下载令牌
// POST /api/audit-pack
func (h *Handler) ExportAuditPack(c *gin.Context) {
	var req exportAuditPackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "select at least one certificate"})
		return
	}

	format := req.Format
	if format == "" {
		format = formatZip
	}
	if format != formatZip && format != formatXlsx {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be zip or xlsx"})
		return
	}

	window := h.cfg.Alerts.ExpiringWindowDays
	if req.Window > 0 {
		window = req.Window
	}
	window = config.ClampExpiringWindow(window)

	certs, err := h.store.GetCertificatesByIDs(req.IDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(certs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no matching certificates"})
		return
	}

	today := h.now()
	rows := make([]auditpack.RegisterRow, 0, len(certs))
	for _, cert := range certs {
		expiry, err := model.ParseDate(cert.ExpiryDate)
		if err != nil {
			continue
		}
		rows = append(rows, auditpack.RegisterRow{
			Row: auditpack.Row{
				Certificate: cert,
				Status:      model.StatusFromExpiry(expiry, today, window),
			},
			DaysUntilExpiry: model.DaysUntil(expiry, today),
		})
	}

	exportDir := filepath.Join(h.dataDir, "exports")

	var filePath, fileName, contentType string
	switch format {
	case formatZip:
		zipRows := make([]auditpack.Row, 0, len(rows))
		for _, r := range rows {
			zipRows = append(zipRows, r.Row)
		}
		data, err := auditpack.BuildZip(zipRows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		filePath = filepath.Join(exportDir, fmt.Sprintf("audit_pack_%d.zip", time.Now().UnixNano()))
		if err := os.WriteFile(filePath, data, 0644); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("write export failed: %v", err)})
			return
		}
		fileName = zipDownloadName
		contentType = zipContentType

	case formatXlsx:
		f, err := auditpack.BuildRegister(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()

		filePath = filepath.Join(exportDir, fmt.Sprintf("certificate_register_%d.xlsx", time.Now().UnixNano()))
		if err := f.SaveAs(filePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("write export failed: %v", err)})
			return
		}
		fileName = xlsxDownloadName
		contentType = xlsxContentType
	}

	token := h.downloads.put(filePath, fileName, contentType, downloadTTL)

	c.JSON(http.StatusOK, gin.H{
		"downloadUrl":      fmt.Sprintf("/api/audit-pack/download/%s", token),
		"expiresInSeconds": int(downloadTTL.Seconds()),
		"certificates":     len(rows),
		"format":           format,
	})
}

// DownloadAuditPack 按令牌下载审计包（一次性）
// GET /api/audit-pack/download/:token
func (h *Handler) DownloadAuditPack(c *gin.Context) {
	token := c.Param("token")

	dl, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expired or not found"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.fileName))
	c.Header("Content-Type", dl.contentType)
	c.File(dl.filePath)

	// 令牌一次性使用；磁盘文件随后清理
	h.downloads.delete(token)
	_ = os.Remove(dl.filePath)
}
