package v1

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
	"github.com/inshiratech/halal-compliance-demo/internal/store"
)

// certificateRow 证书库列表行
type certificateRow struct {
	ID              string           `json:"id"`
	Supplier        string           `json:"supplier"`
	Material        string           `json:"material"`
	CertBody        string           `json:"certBody"`
	CertNo          string           `json:"certNo"`
	Country         string           `json:"country"`
	IssueDate       string           `json:"issueDate"`
	ExpiryDate      string           `json:"expiryDate"`
	DaysUntilExpiry int              `json:"daysUntilExpiry"`
	Status          model.CertStatus `json:"status"`
	StatusBadge     string           `json:"statusBadge"`
	FileName        string           `json:"fileName"`
}

type listCertificatesResponse struct {
	Items              []certificateRow `json:"items"`
	Total              int              `json:"total"`
	ExpiringWindowDays int              `json:"expiringWindowDays"`
}

// buildCertificateRows 计算过期天数与状态，按紧迫程度排序（稳定）
func (h *Handler) buildCertificateRows(certs []model.Certificate, windowDays int) []certificateRow {
	today := h.now()

	rows := make([]certificateRow, 0, len(certs))
	for _, cert := range certs {
		expiry, err := model.ParseDate(cert.ExpiryDate)
		if err != nil {
			continue
		}
		status := model.StatusFromExpiry(expiry, today, windowDays)
		rows = append(rows, certificateRow{
			ID:              cert.ID,
			Supplier:        cert.Supplier,
			Material:        cert.Material,
			CertBody:        cert.CertBody,
			CertNo:          cert.CertNo,
			Country:         cert.Country,
			IssueDate:       cert.IssueDate,
			ExpiryDate:      cert.ExpiryDate,
			DaysUntilExpiry: model.DaysUntil(expiry, today),
			Status:          status,
			StatusBadge:     status.Badge(),
			FileName:        cert.FileName,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DaysUntilExpiry < rows[j].DaysUntilExpiry
	})
	return rows
}

// ListCertificates 查询证书库
// GET /api/certificates?window=&status=&supplier=
func (h *Handler) ListCertificates(c *gin.Context) {
	window := h.expiringWindow(c)
	supplier := strings.TrimSpace(c.Query("supplier"))
	statusFilter := strings.ToUpper(strings.TrimSpace(c.Query("status")))

	certs, err := h.store.ListCertificates(store.CertQueryOptions{Supplier: supplier})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows := h.buildCertificateRows(certs, window)
	if statusFilter != "" {
		filtered := rows[:0]
		for _, r := range rows {
			if string(r.Status) == statusFilter {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	c.JSON(http.StatusOK, listCertificatesResponse{
		Items:              rows,
		Total:              len(rows),
		ExpiringWindowDays: window,
	})
}
