package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
	"github.com/inshiratech/halal-compliance-demo/internal/store"
)

// alertRow 到期告警行
type alertRow struct {
	Supplier        string           `json:"supplier"`
	Material        string           `json:"material"`
	ExpiryDate      string           `json:"expiryDate"`
	DaysUntilExpiry int              `json:"daysUntilExpiry"`
	Status          model.CertStatus `json:"status"`
	Severity        string           `json:"severity"` // warning / error
	Message         string           `json:"message"`
}

type listAlertsResponse struct {
	Items              []alertRow `json:"items"`
	Total              int        `json:"total"`
	ExpiringWindowDays int        `json:"expiringWindowDays"`
}

// ListAlerts 查询即将过期与已过期证书
// GET /api/alerts?window=
func (h *Handler) ListAlerts(c *gin.Context) {
	window := h.expiringWindow(c)

	certs, err := h.store.ListCertificates(store.CertQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var alerts []alertRow
	for _, row := range h.buildCertificateRows(certs, window) {
		if row.Status != model.StatusExpiring && row.Status != model.StatusExpired {
			continue
		}

		severity := "warning"
		if row.Status == model.StatusExpired {
			severity = "error"
		}
		alerts = append(alerts, alertRow{
			Supplier:        row.Supplier,
			Material:        row.Material,
			ExpiryDate:      row.ExpiryDate,
			DaysUntilExpiry: row.DaysUntilExpiry,
			Status:          row.Status,
			Severity:        severity,
			Message: fmt.Sprintf("%s — %s | Expires %s (%d days) — %s",
				row.Supplier, row.Material, row.ExpiryDate, row.DaysUntilExpiry, row.Status),
		})
	}

	c.JSON(http.StatusOK, listAlertsResponse{
		Items:              alerts,
		Total:              len(alerts),
		ExpiringWindowDays: window,
	})
}
