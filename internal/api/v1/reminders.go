package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
)

type sendReminderRequest struct {
	Supplier string `json:"supplier"`
	Reason   string `json:"reason"`
	Channel  string `json:"channel"`
}

// ListReminders 催办日志，最新的在前
// GET /api/reminders
func (h *Handler) ListReminders(c *gin.Context) {
	entries, err := h.store.ListReminders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []model.ReminderEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"items": entries, "total": len(entries)})
}

// SendReminder 发送催办（演示里只记日志，不真正外发）
// POST /api/reminders
func (h *Handler) SendReminder(c *gin.Context) {
	var req sendReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	supplier := strings.TrimSpace(req.Supplier)
	if supplier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "supplier is required"})
		return
	}
	exists, err := h.store.SupplierExists(supplier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "supplier not found"})
		return
	}

	reason := model.ReminderReason(req.Reason)
	if !model.ValidReason(reason) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder reason"})
		return
	}
	channel := model.ReminderChannel(req.Channel)
	if !model.ValidChannel(channel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder channel"})
		return
	}

	entry := model.ReminderEntry{
		LoggedAt: timestamp(h.now()),
		Supplier: supplier,
		Reason:   reason,
		Channel:  channel,
	}
	if err := h.store.AppendReminder(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Reminder logged: %s via %s — %s", supplier, channel, reason),
	})
}
