package model

// ApprovalAction 审批动作
type ApprovalAction string

const (
	ActionApproved ApprovalAction = "APPROVED"
	ActionRejected ApprovalAction = "REJECTED"
)

// ApprovalEntry 审批日志的一条记录
type ApprovalEntry struct {
	ID            int64          `json:"id"`
	LoggedAt      string         `json:"loggedAt"`
	Action        ApprovalAction `json:"action"`
	Supplier      string         `json:"supplier"`
	Material      string         `json:"material"`
	CertificateID string         `json:"certificateId"`
	Note          string         `json:"note"`
}

// ReminderReason 催办原因，与演示页面下拉选项一致
type ReminderReason string

const (
	ReasonMissingCert  ReminderReason = "Missing certificate"
	ReasonExpiringSoon ReminderReason = "Certificate expiring soon"
	ReasonExpired      ReminderReason = "Certificate expired"
	ReasonAuditRequest ReminderReason = "Audit evidence request"
)

// ReminderChannel 催办渠道
type ReminderChannel string

const (
	ChannelEmail    ReminderChannel = "Email"
	ChannelWhatsApp ReminderChannel = "WhatsApp"
	ChannelSMS      ReminderChannel = "SMS"
)

// ReminderEntry 催办日志的一条记录（演示里只记日志，不真正外发）
type ReminderEntry struct {
	ID       int64           `json:"id"`
	LoggedAt string          `json:"loggedAt"`
	Supplier string          `json:"supplier"`
	Reason   ReminderReason  `json:"reason"`
	Channel  ReminderChannel `json:"channel"`
}

// ValidReason 校验催办原因
func ValidReason(r ReminderReason) bool {
	switch r {
	case ReasonMissingCert, ReasonExpiringSoon, ReasonExpired, ReasonAuditRequest:
		return true
	}
	return false
}

// ValidChannel 校验催办渠道
func ValidChannel(ch ReminderChannel) bool {
	switch ch {
	case ChannelEmail, ChannelWhatsApp, ChannelSMS:
		return true
	}
	return false
}
