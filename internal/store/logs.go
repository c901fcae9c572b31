package store

import (
	"fmt"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
)

// AppendApproval 追加审批日志
func (s *Store) AppendApproval(e model.ApprovalEntry) error {
	err := s.Exec(`
		INSERT INTO approval_log (logged_at, action, supplier, material, certificate_id, note)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.LoggedAt, string(e.Action), e.Supplier, e.Material, e.CertificateID, e.Note)
	if err != nil {
		return fmt.Errorf("insert approval log failed: %w", err)
	}
	return nil
}

// ListApprovals 查询审批日志，最新的在前
func (s *Store) ListApprovals() ([]model.ApprovalEntry, error) {
	rows, err := s.Query(`
		SELECT id, logged_at, action, supplier, material, certificate_id, note
		FROM approval_log ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query approval log failed: %w", err)
	}
	defer rows.Close()

	var out []model.ApprovalEntry
	for rows.Next() {
		var e model.ApprovalEntry
		var action string
		if err := rows.Scan(&e.ID, &e.LoggedAt, &action, &e.Supplier, &e.Material, &e.CertificateID, &e.Note); err != nil {
			return nil, fmt.Errorf("scan approval log failed: %w", err)
		}
		e.Action = model.ApprovalAction(action)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate approval log failed: %w", err)
	}
	return out, nil
}

// AppendReminder 追加催办日志
func (s *Store) AppendReminder(e model.ReminderEntry) error {
	err := s.Exec(`
		INSERT INTO reminder_log (logged_at, supplier, reason, channel)
		VALUES (?, ?, ?, ?)
	`, e.LoggedAt, e.Supplier, string(e.Reason), string(e.Channel))
	if err != nil {
		return fmt.Errorf("insert reminder log failed: %w", err)
	}
	return nil
}

// ListReminders 查询催办日志，最新的在前
func (s *Store) ListReminders() ([]model.ReminderEntry, error) {
	rows, err := s.Query(`
		SELECT id, logged_at, supplier, reason, channel
		FROM reminder_log ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query reminder log failed: %w", err)
	}
	defer rows.Close()

	var out []model.ReminderEntry
	for rows.Next() {
		var e model.ReminderEntry
		var reason, channel string
		if err := rows.Scan(&e.ID, &e.LoggedAt, &e.Supplier, &reason, &channel); err != nil {
			return nil, fmt.Errorf("scan reminder log failed: %w", err)
		}
		e.Reason = model.ReminderReason(reason)
		e.Channel = model.ReminderChannel(channel)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminder log failed: %w", err)
	}
	return out, nil
}
