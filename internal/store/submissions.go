package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
)

// ErrSubmissionNotFound 提交不存在
var ErrSubmissionNotFound = errors.New("submission not found")

// InsertSubmission 写入待审批提交
func (s *Store) InsertSubmission(sub model.Submission) error {
	err := s.Exec(`
		INSERT INTO submissions (id, submitted_at, supplier, country, material, cert_body, cert_no, expiry_date, file_name, note, state, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM submissions))
	`, sub.ID, sub.SubmittedAt, sub.Supplier, sub.Country, sub.Material, sub.CertBody, sub.CertNo,
		sub.ExpiryDate, sub.FileName, sub.Note, string(sub.State))
	if err != nil {
		return fmt.Errorf("insert submission failed: %w", err)
	}
	return nil
}

// ListSubmissions 查询待审批提交，最新的在前
func (s *Store) ListSubmissions() ([]model.Submission, error) {
	rows, err := s.Query(`
		SELECT id, submitted_at, supplier, country, material, cert_body, cert_no, expiry_date, file_name, note, state
		FROM submissions ORDER BY seq DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query submissions failed: %w", err)
	}
	defer rows.Close()

	var out []model.Submission
	for rows.Next() {
		var sub model.Submission
		var state string
		if err := rows.Scan(
			&sub.ID, &sub.SubmittedAt, &sub.Supplier, &sub.Country, &sub.Material,
			&sub.CertBody, &sub.CertNo, &sub.ExpiryDate, &sub.FileName, &sub.Note, &state,
		); err != nil {
			return nil, fmt.Errorf("scan submission failed: %w", err)
		}
		sub.State = model.SubmissionState(state)
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions failed: %w", err)
	}
	return out, nil
}

// GetSubmission 按 ID 查询提交
func (s *Store) GetSubmission(id string) (model.Submission, error) {
	var sub model.Submission
	var state string
	err := s.QueryRow(`
		SELECT id, submitted_at, supplier, country, material, cert_body, cert_no, expiry_date, file_name, note, state
		FROM submissions WHERE id = ?
	`, id).Scan(
		&sub.ID, &sub.SubmittedAt, &sub.Supplier, &sub.Country, &sub.Material,
		&sub.CertBody, &sub.CertNo, &sub.ExpiryDate, &sub.FileName, &sub.Note, &state,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Submission{}, ErrSubmissionNotFound
	}
	if err != nil {
		return model.Submission{}, fmt.Errorf("query submission %s failed: %w", id, err)
	}
	sub.State = model.SubmissionState(state)
	return sub, nil
}

// DeleteSubmission 删除提交（审批完成后出队）
func (s *Store) DeleteSubmission(id string) error {
	res, err := s.db.Exec("DELETE FROM submissions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete submission %s failed: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}
