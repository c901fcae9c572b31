package store

import (
	"database/sql"
	"fmt"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
)

// CertQueryOptions 证书查询条件
type CertQueryOptions struct {
	Supplier string // 精确匹配，空值表示不过滤
}

func scanCertificate(rows *sql.Rows) (model.Certificate, error) {
	var c model.Certificate
	err := rows.Scan(
		&c.ID, &c.Supplier, &c.Material, &c.CertBody, &c.CertNo,
		&c.Country, &c.IssueDate, &c.ExpiryDate, &c.FileName,
	)
	return c, err
}

// ListCertificates 查询证书，按过期日升序（最紧迫的在前）
func (s *Store) ListCertificates(opts CertQueryOptions) ([]model.Certificate, error) {
	query := `
		SELECT id, supplier, material, cert_body, cert_no, country, issue_date, expiry_date, file_name
		FROM certificates
	`
	var args []interface{}
	if opts.Supplier != "" {
		query += " WHERE supplier = ?"
		args = append(args, opts.Supplier)
	}
	query += " ORDER BY expiry_date ASC, id ASC"

	rows, err := s.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query certificates failed: %w", err)
	}
	defer rows.Close()

	var out []model.Certificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certificate failed: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate certificates failed: %w", err)
	}
	return out, nil
}

// GetCertificatesByIDs 按 ID 集合查询证书，保持过期日升序
func (s *Store) GetCertificatesByIDs(ids []string) ([]model.Certificate, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, supplier, material, cert_body, cert_no, country, issue_date, expiry_date, file_name
		FROM certificates WHERE id IN (`
	args := make([]interface{}, 0, len(ids))
	for i, id := range ids {
		if i > 0 {
			query += ","
		}
		query += "?"
		args = append(args, id)
	}
	query += ") ORDER BY expiry_date ASC, id ASC"

	rows, err := s.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query certificates by ids failed: %w", err)
	}
	defer rows.Close()

	var out []model.Certificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certificate failed: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate certificates failed: %w", err)
	}
	return out, nil
}

// CountCertificates 证书总数
func (s *Store) CountCertificates() (int, error) {
	var n int
	if err := s.QueryRow("SELECT COUNT(1) FROM certificates").Scan(&n); err != nil {
		return 0, fmt.Errorf("count certificates failed: %w", err)
	}
	return n, nil
}

// InsertCertificate 新增证书（入库审批通过后调用）
func (s *Store) InsertCertificate(c model.Certificate) error {
	err := s.Exec(`
		INSERT INTO certificates (id, supplier, material, cert_body, cert_no, country, issue_date, expiry_date, file_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Supplier, c.Material, c.CertBody, c.CertNo, c.Country, c.IssueDate, c.ExpiryDate, c.FileName)
	if err != nil {
		return fmt.Errorf("insert certificate %s failed: %w", c.ID, err)
	}
	return nil
}

// NextCertificateID 生成下一个证书编号 CERT-NNN
func (s *Store) NextCertificateID() (string, error) {
	n, err := s.CountCertificates()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CERT-%03d", n+1), nil
}
