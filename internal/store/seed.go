package store

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
)

//go:embed demo_seed.json
var seedFS embed.FS

type seedSupplier struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Country  string `json:"country"`
}

type seedCertificate struct {
	ID       string `json:"id"`
	Supplier string `json:"supplier"`
	Material string `json:"material"`
	CertBody string `json:"cert_body"`
	CertNo   string `json:"cert_no"`
	Country  string `json:"country"`
	// 相对今天的天数偏移，保证演示数据在任何日期运行都能覆盖
	// 有效/即将过期/已过期三种状态
	IssuedDaysAgo int    `json:"issued_days_ago"`
	ExpiresInDays int    `json:"expires_in_days"`
	FileName      string `json:"file_name"`
}

type seedData struct {
	Suppliers    []seedSupplier    `json:"suppliers"`
	Certificates []seedCertificate `json:"certificates"`
}

func loadSeed() (*seedData, error) {
	raw, err := seedFS.ReadFile("demo_seed.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read demo_seed.json: %w", err)
	}

	var seed seedData
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse demo_seed.json: %w", err)
	}
	return &seed, nil
}

// IsSeeded 判断演示数据是否已初始化
func (s *Store) IsSeeded() (bool, error) {
	var n int
	if err := s.QueryRow("SELECT COUNT(1) FROM suppliers").Scan(&n); err != nil {
		return false, fmt.Errorf("count suppliers failed: %w", err)
	}
	return n > 0, nil
}

// SeedIfEmpty 首次启动时写入演示数据
func (s *Store) SeedIfEmpty(now time.Time) error {
	seeded, err := s.IsSeeded()
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}
	return s.seed(now)
}

// ResetDemoData 清空所有表并重新写入演示数据
func (s *Store) ResetDemoData(now time.Time) error {
	tables := []string{"reminder_log", "approval_log", "submissions", "certificates", "suppliers"}
	for _, table := range tables {
		if err := s.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s failed: %w", table, err)
		}
	}
	return s.seed(now)
}

func (s *Store) seed(now time.Time) error {
	seed, err := loadSeed()
	if err != nil {
		return err
	}

	tx, err := s.BeginTx()
	if err != nil {
		return fmt.Errorf("begin seed tx failed: %w", err)
	}
	defer tx.Rollback()

	for _, sp := range seed.Suppliers {
		if _, err := tx.Exec(
			"INSERT INTO suppliers (name, category, country) VALUES (?, ?, ?)",
			sp.Name, sp.Category, sp.Country,
		); err != nil {
			return fmt.Errorf("seed supplier %s failed: %w", sp.Name, err)
		}
	}

	for _, c := range seed.Certificates {
		issue := now.AddDate(0, 0, -c.IssuedDaysAgo).Format(model.DateLayout)
		expiry := now.AddDate(0, 0, c.ExpiresInDays).Format(model.DateLayout)
		if _, err := tx.Exec(`
			INSERT INTO certificates (id, supplier, material, cert_body, cert_no, country, issue_date, expiry_date, file_name)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, c.ID, c.Supplier, c.Material, c.CertBody, c.CertNo, c.Country, issue, expiry, c.FileName); err != nil {
			return fmt.Errorf("seed certificate %s failed: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx failed: %w", err)
	}
	return nil
}
