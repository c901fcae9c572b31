package store

import (
	"fmt"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
)

// ListSuppliers 查询全部供应商，按名称升序
func (s *Store) ListSuppliers() ([]model.Supplier, error) {
	rows, err := s.Query("SELECT id, name, category, country FROM suppliers ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("query suppliers failed: %w", err)
	}
	defer rows.Close()

	var out []model.Supplier
	for rows.Next() {
		var sp model.Supplier
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Category, &sp.Country); err != nil {
			return nil, fmt.Errorf("scan supplier failed: %w", err)
		}
		out = append(out, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suppliers failed: %w", err)
	}
	return out, nil
}

// SupplierNames 供应商名称列表（入库提取时做子串匹配用）
func (s *Store) SupplierNames() ([]string, error) {
	suppliers, err := s.ListSuppliers()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(suppliers))
	for _, sp := range suppliers {
		names = append(names, sp.Name)
	}
	return names, nil
}

// SupplierExists 判断供应商是否存在
func (s *Store) SupplierExists(name string) (bool, error) {
	var n int
	if err := s.QueryRow("SELECT COUNT(1) FROM suppliers WHERE name = ?", name).Scan(&n); err != nil {
		return false, fmt.Errorf("query supplier %s failed: %w", name, err)
	}
	return n > 0, nil
}
