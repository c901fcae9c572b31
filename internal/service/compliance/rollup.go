// Package compliance 计算供应商合规视图与仪表盘统计
package compliance

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
	"github.com/inshiratech/halal-compliance-demo/internal/store"
)

// 缓存 TTL；状态依赖"今天"，键里已带日期，TTL 只是兜底
const rollupTTL = 5 * time.Minute

// DashboardStats 仪表盘顶部统计
type DashboardStats struct {
	TotalCertificates int `json:"totalCertificates"`
	Valid             int `json:"valid"`
	Expiring          int `json:"expiring"`
	Expired           int `json:"expired"`
	TotalSuppliers    int `json:"totalSuppliers"`
	SuppliersAtRisk   int `json:"suppliersAtRisk"` // EXPIRING/EXPIRED/MISSING 的供应商数
}

// Service 合规视图服务
type Service struct {
	store *store.Store
	cache Cache
}

// NewService 创建合规视图服务
func NewService(st *store.Store, cache Cache) *Service {
	return &Service{store: st, cache: cache}
}

// Invalidate 证书数据变化后清空缓存
func (s *Service) Invalidate() {
	if err := s.cache.Flush(); err != nil {
		// 缓存清理失败不影响主流程，下一次读取会带上新日期键
		return
	}
}

func rollupKey(today time.Time, windowDays int) string {
	return fmt.Sprintf("rollup:%s:%d", today.Format(model.DateLayout), windowDays)
}

// SupplierView 供应商合规视图
// 每个供应商取其全部证书中最差的状态；没有证书的记为 MISSING
func (s *Service) SupplierView(today time.Time, windowDays int) ([]model.SupplierCompliance, error) {
	key := rollupKey(today, windowDays)
	if raw, ok := s.cache.Get(key); ok {
		var cached []model.SupplierCompliance
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	suppliers, err := s.store.ListSuppliers()
	if err != nil {
		return nil, err
	}
	certs, err := s.store.ListCertificates(store.CertQueryOptions{})
	if err != nil {
		return nil, err
	}

	view := buildSupplierView(suppliers, certs, today, windowDays)

	if raw, err := json.Marshal(view); err == nil {
		_ = s.cache.Set(key, string(raw), rollupTTL)
	}
	return view, nil
}

func buildSupplierView(suppliers []model.Supplier, certs []model.Certificate, today time.Time, windowDays int) []model.SupplierCompliance {
	type certState struct {
		status model.CertStatus
		days   int
	}

	bySupplier := make(map[string][]certState)
	for _, c := range certs {
		expiry, err := model.ParseDate(c.ExpiryDate)
		if err != nil {
			// 种子/审批入库的日期都经过校验，坏数据直接跳过
			continue
		}
		bySupplier[c.Supplier] = append(bySupplier[c.Supplier], certState{
			status: model.StatusFromExpiry(expiry, today, windowDays),
			days:   model.DaysUntil(expiry, today),
		})
	}

	out := make([]model.SupplierCompliance, 0, len(suppliers))
	for _, sp := range suppliers {
		row := model.SupplierCompliance{
			Supplier: sp.Name,
			Category: sp.Category,
			Country:  sp.Country,
		}

		states := bySupplier[sp.Name]
		if len(states) == 0 {
			row.Status = model.StatusMissing
		} else {
			worst := model.StatusValid
			nearest := states[0].days
			for _, st := range states {
				worst = model.Worse(worst, st.status)
				if st.days < nearest {
					nearest = st.days
				}
			}
			row.Status = worst
			row.NearestExpiryDay = &nearest
		}
		row.StatusBadge = row.Status.Badge()
		out = append(out, row)
	}
	return out
}

// Stats 仪表盘统计
func (s *Service) Stats(today time.Time, windowDays int) (DashboardStats, error) {
	certs, err := s.store.ListCertificates(store.CertQueryOptions{})
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{TotalCertificates: len(certs)}
	for _, c := range certs {
		expiry, err := model.ParseDate(c.ExpiryDate)
		if err != nil {
			continue
		}
		switch model.StatusFromExpiry(expiry, today, windowDays) {
		case model.StatusValid:
			stats.Valid++
		case model.StatusExpiring:
			stats.Expiring++
		case model.StatusExpired:
			stats.Expired++
		}
	}

	view, err := s.SupplierView(today, windowDays)
	if err != nil {
		return DashboardStats{}, err
	}
	stats.TotalSuppliers = len(view)
	for _, row := range view {
		if row.Status != model.StatusValid {
			stats.SuppliersAtRisk++
		}
	}
	return stats, nil
}
