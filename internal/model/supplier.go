package model

// Supplier 供应商主数据
type Supplier struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Country  string `json:"country"`
}

// SupplierCompliance 供应商合规视图的一行
// 状态取该供应商全部证书里最差的一个，没有证书记为 MISSING
type SupplierCompliance struct {
	Supplier string     `json:"supplier"`
	Category string     `json:"category"`
	Country  string     `json:"country"`
	Status   CertStatus `json:"status"`
	// NearestExpiryDay 最近一张证书的剩余天数，MISSING 时为 null
	NearestExpiryDay *int   `json:"nearestExpiryDays"`
	StatusBadge      string `json:"statusBadge"`
}
