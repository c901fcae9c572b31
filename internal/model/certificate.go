// Package model 定义证书、供应商与日志的领域类型
package model

import (
	"fmt"
	"time"
)

// DateLayout 全部日期字段统一使用 YYYY-MM-DD
const DateLayout = "2006-01-02"

// CertStatus 证书状态
type CertStatus string

const (
	StatusValid    CertStatus = "VALID"
	StatusExpiring CertStatus = "EXPIRING"
	StatusExpired  CertStatus = "EXPIRED"
	// StatusMissing 供应商名下没有任何证书
	StatusMissing CertStatus = "MISSING"
)

// 状态严重程度，数值越大越差
var statusRank = map[CertStatus]int{
	StatusValid:    0,
	StatusExpiring: 1,
	StatusMissing:  2,
	StatusExpired:  3,
}

// Worse 返回两个状态里更差的一个
func Worse(a, b CertStatus) CertStatus {
	if statusRank[b] > statusRank[a] {
		return b
	}
	return a
}

// Badge 状态徽标，演示页面直接展示
func (s CertStatus) Badge() string {
	switch s {
	case StatusValid:
		return "✅ VALID"
	case StatusExpiring:
		return "🟠 EXPIRING"
	case StatusExpired:
		return "🔴 EXPIRED"
	case StatusMissing:
		return "⚫ MISSING"
	}
	return string(s)
}

// Certificate 证书记录
// 日期以 YYYY-MM-DD 字符串存储，与 SQLite 表结构一致
type Certificate struct {
	ID         string `json:"id"`
	Supplier   string `json:"supplier"`
	Material   string `json:"material"`
	CertBody   string `json:"certBody"`
	CertNo     string `json:"certNo"`
	Country    string `json:"country"`
	IssueDate  string `json:"issueDate"`
	ExpiryDate string `json:"expiryDate"`
	FileName   string `json:"fileName"`
}

// ParseDate 解析 YYYY-MM-DD 日期，其他写法一律拒绝
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DaysUntil 计算到期剩余天数，忽略时分秒
// 已过期为负数，今天到期为 0
func DaysUntil(expiry, today time.Time) int {
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}

// StatusFromExpiry 按剩余天数推导状态
// 负数为 EXPIRED，窗口内（含今天与窗口边界）为 EXPIRING，其余为 VALID
func StatusFromExpiry(expiry, today time.Time, windowDays int) CertStatus {
	days := DaysUntil(expiry, today)
	if days < 0 {
		return StatusExpired
	}
	if days <= windowDays {
		return StatusExpiring
	}
	return StatusValid
}
