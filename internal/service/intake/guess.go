// Package intake 实现供应商入库的"类 OCR"提取模拟
// 真实产品里由 OCR 服务完成；演示版只根据上传文件名做启发式猜测
package intake

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"time"

	"github.com/inshiratech/halal-compliance-demo/internal/model"
)

// 常见海湾国家关键词 -> 国家
var countryTokens = []struct {
	token   string
	country string
}{
	{"uae", "UAE"}, {"dubai", "UAE"}, {"abu", "UAE"},
	{"ksa", "KSA"}, {"saudi", "KSA"}, {"riyadh", "KSA"},
	{"qatar", "Qatar"}, {"doha", "Qatar"},
	{"oman", "Oman"}, {"kuwait", "Kuwait"}, {"bahrain", "Bahrain"},
}

var (
	// 2026-01-31 形式
	isoDatePattern = regexp.MustCompile(`(20\d{2})[-_/](0[1-9]|1[0-2])[-_/](0[1-9]|[12]\d|3[01])`)
	// 31-01-2026 形式
	dmyDatePattern = regexp.MustCompile(`(0[1-9]|[12]\d|3[01])[-_/](0[1-9]|1[0-2])[-_/](20\d{2})`)
	extPattern     = regexp.MustCompile(`\.[a-zA-Z0-9]+$`)
)

const (
	defaultCountry  = "UAE"
	defaultMaterial = "Halal Certificate"
	certBodyGuess   = "Halal Authority (extracted)"
	maxMaterialLen  = 60
)

// GuessFromFilename 根据文件名模拟提取证书字段
// supplierNames 用于供应商子串匹配；未命中时退回第一个供应商
func GuessFromFilename(filename string, supplierNames []string, today time.Time) model.IntakeGuess {
	lower := strings.ToLower(filename)

	return model.IntakeGuess{
		Supplier:   guessSupplier(lower, supplierNames),
		Country:    guessCountry(lower),
		Material:   guessMaterial(filename),
		CertBody:   certBodyGuess,
		CertNo:     GuessCertNo(filename, today),
		ExpiryDate: guessExpiry(filename, today).Format(model.DateLayout),
	}
}

// DefaultGuess 未上传文件时的占位提取结果
func DefaultGuess(supplierNames []string, today time.Time) model.IntakeGuess {
	supplier := ""
	if len(supplierNames) > 0 {
		supplier = supplierNames[0]
	}
	return model.IntakeGuess{
		Supplier:   supplier,
		Country:    defaultCountry,
		Material:   defaultMaterial,
		CertBody:   certBodyGuess,
		CertNo:     fmt.Sprintf("HA-%d-0001", today.Year()),
		ExpiryDate: today.AddDate(0, 0, 365).Format(model.DateLayout),
	}
}

func guessSupplier(lowerFilename string, supplierNames []string) string {
	compact := strings.ReplaceAll(lowerFilename, " ", "")
	for _, name := range supplierNames {
		needle := strings.ReplaceAll(strings.ToLower(name), " ", "")
		if needle != "" && strings.Contains(compact, needle) {
			return name
		}
	}
	if len(supplierNames) > 0 {
		return supplierNames[0]
	}
	return ""
}

func guessCountry(lowerFilename string) string {
	for _, ct := range countryTokens {
		if strings.Contains(lowerFilename, ct.token) {
			return ct.country
		}
	}
	return defaultCountry
}

// guessExpiry 从文件名里找日期；两种写法都试，非法日历日期忽略
func guessExpiry(filename string, today time.Time) time.Time {
	expiry := today.AddDate(0, 0, 365)

	if m := isoDatePattern.FindStringSubmatch(filename); m != nil {
		if d, ok := buildDate(m[1], m[2], m[3]); ok {
			expiry = d
		}
	}
	if m := dmyDatePattern.FindStringSubmatch(filename); m != nil {
		if d, ok := buildDate(m[3], m[2], m[1]); ok {
			expiry = d
		}
	}
	return expiry
}

func buildDate(year, month, day string) (time.Time, bool) {
	t, err := time.Parse(model.DateLayout, fmt.Sprintf("%s-%s-%s", year, month, day))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// guessMaterial 用文件名分词拼出物料描述
// 去扩展名，下划线/连字符转空格，取长度大于 2 的前 4 个词
func guessMaterial(filename string) string {
	base := extPattern.ReplaceAllString(filename, "")
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)

	var tokens []string
	for _, t := range strings.Fields(base) {
		if len(t) > 2 {
			tokens = append(tokens, t)
		}
		if len(tokens) == 4 {
			break
		}
	}
	if len(tokens) == 0 {
		return defaultMaterial
	}

	material := strings.Join(tokens, " ")
	// 按字符截断，避免把多字节字符切成半个
	if runes := []rune(material); len(runes) > maxMaterialLen {
		material = string(runes[:maxMaterialLen])
	}
	return material
}

// GuessCertNo 根据文件名生成稳定的演示证书号 HA-<年份>-<4位数>
func GuessCertNo(filename string, today time.Time) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(filename))
	return fmt.Sprintf("HA-%d-%04d", today.Year(), h.Sum32()%10000)
}
