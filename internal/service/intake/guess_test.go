package intake

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

var testSuppliers = []string{"Al Noor Foods", "Gulf Spice Trading", "Doha Fine Foods"}

func testToday() time.Time {
	return time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
}

func TestGuessSupplierSubstringMatch(t *testing.T) {
	t.Parallel()

	g := GuessFromFilename("gulf_spice_trading_halal_2026-05-01.pdf", testSuppliers, testToday())
	assert.Equal(t, "Gulf Spice Trading", g.Supplier)

	// 未命中时退回第一个供应商
	g = GuessFromFilename("unknown_vendor_cert.pdf", testSuppliers, testToday())
	assert.Equal(t, "Al Noor Foods", g.Supplier)

	g = GuessFromFilename("whatever.pdf", nil, testToday())
	assert.Equal(t, "", g.Supplier)
}

func TestGuessCountryTokens(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"cert_dubai_2026.pdf":   "UAE",
		"riyadh_beef_halal.jpg": "KSA",
		"doha_bakery_cert.pdf":  "Qatar",
		"oman_fishery.png":      "Oman",
		"plain_cert.pdf":        "UAE", // 默认
	}
	for filename, want := range cases {
		g := GuessFromFilename(filename, testSuppliers, testToday())
		assert.Equal(t, want, g.Country, "filename %s", filename)
	}
}

func TestGuessExpiryISOPattern(t *testing.T) {
	t.Parallel()

	g := GuessFromFilename("cert_2026-07-31.pdf", testSuppliers, testToday())
	assert.Equal(t, "2026-07-31", g.ExpiryDate)

	// 下划线和斜杠分隔也接受
	g = GuessFromFilename("cert_2027_01_15.pdf", testSuppliers, testToday())
	assert.Equal(t, "2027-01-15", g.ExpiryDate)
}

func TestGuessExpiryDMYPattern(t *testing.T) {
	t.Parallel()

	g := GuessFromFilename("cert-31-01-2027.pdf", testSuppliers, testToday())
	assert.Equal(t, "2027-01-31", g.ExpiryDate)
}

func TestGuessExpiryInvalidCalendarDateFallsBack(t *testing.T) {
	t.Parallel()

	// 31-02-2027 不是合法日历日期，应退回默认一年后
	g := GuessFromFilename("cert-31-02-2027.pdf", testSuppliers, testToday())
	want := testToday().AddDate(0, 0, 365).Format("2006-01-02")
	assert.Equal(t, want, g.ExpiryDate)
}

func TestGuessExpiryDefaultOneYear(t *testing.T) {
	t.Parallel()

	g := GuessFromFilename("no_dates_here.pdf", testSuppliers, testToday())
	want := testToday().AddDate(0, 0, 365).Format("2006-01-02")
	assert.Equal(t, want, g.ExpiryDate)
}

func TestGuessMaterialTokens(t *testing.T) {
	t.Parallel()

	// 去扩展名、分隔符转空格、仅保留长度大于 2 的前 4 个词
	g := GuessFromFilename("frozen_chicken_breast_halal_extra_words.pdf", testSuppliers, testToday())
	assert.Equal(t, "frozen chicken breast halal", g.Material)

	g = GuessFromFilename("a_b_c.pdf", testSuppliers, testToday())
	assert.Equal(t, "Halal Certificate", g.Material)
}

func TestGuessMaterialTruncatesOnRuneBoundary(t *testing.T) {
	t.Parallel()

	// 四个阿拉伯语词共超过 60 个字符，截断不能产生非法 UTF-8
	token := strings.Repeat("دجاج", 5) // 20 字符
	filename := strings.Join([]string{token, token, token, token}, "_") + ".pdf"

	g := GuessFromFilename(filename, testSuppliers, testToday())
	assert.True(t, utf8.ValidString(g.Material), "material must stay valid UTF-8: %q", g.Material)
	assert.LessOrEqual(t, utf8.RuneCountInString(g.Material), 60)
	assert.Greater(t, utf8.RuneCountInString(g.Material), 0)
}

func TestGuessCertNoDeterministic(t *testing.T) {
	t.Parallel()

	a := GuessCertNo("cert_a.pdf", testToday())
	b := GuessCertNo("cert_a.pdf", testToday())
	c := GuessCertNo("cert_b.pdf", testToday())

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Regexp(t, `^HA-2026-\d{4}$`, a)
}

func TestDefaultGuess(t *testing.T) {
	t.Parallel()

	g := DefaultGuess(testSuppliers, testToday())
	assert.Equal(t, "Al Noor Foods", g.Supplier)
	assert.Equal(t, "UAE", g.Country)
	assert.Equal(t, "Halal Certificate", g.Material)
	assert.Equal(t, "HA-2026-0001", g.CertNo)
}
