package util

import (
	"fmt"
	"strings"
)

// FormatUSD 格式化美元金额（千分位，无小数）
func FormatUSD(value float64) string {
	neg := value < 0
	if neg {
		value = -value
	}

	whole := fmt.Sprintf("%.0f", value)
	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)

	out := "$" + strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
