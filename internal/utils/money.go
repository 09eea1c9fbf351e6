package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatUSD renders an amount as "$1,234.56".
func FormatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := int64(math.Round(amount * 100))
	return fmt.Sprintf("%s$%s.%02d", sign, formatThousand(cents/100), cents%100)
}

// FormatCount renders an integer with thousand separators.
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + formatThousand(-n)
	}
	return formatThousand(n)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
