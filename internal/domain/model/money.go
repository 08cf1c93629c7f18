package model

import "fmt"

// 金額はすべてAUDの最小単位（セント）のint64で扱う。
// floatは使わない（丸め誤差を避ける）。

// FormatAUD はセントを "A$xx.xx" にして返す。
func FormatAUD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sA$%d.%02d", sign, cents/100, cents%100)
}
