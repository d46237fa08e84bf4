// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatSize форматирует размер файла в байтах в читаемый вид
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// TruncateString обрезает строку до указанной ширины на экране, добавляя "..." если строка длиннее
func TruncateString(s string, maxLen int) string {
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}

// PadRight дополняет строку пробелами до указанной ширины на экране
func PadRight(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// MaxWidth возвращает наибольшую ширину строки на экране
func MaxWidth(values []string) int {
	w := 0
	for _, v := range values {
		w = max(w, runewidth.StringWidth(v))
	}
	return w
}
