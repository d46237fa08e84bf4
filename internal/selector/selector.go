// Package selector разбирает выражения выбора треков: "3", "all", "2-4", "1,3,5"
package selector

import (
	"strconv"
	"strings"
)

// All выбирает все треки коллекции
const All = "all"

// Parse возвращает позиции (начиная с 1), выбранные выражением expr
// в коллекции из n треков. Некорректное выражение дает пустой результат.
//
// Выражение со списком проверяется раньше диапазона, поэтому "1-2,3"
// разбирается как список и не выбирает ничего.
func Parse(expr string, n int) []int {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []int{1}
	}

	expr = strings.TrimSpace(expr)
	switch {
	case expr == All:
		return span(1, n)
	case strings.Contains(expr, ","):
		return parseList(expr, n)
	case strings.Contains(expr, "-"):
		return parseRange(expr, n)
	}

	k, ok := number(expr)
	if !ok || k < 1 || k > n {
		return nil
	}
	return []int{k}
}

// number разбирает десятичное число без знака
func number(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	k, err := strconv.Atoi(s)
	return k, err == nil
}

func parseRange(expr string, n int) []int {
	parts := strings.Split(expr, "-")
	if len(parts) != 2 {
		return nil
	}
	a, ok := number(parts[0])
	if !ok {
		return nil
	}
	b, ok := number(parts[1])
	if !ok {
		return nil
	}
	if a >= b || a < 1 || b > n {
		return nil
	}
	return span(a, b)
}

func parseList(expr string, n int) []int {
	parts := strings.Split(expr, ",")
	if len(parts) > n {
		return nil
	}

	positions := make([]int, 0, len(parts))
	for _, p := range parts {
		k, ok := number(p)
		if !ok || k < 1 || k > n {
			return nil
		}
		positions = append(positions, k)
	}
	return positions
}

func span(a, b int) []int {
	positions := make([]int, 0, b-a+1)
	for k := a; k <= b; k++ {
		positions = append(positions, k)
	}
	return positions
}
