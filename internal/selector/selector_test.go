package selector

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		expr     string
		n        int
		expected []int
	}{
		{"3", 5, []int{3}},
		{"all", 5, []int{1, 2, 3, 4, 5}},
		{"2-4", 5, []int{2, 3, 4}},
		{"4-2", 5, nil},
		{"3-3", 5, nil},
		{"0-2", 5, nil},
		{"4-6", 5, nil},
		{"1-2-3", 5, nil},
		{"1,3,5", 5, []int{1, 3, 5}},
		{"5, 1 ,3", 5, []int{5, 1, 3}},
		{"2,2", 5, []int{2, 2}},
		{"1,2,3,4,5,1", 5, nil},
		{"1,6", 5, nil},
		{"1,", 5, nil},
		{"1-2,3", 5, nil},
		{"0", 5, nil},
		{"6", 5, nil},
		{"-1", 5, nil},
		{"+2", 5, nil},
		{"+1-+3", 5, nil},
		{"+1,+2", 5, nil},
		{"1-3", 5, []int{1, 2, 3}},
		{" 2 ", 5, []int{2}},
		{"ALL", 5, nil},
		{"first", 5, nil},
		{"", 5, nil},
		{"7", 1, []int{1}},
		{"anything", 1, []int{1}},
		{"1", 0, nil},
	}

	for _, test := range tests {
		got := Parse(test.expr, test.n)
		if len(got) == 0 && len(test.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("Parse(%q, %d) = %v; expected %v", test.expr, test.n, got, test.expected)
		}
	}
}
