package demo

import (
	"strconv"
	"strings"
)

// Squares maps each element to its square, preserving order.
func Squares(nums []int) []int {
	out := make([]int, len(nums))
	for i, n := range nums {
		out[i] = n * n
	}
	return out
}

// JoinInts renders nums as "1, 2, 3".
func JoinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// FormatList renders nums as "[1, 2, 3]".
func FormatList(nums []int) string {
	return "[" + JoinInts(nums) + "]"
}
