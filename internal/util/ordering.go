package util

import "slices"

// CompareOrder 比较两个可空排序值：整数升序，nil 排在所有整数之后，两个 nil 视为相等
func CompareOrder(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

// SortByOrder 稳定排序，相同排序值（包括 nil）保持输入顺序
func SortByOrder[T any](items []T, orderOf func(T) *int) {
	slices.SortStableFunc(items, func(a, b T) int {
		return CompareOrder(orderOf(a), orderOf(b))
	})
}

// ValidOrder 排序值要么为空，要么是非负整数
func ValidOrder(order *int) bool {
	return order == nil || *order >= 0
}
