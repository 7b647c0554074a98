package util

import (
	"bytes"
	"encoding/json"
	"math"
)

/*
UpdateField 部分更新字段的三态表示：
  - 缺省：不更新
  - null ：置空
  - 值  ：设置为该值
*/
type UpdateField[T any] struct {
	set   bool
	null  bool
	value T
}

func (f *UpdateField[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if string(b) == "null" {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	if p, ok := any(&f.value).(*int); ok {
		n, err := decodeInteger(b)
		if err != nil {
			return err
		}
		*p = n
		return nil
	}
	return json.Unmarshal(b, &f.value)
}

// maxSafeInteger 与 JSON 客户端的 Number.MAX_SAFE_INTEGER 一致
const maxSafeInteger = 1<<53 - 1

// decodeInteger 接受值为整数的任意 JSON 数字（如 1.0、1e2），其他输入视为非法排序值
func decodeInteger(b []byte) (int, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] == '"' {
		return 0, ErrInvalidOrder
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return 0, ErrInvalidOrder
	}
	v, err := num.Float64()
	if err != nil || v != math.Trunc(v) || math.Abs(v) > maxSafeInteger {
		return 0, ErrInvalidOrder
	}
	return int(v), nil
}

func (f UpdateField[T]) ShouldUpdate() bool { return f.set }
func (f UpdateField[T]) IsNull() bool       { return f.set && f.null }
func (f UpdateField[T]) Val() T             { return f.value }

// Ptr 已设置且非 null 时返回值指针，否则返回 nil
func (f UpdateField[T]) Ptr() *T {
	if !f.set || f.null {
		return nil
	}
	v := f.value
	return &v
}

// Apply 合并规则：缺省保留 current，null 置空，否则取新值
func (f UpdateField[T]) Apply(current *T) *T {
	if !f.set {
		return current
	}
	return f.Ptr()
}

// Set 构造一个已赋值的字段，主要用于服务层调用与测试
func Set[T any](v T) UpdateField[T] {
	return UpdateField[T]{set: true, value: v}
}

// Null 构造一个显式置空的字段
func Null[T any]() UpdateField[T] {
	return UpdateField[T]{set: true, null: true}
}
