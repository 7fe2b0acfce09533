package util

import (
	"strconv"
)

// ParseUint 将字符串转换为无符号整数
func ParseUint(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	return uint(id), err
}
