package dto

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int 整数字段，同时接受 JSON 数字与数字字符串
// 前端表单以字符串提交数值（如 "25"），空串视为未填写
type Int int

func (n *Int) UnmarshalJSON(b []byte) error {
	s, ok := numberText(b)
	if !ok {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		*n = Int(v)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("%q 不是合法整数", s)
	}
	*n = Int(f)
	return nil
}

// Float 小数字段，编码规则同 Int
type Float float64

func (n *Float) UnmarshalJSON(b []byte) error {
	s, ok := numberText(b)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%q 不是合法数字", s)
	}
	*n = Float(f)
	return nil
}

// numberText 去除引号与空白；null 与空串返回 ok=false
func numberText(b []byte) (string, bool) {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return "", false
	}
	if strings.HasPrefix(s, `"`) {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return s, true
		}
		s = strings.TrimSpace(unq)
	}
	return s, s != ""
}
