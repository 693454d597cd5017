package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// 价格在两个世界里有两种形态：
// - 草稿/表单里是主单位的十进制字符串（如 "19,90"，巴西习惯逗号做小数点）
// - 接口传输时是最小货币单位的整数（分）
// 转换只发生在提交边界，且必须是精确的整数运算，不允许经过浮点数

// PriceToCents 将价格字符串转换为最小货币单位（分）
// 规则：去掉千分位分隔符，剩余的分隔符视为小数点，小数部分补齐两位
// 例："19,90" -> 1990；"1.234,50" -> 123450；"19" -> 1900；"19.9" -> 1990
func PriceToCents(price string) (int64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(price), " ", "")
	if s == "" {
		return 0, errors.New("价格为空")
	}
	if strings.Contains(s, "-") {
		return 0, fmt.Errorf("价格不能为负数: %q", price)
	}

	// 找到最后一个分隔符（'.' 或 ','）
	sepIdx := strings.LastIndexAny(s, ".,")

	intPart := s
	fracPart := ""

	if sepIdx >= 0 {
		tail := s[sepIdx+1:]
		if len(tail) == 3 && !strings.ContainsAny(tail, ".,") {
			// 尾组正好 3 位数字：这是千分位分组，不是小数（如 "1.234"）
			intPart = s
		} else {
			intPart = s[:sepIdx]
			fracPart = tail
		}
	}

	// 整数部分去掉所有千分位分隔符
	intPart = strings.ReplaceAll(intPart, ".", "")
	intPart = strings.ReplaceAll(intPart, ",", "")
	if intPart == "" {
		intPart = "0"
	}

	if len(fracPart) > 2 {
		return 0, fmt.Errorf("价格最多保留两位小数: %q", price)
	}

	// 小数部分右补零到两位（"9" -> "90"）
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("价格格式不正确: %q", price)
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("价格格式不正确: %q", price)
	}

	return whole*100 + frac, nil
}

// CentsToPrice 将分转换回主单位的十进制字符串，用于回填编辑表单
// 例：1990 -> "19,90"；123450 -> "1.234,50"
func CentsToPrice(cents int64) string {
	whole := cents / 100
	frac := cents % 100

	intStr := strconv.FormatInt(whole, 10)

	// 从右往左每 3 位插入千分位分隔符
	var groups []string
	for len(intStr) > 3 {
		groups = append([]string{intStr[len(intStr)-3:]}, groups...)
		intStr = intStr[:len(intStr)-3]
	}
	groups = append([]string{intStr}, groups...)

	return fmt.Sprintf("%s,%02d", strings.Join(groups, "."), frac)
}
