package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceToCents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "逗号小数", input: "19,90", want: 1990},
		{name: "千分位加逗号小数", input: "1.234,50", want: 123450},
		{name: "纯整数", input: "19", want: 1900},
		{name: "点号小数", input: "19.90", want: 1990},
		{name: "一位小数补零", input: "19,9", want: 1990},
		{name: "点号一位小数", input: "19.9", want: 1990},
		{name: "纯千分位", input: "1.234", want: 123400},
		{name: "多级千分位", input: "1.234.567,89", want: 123456789},
		{name: "最低价以下也能换算", input: "0,50", want: 50},
		{name: "带空格", input: " 19,90 ", want: 1990},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PriceToCents(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceToCents_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "空字符串", input: ""},
		{name: "纯空格", input: "   "},
		{name: "非数字", input: "abc"},
		{name: "负数", input: "-5,00"},
		{name: "三位以上小数", input: "19,9999"},
		{name: "小数不是数字", input: "19,9a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PriceToCents(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestCentsToPrice(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{name: "普通价格", cents: 1990, want: "19,90"},
		{name: "带千分位", cents: 123450, want: "1.234,50"},
		{name: "不足一元", cents: 5, want: "0,05"},
		{name: "整元", cents: 100, want: "1,00"},
		{name: "多级千分位", cents: 123456789, want: "1.234.567,89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CentsToPrice(tt.cents))
		})
	}
}

// 往返一致：换算成分再还原，应该得到规范化的原值
func TestPriceRoundTrip(t *testing.T) {
	for _, price := range []string{"19,90", "1.234,50", "0,05", "1,00"} {
		cents, err := PriceToCents(price)
		assert.NoError(t, err)
		assert.Equal(t, price, CentsToPrice(cents))
	}
}
