package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketspace/pkg/market"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "无错误",
			err:  nil,
			want: "",
		},
		{
			name: "后端业务错误原样展示",
			err:  &market.APIError{StatusCode: 400, Message: "标题已存在"},
			want: "标题已存在",
		},
		{
			name: "包装过的后端错误也能识别",
			err:  fmt.Errorf("发布失败: %w", &market.APIError{StatusCode: 401, Message: "登录已失效"}),
			want: "登录已失效",
		},
		{
			name: "本地业务错误原样展示",
			err:  ErrTooManyImages,
			want: ErrTooManyImages.Error(),
		},
		{
			name: "包装过的本地业务错误",
			err:  fmt.Errorf("%w（上限 5MB）", ErrImageTooLarge),
			want: "图片太大，请选择更小的图片（上限 5MB）",
		},
		{
			name: "技术性错误替换成兜底文案",
			err:  errors.New("dial tcp 127.0.0.1:3333: connection refused"),
			want: "操作失败，请稍后再试",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err, "操作失败，请稍后再试"))
		})
	}
}
