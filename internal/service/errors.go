package service

import (
	"errors"

	"marketspace/pkg/market"
)

// 本地产生、文案可以直接展示的错误
var displayable = []error{
	ErrImageTooLarge,
	ErrNotImage,
	ErrPickFailed,
	ErrTooManyImages,
	ErrNoDraft,
	ErrPublishInFlight,
	ErrNotSignedIn,
	ErrSessionExpired,
}

// UserMessage 把错误收敛成给用户看的文案
// 后端业务错误自带可读 message，原样展示；本地业务错误同理；
// 其余（网络抖动、解析失败等技术性错误）一律替换成调用方给的兜底文案，
// 绝不把原始技术细节抛到界面上
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := market.AsAPIError(err); ok {
		return apiErr.Message
	}
	for _, known := range displayable {
		if errors.Is(err, known) {
			return err.Error()
		}
	}
	return fallback
}
