package market

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// APIError 后端返回的业务错误
// 带有用户可读的 message，可以直接展示；没有 message 的失败
// 不属于这一类，上层应替换成通用的"稍后重试"文案
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// AsAPIError 判断 err 是否是后端业务错误
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// errorEnvelope 后端错误响应的统一外壳
type errorEnvelope struct {
	Message string `json:"message"`
}

// respError 将非 2xx 响应转换为错误
// 能解出 message 的归类为 APIError，其余保留原始状态码和响应体
func respError(resp *resty.Response) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
		return &APIError{StatusCode: resp.StatusCode(), Message: envelope.Message}
	}
	return fmt.Errorf("接口异常 [%d]: %s", resp.StatusCode(), resp.String())
}
