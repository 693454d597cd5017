// Package market 封装 Marketspace 后端 REST 接口
// 它是全系统唯一的网络出口：统一超时、User-Agent 和 Bearer 鉴权头，
// 超时之外不做重试/退避，瞬时失败直接抛给上层让用户手动重试
package market

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// Client Marketspace 接口客户端
type Client struct {
	http *resty.Client
}

// New 创建客户端
// baseURL 形如 http://localhost:3333，timeout 是单次请求超时
func New(baseURL string, timeout time.Duration) *Client {
	hc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", "Marketspace-Go-App/1.0").
		SetHeader("Accept", "application/json")

	return &Client{http: hc}
}

// SetToken 设置鉴权 token，之后所有请求自动带 Authorization: Bearer <token>
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// ClearToken 清除鉴权 token（登出后调用）
func (c *Client) ClearToken() {
	c.http.SetAuthToken("")
}
