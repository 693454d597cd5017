package market

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-resty/resty/v2"

	"marketspace/internal/model"
)

// Session 登录成功后后端下发的会话
type Session struct {
	Token        string     `json:"token"`
	RefreshToken string     `json:"refresh_token"`
	User         model.User `json:"user"`
}

// SignIn 登录 POST /sessions
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var session Session

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&session).
		Post("/sessions")
	if err != nil {
		return nil, fmt.Errorf("网络请求失败: %w", err)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return nil, respError(resp)
	}

	return &session, nil
}

// SignUpRequest 注册请求，Avatar 可选
type SignUpRequest struct {
	Name     string
	Email    string
	Tel      string
	Password string
	Avatar   *model.SelectedImage
}

// SignUp 注册 POST /users
// multipart 表单：标量字段 + 可选的 avatar 文件
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) error {
	r := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"name":     req.Name,
			"email":    req.Email,
			"tel":      req.Tel,
			"password": req.Password,
		})

	if req.Avatar != nil {
		data, err := os.ReadFile(req.Avatar.URI)
		if err != nil {
			return fmt.Errorf("读取头像 %s 失败: %w", req.Avatar.URI, err)
		}
		r.SetMultipartFields(&resty.MultipartField{
			Param:       "avatar",
			FileName:    req.Avatar.Name,
			ContentType: req.Avatar.Type,
			Reader:      bytes.NewReader(data),
		})
	}

	resp, err := r.Post("/users")
	if err != nil {
		return fmt.Errorf("网络请求失败: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK {
		return respError(resp)
	}

	return nil
}
