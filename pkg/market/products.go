package market

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"marketspace/internal/model"
)

// ==================== 请求/响应结构 ====================

// ProductRequest 创建/更新广告的标量字段
// Price 为最小货币单位（分），payment_methods 只传后端 key
type ProductRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          int64    `json:"price"`
	IsNew          bool     `json:"is_new"`
	AcceptTrade    bool     `json:"accept_trade"`
	PaymentMethods []string `json:"payment_methods"`
}

// ListFilter 广告列表的筛选条件，零值字段不参与过滤
type ListFilter struct {
	Query          string
	IsNew          *bool
	AcceptTrade    *bool
	PaymentMethods []string
}

func (f ListFilter) values() url.Values {
	q := url.Values{}
	if f.Query != "" {
		q.Set("query", f.Query)
	}
	if f.IsNew != nil {
		q.Set("is_new", strconv.FormatBool(*f.IsNew))
	}
	if f.AcceptTrade != nil {
		q.Set("accept_trade", strconv.FormatBool(*f.AcceptTrade))
	}
	for _, key := range f.PaymentMethods {
		q.Add("payment_methods", key)
	}
	return q
}

// ==================== 广告接口 ====================

// ListProducts 拉取在售广告列表 GET /products
func (c *Client) ListProducts(ctx context.Context, filter ListFilter) ([]model.Product, error) {
	var products []model.Product

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(filter.values()).
		SetResult(&products).
		Get("/products")
	if err != nil {
		return nil, fmt.Errorf("网络请求失败: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, respError(resp)
	}

	return products, nil
}

// GetProduct 拉取单个广告 GET /products/:id
func (c *Client) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&product).
		Get("/products/" + id)
	if err != nil {
		return nil, fmt.Errorf("网络请求失败: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, respError(resp)
	}

	return &product, nil
}

// ListUserProducts 拉取当前用户自己的广告 GET /users/products
func (c *Client) ListUserProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&products).
		Get("/users/products")
	if err != nil {
		return nil, fmt.Errorf("网络请求失败: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, respError(resp)
	}

	return products, nil
}

// CreateProduct 创建广告 POST /products，返回新广告 ID
func (c *Client) CreateProduct(ctx context.Context, req ProductRequest) (string, error) {
	var created struct {
		ID string `json:"id"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&created).
		Post("/products")
	if err != nil {
		return "", fmt.Errorf("网络请求失败: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK {
		return "", respError(resp)
	}

	return created.ID, nil
}

// UpdateProduct 全量更新广告 PUT /products/:id
func (c *Client) UpdateProduct(ctx context.Context, id string, req ProductRequest) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Put("/products/" + id)
	if err != nil {
		return fmt.Errorf("网络请求失败: %w", err)
	}
	if resp.StatusCode() >= http.StatusMultipleChoices {
		return respError(resp)
	}
	return nil
}

// SetProductActive 上架/下架广告 PATCH /products/:id
func (c *Client) SetProductActive(ctx context.Context, id string, active bool) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]bool{"is_active": active}).
		Patch("/products/" + id)
	if err != nil {
		return fmt.Errorf("网络请求失败: %w", err)
	}
	if resp.StatusCode() >= http.StatusMultipleChoices {
		return respError(resp)
	}
	return nil
}

// DeleteProduct 删除广告 DELETE /products/:id
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/products/" + id)
	if err != nil {
		return fmt.Errorf("网络请求失败: %w", err)
	}
	if resp.StatusCode() >= http.StatusMultipleChoices {
		return respError(resp)
	}
	return nil
}
