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

// UploadProductImages 上传本地图片 POST /products/images
// multipart 表单：images 为重复的文件字段，product_id 标记归属广告
// 文件名用草稿里派生好的稳定名（photo-<hash>.<ext>），Content-Type 用探测到的类型
func (c *Client) UploadProductImages(ctx context.Context, productID string, images []model.SelectedImage) error {
	if len(images) == 0 {
		return nil
	}

	fields := make([]*resty.MultipartField, 0, len(images))
	for _, img := range images {
		data, err := os.ReadFile(img.URI)
		if err != nil {
			return fmt.Errorf("读取图片 %s 失败: %w", img.URI, err)
		}
		fields = append(fields, &resty.MultipartField{
			Param:       "images",
			FileName:    img.Name,
			ContentType: img.Type,
			Reader:      bytes.NewReader(data),
		})
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartFields(fields...).
		SetMultipartFormData(map[string]string{"product_id": productID}).
		Post("/products/images")
	if err != nil {
		return fmt.Errorf("网络请求失败: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK {
		return respError(resp)
	}

	return nil
}

// DeleteProductImages 删除远端图片 DELETE /products/images
// 请求体携带待删除的图片 ID 列表
func (c *Client) DeleteProductImages(ctx context.Context, imageIDs []string) error {
	if len(imageIDs) == 0 {
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string][]string{"productImagesIds": imageIDs}).
		Delete("/products/images")
	if err != nil {
		return fmt.Errorf("网络请求失败: %w", err)
	}
	if resp.StatusCode() >= http.StatusMultipleChoices {
		return respError(resp)
	}

	return nil
}
