package model

import (
	"encoding/json"
	"strings"
)

// ==================== 商品条件 ====================

// Condition 新旧状态是三态的：未选择 / 全新 / 二手
// 表单里用 *bool 表达，nil 表示用户尚未选择，提交前必须显式二选一
const (
	ConditionNew  = "new"
	ConditionUsed = "used"
)

// ==================== 草稿图片 ====================

// AdImage 草稿图片列表的带标签联合类型
// 同一个列表里既有本地新选的文件，也有编辑时带回来的远端图片，
// 两种形态的字段互不重叠，所有消费方必须按 IsNew 分支处理，
// 不允许靠字段是否为空来猜测形态
type AdImage struct {
	IsNew bool `json:"is_new"`

	// 远端图片（IsNew == false）
	ID   string `json:"id,omitempty"`
	Path string `json:"path,omitempty"`

	// 本地新图（IsNew == true）
	Name string `json:"name,omitempty"`
	URI  string `json:"uri,omitempty"`
	Type string `json:"type,omitempty"`
}

// Ident 图片在列表里的唯一标识：远端图片用 ID，本地图片用派生文件名
func (i AdImage) Ident() string {
	if i.IsNew {
		return i.Name
	}
	return i.ID
}

// SelectedImage 本地选中、待上传的文件
// Name 是基于来源 URI 内容哈希派生的稳定文件名（小写、保留扩展名）
type SelectedImage struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
	Type string `json:"type"`
}

// AsAdImage 转换为草稿图片列表的新图形态
func (s SelectedImage) AsAdImage() AdImage {
	return AdImage{
		IsNew: true,
		Name:  s.Name,
		URI:   s.URI,
		Type:  s.Type,
	}
}

// ==================== 价格字符串 ====================

// PriceString 草稿里的价格
// 正常形态是十进制字符串（本地化输入，逗号做小数点）；
// 老草稿回灌时可能是裸数字，两种形态反序列化后等价，校验规则一致
type PriceString string

// UnmarshalJSON 同时接受 JSON 字符串和数字
func (p *PriceString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PriceString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PriceString(n.String())
	return nil
}

// ==================== 广告草稿 ====================

// AdDraft 正在编写、尚未发布的广告
// Price 在草稿里始终是主单位的十进制字符串（如 "19,90"），
// 转换成分只发生在提交边界
type AdDraft struct {
	// ProductID 仅编辑流使用：被编辑广告的后端 ID
	ProductID string `json:"product_id,omitempty"`

	Images         []AdImage       `json:"product_images" validate:"min=1"`
	Name           string          `json:"name" validate:"notblank"`
	Description    string          `json:"description" validate:"notblank"`
	Price          PriceString     `json:"price" validate:"notblank,price"`
	IsNew          *bool           `json:"is_new" validate:"required"`
	AcceptTrade    bool            `json:"accept_trade"`
	PaymentMethods []PaymentMethod `json:"payment_methods" validate:"min=1"`
}

// IsEmpty 草稿是否从未填写过任何内容
func (d AdDraft) IsEmpty() bool {
	return len(d.Images) == 0 &&
		d.Name == "" &&
		d.Description == "" &&
		d.Price == "" &&
		d.IsNew == nil &&
		!d.AcceptTrade &&
		len(d.PaymentMethods) == 0
}

// NewImages 过滤出本地新选的图片（编辑流只上传这部分）
func (d AdDraft) NewImages() []SelectedImage {
	var files []SelectedImage
	for _, img := range d.Images {
		if img.IsNew {
			files = append(files, SelectedImage{Name: img.Name, URI: img.URI, Type: img.Type})
		}
	}
	return files
}

// AddImage 追加一张本地新选的图片
func (d *AdDraft) AddImage(img SelectedImage) {
	d.Images = append(d.Images, img.AsAdImage())
}

// RemoveImage 按标识移除一张图片
// 移除的是远端图片时返回其 ID（调用方要把它记入待删除列表）；
// 本地新图直接丢弃，不产生删除请求
func (d *AdDraft) RemoveImage(ident string) (deletedID string, removed bool) {
	kept := d.Images[:0]
	for _, img := range d.Images {
		if img.Ident() == ident {
			removed = true
			if !img.IsNew {
				deletedID = img.ID
			}
			continue
		}
		kept = append(kept, img)
	}
	d.Images = kept
	return deletedID, removed
}

// ==================== 待删除图片列表 ====================

// DeletedImages 编辑流中标记删除的远端图片 ID 集合（无重复，顺序无关）
type DeletedImages []string

// Add 记入一个 ID，空值和重复值被忽略
func (d DeletedImages) Add(id string) DeletedImages {
	if id == "" {
		return d
	}
	for _, existing := range d {
		if existing == id {
			return d
		}
	}
	return append(d, id)
}

// PaymentKeys 提取支付方式的后端标识（小写、去空格）
func (d AdDraft) PaymentKeys() []string {
	keys := make([]string, 0, len(d.PaymentMethods))
	for _, m := range d.PaymentMethods {
		keys = append(keys, strings.ToLower(strings.TrimSpace(m.Key)))
	}
	return keys
}
