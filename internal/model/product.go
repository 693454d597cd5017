package model

// ==================== 接口数据结构 ====================

// PaymentMethod 支付方式
// Key 是后端识别的短标识（wire 层只传 Key），Name 是展示名
type PaymentMethod struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ProductImage 已上传到后端的商品图片
type ProductImage struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// ProductUser 商品归属的卖家信息
type ProductUser struct {
	Avatar string `json:"avatar"`
	Name   string `json:"name"`
	Tel    string `json:"tel"`
}

// Product 商品（广告）完整结构
// Price 为最小货币单位（分）
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          int64           `json:"price"`
	IsNew          bool            `json:"is_new"`
	IsActive       bool            `json:"is_active"`
	AcceptTrade    bool            `json:"accept_trade"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	ProductImages  []ProductImage  `json:"product_images"`
	User           ProductUser     `json:"user"`
	UserID         string          `json:"user_id"`
}

// ==================== 支付方式目录 ====================

// PaymentOptions 客户端支持的全部支付方式
// Key 必须与后端约定一致，展示名沿用后端的葡语文案
var PaymentOptions = []PaymentMethod{
	{Key: "boleto", Name: "Boleto"},
	{Key: "pix", Name: "Pix"},
	{Key: "cash", Name: "Dinheiro"},
	{Key: "card", Name: "Cartão de crédito"},
	{Key: "deposit", Name: "Cartão de débito"},
}

// FindPaymentOption 按 Key 查找支付方式，找不到返回 false
func FindPaymentOption(key string) (PaymentMethod, bool) {
	for _, opt := range PaymentOptions {
		if opt.Key == key {
			return opt, true
		}
	}
	return PaymentMethod{}, false
}
