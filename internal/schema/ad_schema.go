// Package schema 是广告表单的声明式校验层
// 规则声明在 model.AdDraft 的 validate 标签上，这里负责注册自定义规则
// 并把校验失败翻译成逐字段的用户可读提示；任何一个必填项不通过都会阻断提交
package schema

import (
	"github.com/go-playground/validator/v10"
	validators "github.com/go-playground/validator/v10/non-standard/validators"

	"marketspace/internal/model"
	"marketspace/pkg/utils"
)

// MinPriceCents 最低价格：1 个主单位
const MinPriceCents = 100

// 逐字段错误文案，按 字段/规则 维度区分，保证每个字段有独立的提示
var fieldMessages = map[string]string{
	"Images/min":           "请至少选择一张图片",
	"Name/notblank":        "请输入标题",
	"Description/notblank": "请输入描述",
	"Price/notblank":       "请输入价格",
	"Price/price":          "请输入不低于 1 的有效价格",
	"IsNew/required":       "请选择商品是全新还是二手",
	"PaymentMethods/min":   "请至少选择一种支付方式",
}

// AdValidator 广告表单校验器
type AdValidator struct {
	validate *validator.Validate
}

// NewAdValidator 创建校验器并注册自定义规则
func NewAdValidator() *AdValidator {
	v := validator.New()

	// notblank：trim 后非空（validator 自带的 required 放过纯空格）
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	// price：能精确换算成分，且不低于最低价
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		cents, err := utils.PriceToCents(fl.Field().String())
		return err == nil && cents >= MinPriceCents
	})

	return &AdValidator{validate: v}
}

// Validate 校验草稿
// 返回 字段名 -> 错误文案 的映射；草稿合法时返回空映射
func (av *AdValidator) Validate(draft model.AdDraft) map[string]string {
	errs := map[string]string{}

	err := av.validate.Struct(draft)
	if err == nil {
		return errs
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// 非字段级错误（理论上只会是 InvalidValidationError）
		errs["_"] = "表单校验失败"
		return errs
	}

	for _, fe := range verrs {
		field := fe.StructField()
		if _, seen := errs[field]; seen {
			continue
		}
		if msg, found := fieldMessages[field+"/"+fe.Tag()]; found {
			errs[field] = msg
		} else {
			errs[field] = "字段不合法: " + field
		}
	}
	return errs
}
