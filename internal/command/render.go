package command

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"marketspace/internal/model"
	"marketspace/pkg/utils"
)

func conditionLabel(isNew bool) string {
	if isNew {
		return "全新"
	}
	return "二手"
}

// renderProductList 广告列表
func renderProductList(products []model.Product) {
	if len(products) == 0 {
		fmt.Println("暂时没有广告")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\t标题\t价格\t状态\t")
	for _, p := range products {
		state := conditionLabel(p.IsNew)
		if !p.IsActive {
			state += "（已下架）"
		}
		fmt.Fprintf(w, "%s\t%s\tR$ %s\t%s\t\n", p.ID, p.Name, utils.CentsToPrice(p.Price), state)
	}
	w.Flush()
}

// renderProduct 广告详情
func renderProduct(p *model.Product) {
	fmt.Printf("%s\n", p.Name)
	fmt.Printf("卖家: %s（%s）\n", p.User.Name, p.User.Tel)
	fmt.Printf("价格: R$ %s\n", utils.CentsToPrice(p.Price))
	fmt.Printf("状态: %s\n", conditionLabel(p.IsNew))
	fmt.Printf("接受换物: %v\n", p.AcceptTrade)
	fmt.Printf("描述: %s\n", p.Description)

	names := make([]string, 0, len(p.PaymentMethods))
	for _, m := range p.PaymentMethods {
		names = append(names, m.Name)
	}
	fmt.Printf("支付方式: %s\n", strings.Join(names, ", "))

	for _, img := range p.ProductImages {
		fmt.Printf("图片: %s (%s)\n", img.ID, img.Path)
	}
}

// renderDraft 草稿预览
func renderDraft(d model.AdDraft) {
	fmt.Printf("标题: %s\n", d.Name)
	fmt.Printf("描述: %s\n", d.Description)
	fmt.Printf("价格: %s\n", d.Price)
	if d.IsNew == nil {
		fmt.Println("状态: （未选择）")
	} else {
		fmt.Printf("状态: %s\n", conditionLabel(*d.IsNew))
	}
	fmt.Printf("接受换物: %v\n", d.AcceptTrade)

	keys := make([]string, 0, len(d.PaymentMethods))
	for _, m := range d.PaymentMethods {
		keys = append(keys, m.Name)
	}
	fmt.Printf("支付方式: %s\n", strings.Join(keys, ", "))

	for _, img := range d.Images {
		if img.IsNew {
			fmt.Printf("图片: %s（本地新图 %s）\n", img.Name, img.URI)
		} else {
			fmt.Printf("图片: %s（已上传 %s）\n", img.ID, img.Path)
		}
	}
}

// renderValidation 校验结果
func renderValidation(errs map[string]string) {
	if len(errs) == 0 {
		fmt.Println("\n校验通过，可以发布")
		return
	}
	fmt.Println("\n还不能发布：")
	for _, msg := range errs {
		fmt.Printf("  - %s\n", msg)
	}
}
