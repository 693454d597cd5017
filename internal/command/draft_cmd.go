package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"marketspace/internal/model"
)

// ==================== 表单字段标志 ====================

func draftFieldFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Usage: "广告标题"},
		&cli.StringFlag{Name: "description", Usage: "商品描述"},
		&cli.StringFlag{Name: "price", Usage: "价格（主单位，如 19,90）"},
		&cli.StringFlag{Name: "condition", Usage: "新旧状态：new 或 used"},
		&cli.BoolFlag{Name: "trade", Usage: "是否接受换物"},
		&cli.StringSliceFlag{Name: "payment", Usage: "支付方式 key（可多次传入：boleto/pix/cash/card/deposit）"},
	}
}

// applyDraftFlags 把命令行参数写进草稿，只动显式传入的字段
func applyDraftFlags(c *cli.Context, draft *model.AdDraft) error {
	if c.IsSet("title") {
		draft.Name = c.String("title")
	}
	if c.IsSet("description") {
		draft.Description = c.String("description")
	}
	if c.IsSet("price") {
		draft.Price = model.PriceString(c.String("price"))
	}
	if c.IsSet("condition") {
		switch strings.ToLower(c.String("condition")) {
		case model.ConditionNew:
			v := true
			draft.IsNew = &v
		case model.ConditionUsed:
			v := false
			draft.IsNew = &v
		default:
			return fmt.Errorf("condition 必须是 %s 或 %s", model.ConditionNew, model.ConditionUsed)
		}
	}
	if c.IsSet("trade") {
		draft.AcceptTrade = c.Bool("trade")
	}
	if c.IsSet("payment") {
		methods := make([]model.PaymentMethod, 0, len(c.StringSlice("payment")))
		for _, key := range c.StringSlice("payment") {
			opt, ok := model.FindPaymentOption(strings.ToLower(strings.TrimSpace(key)))
			if !ok {
				return fmt.Errorf("不支持的支付方式: %s（可选：boleto/pix/cash/card/deposit）", key)
			}
			methods = append(methods, opt)
		}
		draft.PaymentMethods = methods
	}
	return nil
}

// ==================== 新建广告流 ====================

// draftCommand 新建广告草稿：逐字段填写，随时保存，最后发布
func (d *deps) draftCommand() *cli.Command {
	return &cli.Command{
		Name:  "draft",
		Usage: "新建广告草稿",
		Subcommands: []*cli.Command{
			{
				Name:  "set",
				Usage: "填写草稿字段",
				Flags: draftFieldFlags(),
				Action: func(c *cli.Context) error {
					draft, err := d.drafts.LoadCreate()
					if err != nil {
						return err
					}
					if err := applyDraftFlags(c, &draft); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					if err := d.drafts.SaveCreate(draft); err != nil {
						return err
					}
					fmt.Println("草稿已保存")
					return nil
				},
			},
			{
				Name:      "image",
				Usage:     "管理草稿图片",
				ArgsUsage: "add <文件路径> | rm <图片标识>",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "添加一张本地图片",
						ArgsUsage: "<文件路径>",
						Action: func(c *cli.Context) error {
							draft, err := d.drafts.LoadCreate()
							if err != nil {
								return err
							}
							if err := d.drafts.AddImage(&draft, c.Args().First()); err != nil {
								return fail(err, "添加图片失败，请稍后再试")
							}
							if err := d.drafts.SaveCreate(draft); err != nil {
								return err
							}
							fmt.Printf("草稿现有 %d 张图片\n", len(draft.Images))
							return nil
						},
					},
					{
						Name:      "rm",
						Usage:     "移除一张图片",
						ArgsUsage: "<图片标识>",
						Action: func(c *cli.Context) error {
							draft, err := d.drafts.LoadCreate()
							if err != nil {
								return err
							}
							// 新建流没有远端图片，待删除列表不参与
							if _, err := d.drafts.RemoveImage(&draft, nil, c.Args().First()); err != nil {
								return cli.Exit(err.Error(), 1)
							}
							if err := d.drafts.SaveCreate(draft); err != nil {
								return err
							}
							fmt.Printf("草稿现有 %d 张图片\n", len(draft.Images))
							return nil
						},
					},
				},
			},
			{
				Name:  "show",
				Usage: "预览草稿和校验状态",
				Action: func(c *cli.Context) error {
					draft, err := d.drafts.LoadCreate()
					if err != nil {
						return err
					}
					renderDraft(draft)
					renderValidation(d.validator.Validate(draft))
					return nil
				},
			},
			{
				Name:  "cancel",
				Usage: "丢弃草稿",
				Action: func(c *cli.Context) error {
					if err := d.drafts.RemoveCreate(); err != nil {
						return err
					}
					fmt.Println("草稿已丢弃")
					return nil
				},
			},
			{
				Name:  "publish",
				Usage: "发布草稿",
				Action: func(c *cli.Context) error {
					if err := d.requireAuth(); err != nil {
						return err
					}
					id, err := d.publish.PublishCreate(c.Context)
					if err != nil {
						return fail(err, "无法发布广告，请稍后再试")
					}
					fmt.Printf("广告发布成功！ID: %s\n", id)
					return nil
				},
			},
		},
	}
}
