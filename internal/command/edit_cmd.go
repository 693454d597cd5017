package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// editCommand 编辑已发布的广告
// 和新建流的区别：图片列表里混着远端图片，移除远端图片要记入待删除列表，
// 发布时先更新标量字段、再传新图、最后删旧图
func (d *deps) editCommand() *cli.Command {
	return &cli.Command{
		Name:  "edit",
		Usage: "编辑已发布的广告",
		Subcommands: []*cli.Command{
			{
				Name:      "start",
				Usage:     "用线上广告初始化编辑草稿",
				ArgsUsage: "<广告ID>",
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return cli.Exit("请提供广告 ID", 1)
					}
					if err := d.requireAuth(); err != nil {
						return err
					}
					product, err := d.products.Get(c.Context, id)
					if err != nil {
						return fail(err, "无法加载广告，请稍后再试")
					}
					draft, err := d.drafts.StartEdit(product)
					if err != nil {
						return err
					}
					fmt.Printf("编辑草稿已就绪：%s（%d 张图片）\n", draft.Name, len(draft.Images))
					return nil
				},
			},
			{
				Name:  "set",
				Usage: "修改草稿字段",
				Flags: draftFieldFlags(),
				Action: func(c *cli.Context) error {
					draft, err := d.drafts.LoadEdit()
					if err != nil {
						return err
					}
					if draft.ProductID == "" {
						return cli.Exit("没有进行中的编辑，请先 marketspace edit start <广告ID>", 1)
					}
					if err := applyDraftFlags(c, &draft); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					if err := d.drafts.SaveEdit(draft); err != nil {
						return err
					}
					fmt.Println("编辑草稿已保存")
					return nil
				},
			},
			{
				Name:  "image",
				Usage: "管理编辑草稿的图片",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "添加一张本地图片",
						ArgsUsage: "<文件路径>",
						Action: func(c *cli.Context) error {
							draft, err := d.drafts.LoadEdit()
							if err != nil {
								return err
							}
							if err := d.drafts.AddImage(&draft, c.Args().First()); err != nil {
								return fail(err, "添加图片失败，请稍后再试")
							}
							if err := d.drafts.SaveEdit(draft); err != nil {
								return err
							}
							fmt.Printf("草稿现有 %d 张图片\n", len(draft.Images))
							return nil
						},
					},
					{
						Name:      "rm",
						Usage:     "移除一张图片（远端图片会在发布时真正删除）",
						ArgsUsage: "<图片标识>",
						Action: func(c *cli.Context) error {
							draft, err := d.drafts.LoadEdit()
							if err != nil {
								return err
							}
							deleted, err := d.drafts.LoadDeletedImages()
							if err != nil {
								return err
							}
							deleted, err = d.drafts.RemoveImage(&draft, deleted, c.Args().First())
							if err != nil {
								return cli.Exit(err.Error(), 1)
							}
							if err := d.drafts.SaveEdit(draft); err != nil {
								return err
							}
							if err := d.drafts.SaveDeletedImages(deleted); err != nil {
								return err
							}
							fmt.Printf("草稿现有 %d 张图片，待删除远端图片 %d 张\n", len(draft.Images), len(deleted))
							return nil
						},
					},
				},
			},
			{
				Name:  "show",
				Usage: "预览编辑草稿和校验状态",
				Action: func(c *cli.Context) error {
					draft, err := d.drafts.LoadEdit()
					if err != nil {
						return err
					}
					deleted, err := d.drafts.LoadDeletedImages()
					if err != nil {
						return err
					}
					renderDraft(draft)
					if len(deleted) > 0 {
						fmt.Printf("待删除远端图片: %d 张\n", len(deleted))
					}
					renderValidation(d.validator.Validate(draft))
					return nil
				},
			},
			{
				Name:  "cancel",
				Usage: "丢弃编辑草稿",
				Action: func(c *cli.Context) error {
					if err := d.drafts.RemoveEdit(); err != nil {
						return err
					}
					fmt.Println("编辑草稿已丢弃")
					return nil
				},
			},
			{
				Name:  "publish",
				Usage: "发布编辑",
				Action: func(c *cli.Context) error {
					if err := d.requireAuth(); err != nil {
						return err
					}
					id, err := d.publish.PublishEdit(c.Context)
					if err != nil {
						return fail(err, "无法更新广告，请稍后再试")
					}
					fmt.Printf("广告更新成功！ID: %s\n", id)
					return nil
				},
			},
		},
	}
}
