package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"marketspace/pkg/market"
)

// adsCommand 广告浏览与管理
func (d *deps) adsCommand() *cli.Command {
	return &cli.Command{
		Name:  "ads",
		Usage: "浏览和管理广告",
		Subcommands: []*cli.Command{
			d.adsHome(),
			d.adsList(),
			d.adsMy(),
			d.adsShow(),
			d.adsSetActive("activate", "上架广告", true),
			d.adsSetActive("deactivate", "下架广告", false),
			d.adsDelete(),
		},
	}
}

func listFilterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "query", Usage: "按关键词搜索"},
		&cli.BoolFlag{Name: "new", Usage: "只看全新"},
		&cli.BoolFlag{Name: "used", Usage: "只看二手"},
		&cli.BoolFlag{Name: "trade", Usage: "只看接受换物的"},
		&cli.StringSliceFlag{Name: "payment", Usage: "按支付方式过滤（boleto/pix/cash/card/deposit）"},
	}
}

func listFilterFromFlags(c *cli.Context) market.ListFilter {
	filter := market.ListFilter{
		Query:          c.String("query"),
		PaymentMethods: c.StringSlice("payment"),
	}
	// --new 和 --used 都是显式三态：不传就不过滤
	if c.IsSet("new") {
		v := true
		filter.IsNew = &v
	} else if c.IsSet("used") {
		v := false
		filter.IsNew = &v
	}
	if c.IsSet("trade") {
		v := c.Bool("trade")
		filter.AcceptTrade = &v
	}
	return filter
}

// adsHome 首页：在售列表 + 自己的在售数量（两个请求并发拉取）
func (d *deps) adsHome() *cli.Command {
	return &cli.Command{
		Name:  "home",
		Usage: "首页总览",
		Flags: listFilterFlags(),
		Action: func(c *cli.Context) error {
			if err := d.requireAuth(); err != nil {
				return err
			}
			home, err := d.products.FetchHome(c.Context, listFilterFromFlags(c))
			if err != nil {
				return fail(err, "无法加载首页，请稍后再试")
			}
			fmt.Printf("你有 %d 个在售广告\n\n", home.OwnActiveCount)
			renderProductList(home.Products)
			return nil
		},
	}
}

// adsList 在售广告列表
func (d *deps) adsList() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "在售广告列表",
		Flags: listFilterFlags(),
		Action: func(c *cli.Context) error {
			if err := d.requireAuth(); err != nil {
				return err
			}
			products, err := d.products.List(c.Context, listFilterFromFlags(c))
			if err != nil {
				return fail(err, "无法加载广告列表，请稍后再试")
			}
			renderProductList(products)
			return nil
		},
	}
}

// adsMy 我的广告
func (d *deps) adsMy() *cli.Command {
	return &cli.Command{
		Name:  "my",
		Usage: "我的广告",
		Action: func(c *cli.Context) error {
			if err := d.requireAuth(); err != nil {
				return err
			}
			products, err := d.products.ListOwn(c.Context)
			if err != nil {
				return fail(err, "无法加载我的广告，请稍后再试")
			}
			renderProductList(products)
			return nil
		},
	}
}

// adsShow 广告详情
func (d *deps) adsShow() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "广告详情",
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
				return fail(err, "无法加载广告详情，请稍后再试")
			}
			renderProduct(product)
			return nil
		},
	}
}

// adsSetActive 上架/下架（PATCH is_active）
func (d *deps) adsSetActive(name, usage string, active bool) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<广告ID>",
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return cli.Exit("请提供广告 ID", 1)
			}
			if err := d.requireAuth(); err != nil {
				return err
			}
			if err := d.products.SetActive(c.Context, id, active); err != nil {
				return fail(err, "无法更新广告状态，请稍后再试")
			}
			if active {
				fmt.Println("广告已上架")
			} else {
				fmt.Println("广告已下架")
			}
			return nil
		},
	}
}

// adsDelete 删除广告
func (d *deps) adsDelete() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "删除广告",
		ArgsUsage: "<广告ID>",
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return cli.Exit("请提供广告 ID", 1)
			}
			if err := d.requireAuth(); err != nil {
				return err
			}
			if err := d.products.Delete(c.Context, id); err != nil {
				return fail(err, "无法删除广告，请稍后再试")
			}
			fmt.Println("广告已删除")
			return nil
		},
	}
}
