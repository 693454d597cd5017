// Package command 是 CLI 表现层：原移动端各屏幕的命令行对应物
// 只负责解析参数、调服务、渲染输出，业务规则都在 service / schema 层
package command

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"marketspace/internal/config"
	"marketspace/internal/schema"
	"marketspace/internal/service"
	"marketspace/internal/storage"
	"marketspace/pkg/logger"
	"marketspace/pkg/market"
)

// deps 全部运行期依赖，Before 钩子里一次性装配
type deps struct {
	cfg       *config.Config
	log       *zap.SugaredLogger
	api       *market.Client
	auth      *service.AuthService
	products  *service.ProductService
	drafts    *service.DraftService
	images    *service.ImageService
	publish   *service.PublishService
	validator *schema.AdValidator
}

// NewApp 构建 CLI 应用
func NewApp() *cli.App {
	d := &deps{}

	return &cli.App{
		Name:  "marketspace",
		Usage: "Marketspace 闲置交易客户端",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "输出调试日志"},
		},
		Before: func(c *cli.Context) error {
			return d.init(c.Bool("debug"))
		},
		Commands: []*cli.Command{
			d.loginCommand(),
			d.logoutCommand(),
			d.signupCommand(),
			d.adsCommand(),
			d.draftCommand(),
			d.editCommand(),
		},
	}
}

// init 装配配置、日志、存储、接口客户端和各业务服务
func (d *deps) init(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if debug {
		cfg.Debug = true
	}
	d.cfg = cfg

	log, err := logger.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	d.log = log

	store, err := storage.NewStore(cfg.StateDir)
	if err != nil {
		return err
	}

	d.api = market.New(cfg.APIBaseURL, cfg.RequestTimeout)
	d.auth = service.NewAuthService(d.api, storage.NewSessionStore(store), log)
	d.products = service.NewProductService(d.api, log)
	d.images = service.NewImageService(cfg.MaxImageSizeMB, log)
	d.drafts = service.NewDraftService(store, d.images, log)
	d.validator = schema.NewAdValidator()
	d.publish = service.NewPublishService(d.api, d.drafts, d.validator, log)

	return nil
}

// requireAuth 恢复登录态，未登录/已过期时给出引导文案
func (d *deps) requireAuth() error {
	_, err := d.auth.Restore()
	if err != nil {
		if errors.Is(err, service.ErrNotSignedIn) || errors.Is(err, service.ErrSessionExpired) {
			return cli.Exit(err.Error(), 1)
		}
		return err
	}
	return nil
}

// fail 把错误收敛成用户文案后退出
// 校验错误逐字段展示，其余按"后端 message 优先、兜底文案保底"处理
func fail(err error, fallback string) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		msg := "表单未通过校验：\n"
		for field, fieldMsg := range verr.Fields {
			msg += fmt.Sprintf("  - %s: %s\n", field, fieldMsg)
		}
		return cli.Exit(msg, 1)
	}
	return cli.Exit(service.UserMessage(err, fallback), 1)
}
