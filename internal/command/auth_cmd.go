package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"marketspace/pkg/market"
)

// loginCommand 登录
func (d *deps) loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "登录账号",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "邮箱", Required: true},
			&cli.StringFlag{Name: "password", Usage: "密码", Required: true},
		},
		Action: func(c *cli.Context) error {
			sess, err := d.auth.SignIn(c.Context, c.String("email"), c.String("password"))
			if err != nil {
				return fail(err, "登录失败，请稍后再试")
			}
			fmt.Printf("欢迎回来，%s！\n", sess.User.Name)
			return nil
		},
	}
}

// logoutCommand 登出
func (d *deps) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "退出登录",
		Action: func(c *cli.Context) error {
			if err := d.auth.SignOut(); err != nil {
				return fail(err, "退出登录失败，请稍后再试")
			}
			fmt.Println("已退出登录")
			return nil
		},
	}
}

// signupCommand 注册，头像可选
func (d *deps) signupCommand() *cli.Command {
	return &cli.Command{
		Name:  "signup",
		Usage: "注册新账号",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "昵称", Required: true},
			&cli.StringFlag{Name: "email", Usage: "邮箱", Required: true},
			&cli.StringFlag{Name: "tel", Usage: "电话", Required: true},
			&cli.StringFlag{Name: "password", Usage: "密码", Required: true},
			&cli.StringFlag{Name: "avatar", Usage: "头像文件路径（可选）"},
		},
		Action: func(c *cli.Context) error {
			req := market.SignUpRequest{
				Name:     c.String("name"),
				Email:    c.String("email"),
				Tel:      c.String("tel"),
				Password: c.String("password"),
			}

			// 头像复用图片预处理：同样的体积上限和命名规则
			avatar, err := d.images.Pick(c.String("avatar"))
			if err != nil {
				return fail(err, "处理头像失败，请稍后再试")
			}
			req.Avatar = avatar

			if err := d.auth.SignUp(c.Context, req); err != nil {
				return fail(err, "注册失败，请稍后再试")
			}
			fmt.Println("注册成功，现在可以用 marketspace login 登录了")
			return nil
		},
	}
}
