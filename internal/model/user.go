package model

// User 当前登录用户（后端 /users 返回结构）
type User struct {
	ID     string `json:"id"`
	Avatar string `json:"avatar"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Tel    string `json:"tel"`
}
