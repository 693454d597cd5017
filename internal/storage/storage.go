// Package storage 是客户端的本地持久化层
// 对应移动端的设备存储：卸载即消失，重启保留，没有多写者协调
// （同一时刻只有一个表单持有一个 key，后写覆盖先写）
package storage

// 存储 key（每个 key 一个 JSON 文件）
const (
	// KeyUser 登录用户信息
	KeyUser = "user"
	// KeyAuthToken 鉴权 token
	KeyAuthToken = "token"
	// KeyCreateAd 新建广告草稿
	KeyCreateAd = "create_ad"
	// KeyEditAd 编辑广告草稿
	KeyEditAd = "edit_ad"
	// KeyDeletedImages 编辑流中标记删除的远端图片 ID 列表
	KeyDeletedImages = "deleted_images"
)
