package service

import (
	"crypto/md5"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"marketspace/internal/model"
)

// 图片选择的业务错误，文案可直接展示
var (
	// ErrImageTooLarge 体积超限（上限含边界：正好等于上限是合法的）
	ErrImageTooLarge = errors.New("图片太大，请选择更小的图片")
	// ErrNotImage 选中的不是图片文件
	ErrNotImage = errors.New("所选文件不是图片")
	// ErrPickFailed 选择器/文件系统层面的失败，非致命，提示稍后重试
	ErrPickFailed = errors.New("选择图片失败，请稍后再试")
)

// ImageService 图片选择与上传预处理
// 对应移动端的系统相册选择器：这里的"选择"就是一个本地文件路径
// 职责：体积校验、类型探测、派生稳定文件名
type ImageService struct {
	maxBytes int64
	log      *zap.SugaredLogger
}

// NewImageService 创建图片服务，maxSizeMB 为单张图片的体积上限
func NewImageService(maxSizeMB int, log *zap.SugaredLogger) *ImageService {
	return &ImageService{
		maxBytes: int64(maxSizeMB) * 1024 * 1024,
		log:      log,
	}
}

// Pick 处理一次图片选择
// path 为空表示用户取消，返回 (nil, nil)，不算错误
// 超限或非图片的文件直接拒绝，不会进入草稿
func (s *ImageService) Pick(path string) (*model.SelectedImage, error) {
	if path == "" {
		// 用户取消选择
		return nil, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		s.log.Warnw("[ImageService] 读取文件信息失败", "path", path, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrPickFailed, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s 是目录", ErrPickFailed, path)
	}

	// 体积上限含边界：正好等于上限的文件放行
	if info.Size() > s.maxBytes {
		return nil, fmt.Errorf("%w（上限 %dMB）", ErrImageTooLarge, s.maxBytes/1024/1024)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		s.log.Warnw("[ImageService] 探测文件类型失败", "path", path, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrPickFailed, err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, mtype.String())
	}

	// 文件名基于来源路径的哈希派生：同一文件反复选择得到同一个名字
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		ext = strings.TrimPrefix(mtype.Extension(), ".")
	}
	name := strings.ToLower(fmt.Sprintf("photo-%x.%s", md5.Sum([]byte(path)), ext))

	return &model.SelectedImage{
		Name: name,
		URI:  path,
		Type: mtype.String(),
	}, nil
}
