package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"marketspace/internal/model"
	"marketspace/internal/storage"
	"marketspace/pkg/utils"
)

// MaxAdImages 单个广告最多携带的图片数
const MaxAdImages = 3

// ErrTooManyImages 图片数量超过上限
var ErrTooManyImages = fmt.Errorf("最多只能添加 %d 张图片", MaxAdImages)

// DraftService 广告草稿的持久化与变更
// 草稿在表单和预览两个界面之间通过本地存储传递：
// 每次离开表单前存一次，回到表单时读回来，取消或发布成功后清掉
type DraftService struct {
	store  *storage.Store
	images *ImageService
	log    *zap.SugaredLogger
}

// NewDraftService 创建草稿服务
func NewDraftService(store *storage.Store, images *ImageService, log *zap.SugaredLogger) *DraftService {
	return &DraftService{store: store, images: images, log: log}
}

// ==================== 新建流 ====================

// LoadCreate 读取新建草稿，从未保存过时返回空草稿
func (s *DraftService) LoadCreate() (model.AdDraft, error) {
	var draft model.AdDraft
	err := s.store.Get(storage.KeyCreateAd, &draft)
	return draft, err
}

// SaveCreate 保存新建草稿
func (s *DraftService) SaveCreate(draft model.AdDraft) error {
	return s.store.Save(storage.KeyCreateAd, draft)
}

// RemoveCreate 丢弃新建草稿（取消或发布成功后）
func (s *DraftService) RemoveCreate() error {
	return s.store.Remove(storage.KeyCreateAd)
}

// ==================== 编辑流 ====================

// StartEdit 用已发布的广告初始化编辑草稿
// 已有图片以远端形态进入图片列表，价格从分还原成十进制字符串
func (s *DraftService) StartEdit(product *model.Product) (model.AdDraft, error) {
	images := make([]model.AdImage, 0, len(product.ProductImages))
	for _, img := range product.ProductImages {
		images = append(images, model.AdImage{IsNew: false, ID: img.ID, Path: img.Path})
	}

	isNew := product.IsNew
	draft := model.AdDraft{
		ProductID:      product.ID,
		Images:         images,
		Name:           product.Name,
		Description:    product.Description,
		Price:          model.PriceString(utils.CentsToPrice(product.Price)),
		IsNew:          &isNew,
		AcceptTrade:    product.AcceptTrade,
		PaymentMethods: product.PaymentMethods,
	}

	if err := s.SaveEdit(draft); err != nil {
		return model.AdDraft{}, err
	}
	// 新一轮编辑从空的待删除列表开始
	if err := s.store.Remove(storage.KeyDeletedImages); err != nil {
		return model.AdDraft{}, err
	}
	return draft, nil
}

// LoadEdit 读取编辑草稿
func (s *DraftService) LoadEdit() (model.AdDraft, error) {
	var draft model.AdDraft
	err := s.store.Get(storage.KeyEditAd, &draft)
	return draft, err
}

// SaveEdit 保存编辑草稿
func (s *DraftService) SaveEdit(draft model.AdDraft) error {
	return s.store.Save(storage.KeyEditAd, draft)
}

// LoadDeletedImages 读取待删除的远端图片 ID 列表
func (s *DraftService) LoadDeletedImages() (model.DeletedImages, error) {
	var deleted model.DeletedImages
	err := s.store.Get(storage.KeyDeletedImages, &deleted)
	return deleted, err
}

// SaveDeletedImages 保存待删除列表
func (s *DraftService) SaveDeletedImages(deleted model.DeletedImages) error {
	return s.store.Save(storage.KeyDeletedImages, deleted)
}

// RemoveEdit 丢弃编辑草稿和待删除列表
func (s *DraftService) RemoveEdit() error {
	if err := s.store.Remove(storage.KeyEditAd); err != nil {
		return err
	}
	return s.store.Remove(storage.KeyDeletedImages)
}

// ==================== 图片变更 ====================

// AddImage 往草稿里添加一张本地图片
// path 为空（用户取消）不改变草稿；超限/非图片的文件被拒绝
func (s *DraftService) AddImage(draft *model.AdDraft, path string) error {
	if len(draft.Images) >= MaxAdImages {
		return ErrTooManyImages
	}

	img, err := s.images.Pick(path)
	if err != nil {
		return err
	}
	if img == nil {
		// 用户取消
		return nil
	}

	// 同一张图重复添加（派生名相同）直接忽略
	for _, existing := range draft.Images {
		if existing.Ident() == img.Name {
			return nil
		}
	}

	draft.AddImage(*img)
	return nil
}

// RemoveImage 从草稿里移除一张图片，并维护待删除列表
// 只有远端图片会进入待删除列表，本地新图直接丢弃
func (s *DraftService) RemoveImage(draft *model.AdDraft, deleted model.DeletedImages, ident string) (model.DeletedImages, error) {
	deletedID, removed := draft.RemoveImage(ident)
	if !removed {
		return deleted, errors.New("草稿里没有这张图片: " + ident)
	}
	return deleted.Add(deletedID), nil
}
