package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"marketspace/internal/model"
	"marketspace/internal/schema"
	"marketspace/pkg/market"
	"marketspace/pkg/utils"
)

var (
	// ErrPublishInFlight 已有一次发布在进行中（防止重复触发）
	ErrPublishInFlight = errors.New("发布正在进行中，请稍候")
	// ErrNoDraft 没有可发布的草稿
	ErrNoDraft = errors.New("没有待发布的草稿")
)

// ValidationError 草稿未通过表单校验
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "；")
}

// PublishService 发布编排器
// 把一份校验通过的草稿换成一串后端调用：
// 创建/更新 -> 上传新图 -> （编辑流）删除旧图 -> 清理草稿
// 顺序不可调换（后面的请求依赖前面产生的 ID），任何一步失败都保留草稿，
// 用户重试整个序列即可最终一致；只有全部成功才清掉草稿
type PublishService struct {
	api       *market.Client
	drafts    *DraftService
	validator *schema.AdValidator
	log       *zap.SugaredLogger

	mu       sync.Mutex
	inFlight bool
}

// NewPublishService 创建发布编排器
func NewPublishService(api *market.Client, drafts *DraftService, validator *schema.AdValidator, log *zap.SugaredLogger) *PublishService {
	return &PublishService{api: api, drafts: drafts, validator: validator, log: log}
}

// PublishCreate 发布新建草稿，成功后返回新广告 ID
func (s *PublishService) PublishCreate(ctx context.Context) (string, error) {
	if err := s.begin(); err != nil {
		return "", err
	}
	defer s.end()

	// 1. 取草稿
	draft, err := s.drafts.LoadCreate()
	if err != nil {
		return "", err
	}
	if draft.IsEmpty() {
		return "", ErrNoDraft
	}

	// 2. 校验
	if errs := s.validator.Validate(draft); len(errs) > 0 {
		return "", &ValidationError{Fields: errs}
	}

	// 3. 组装标量字段并创建广告
	req, err := buildProductRequest(draft)
	if err != nil {
		return "", err
	}

	productID, err := s.api.CreateProduct(ctx, *req)
	if err != nil {
		s.log.Warnw("[PublishService] 创建广告失败，草稿保留", "err", err)
		return "", err
	}

	// 4. 上传图片（依赖上一步产生的 ID）
	if err := s.api.UploadProductImages(ctx, productID, draft.NewImages()); err != nil {
		s.log.Warnw("[PublishService] 图片上传失败，草稿保留", "product_id", productID, "err", err)
		return "", err
	}

	// 5. 全部成功，清理草稿
	if err := s.drafts.RemoveCreate(); err != nil {
		// 广告已经发出去了，本地清理失败不算发布失败
		s.log.Warnw("[PublishService] 清理新建草稿失败", "err", err)
	}

	s.log.Infow("[PublishService] 广告发布成功", "product_id", productID)
	return productID, nil
}

// PublishEdit 发布编辑草稿，成功后返回广告 ID
func (s *PublishService) PublishEdit(ctx context.Context) (string, error) {
	if err := s.begin(); err != nil {
		return "", err
	}
	defer s.end()

	// 1. 取草稿和待删除列表
	draft, err := s.drafts.LoadEdit()
	if err != nil {
		return "", err
	}
	if draft.IsEmpty() || draft.ProductID == "" {
		return "", ErrNoDraft
	}

	deleted, err := s.drafts.LoadDeletedImages()
	if err != nil {
		return "", err
	}

	// 2. 校验
	if errs := s.validator.Validate(draft); len(errs) > 0 {
		return "", &ValidationError{Fields: errs}
	}

	// 3. 更新标量字段
	req, err := buildProductRequest(draft)
	if err != nil {
		return "", err
	}

	if err := s.api.UpdateProduct(ctx, draft.ProductID, *req); err != nil {
		s.log.Warnw("[PublishService] 更新广告失败，草稿保留", "product_id", draft.ProductID, "err", err)
		return "", err
	}

	// 4. 上传新选的图片
	if newImages := draft.NewImages(); len(newImages) > 0 {
		if err := s.api.UploadProductImages(ctx, draft.ProductID, newImages); err != nil {
			s.log.Warnw("[PublishService] 图片上传失败，草稿保留", "product_id", draft.ProductID, "err", err)
			return "", err
		}
	}

	// 5. 删除被移除的远端图片（必须排在新图上传成功之后）
	if len(deleted) > 0 {
		if err := s.api.DeleteProductImages(ctx, deleted); err != nil {
			s.log.Warnw("[PublishService] 删除旧图失败，草稿保留", "product_id", draft.ProductID, "err", err)
			return "", err
		}
	}

	// 6. 全部成功，清理草稿和待删除列表
	if err := s.drafts.RemoveEdit(); err != nil {
		s.log.Warnw("[PublishService] 清理编辑草稿失败", "err", err)
	}

	s.log.Infow("[PublishService] 广告更新成功", "product_id", draft.ProductID)
	return draft.ProductID, nil
}

// buildProductRequest 草稿 -> 接口请求
// 价格在这里（且只在这里）换算成分；支付方式收敛成后端 key
func buildProductRequest(draft model.AdDraft) (*market.ProductRequest, error) {
	cents, err := utils.PriceToCents(string(draft.Price))
	if err != nil {
		return nil, fmt.Errorf("价格换算失败: %w", err)
	}

	return &market.ProductRequest{
		Name:           strings.TrimSpace(draft.Name),
		Description:    strings.TrimSpace(draft.Description),
		Price:          cents,
		IsNew:          *draft.IsNew,
		AcceptTrade:    draft.AcceptTrade,
		PaymentMethods: draft.PaymentKeys(),
	}, nil
}

// begin 发布互斥：同一时刻只允许一次发布在途
func (s *PublishService) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrPublishInFlight
	}
	s.inFlight = true
	return nil
}

func (s *PublishService) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}
