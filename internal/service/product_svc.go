package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"marketspace/internal/model"
	"marketspace/pkg/market"
)

// ProductService 广告的读取与管理（上架/下架/删除）
type ProductService struct {
	api *market.Client
	log *zap.SugaredLogger
}

// NewProductService 创建广告服务
func NewProductService(api *market.Client, log *zap.SugaredLogger) *ProductService {
	return &ProductService{api: api, log: log}
}

// HomeData 首页数据：在售广告列表 + 自己的在售广告数
type HomeData struct {
	Products       []model.Product
	OwnActiveCount int
}

// FetchHome 拉取首页数据
// 两个读请求互不依赖、不共享可变状态，可以并发发出
func (s *ProductService) FetchHome(ctx context.Context, filter market.ListFilter) (*HomeData, error) {
	var (
		wg       sync.WaitGroup
		products []model.Product
		own      []model.Product
		listErr  error
		ownErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		products, listErr = s.api.ListProducts(ctx, filter)
	}()
	go func() {
		defer wg.Done()
		own, ownErr = s.api.ListUserProducts(ctx)
	}()
	wg.Wait()

	if listErr != nil {
		return nil, listErr
	}
	if ownErr != nil {
		return nil, ownErr
	}

	count := 0
	for _, p := range own {
		if p.IsActive {
			count++
		}
	}

	return &HomeData{Products: products, OwnActiveCount: count}, nil
}

// List 拉取在售广告列表
func (s *ProductService) List(ctx context.Context, filter market.ListFilter) ([]model.Product, error) {
	return s.api.ListProducts(ctx, filter)
}

// Get 拉取单个广告详情
func (s *ProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.api.GetProduct(ctx, id)
}

// ListOwn 拉取自己的广告
func (s *ProductService) ListOwn(ctx context.Context) ([]model.Product, error) {
	return s.api.ListUserProducts(ctx)
}

// SetActive 上架/下架广告
func (s *ProductService) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.api.SetProductActive(ctx, id, active); err != nil {
		return err
	}
	s.log.Infow("[ProductService] 广告状态已更新", "id", id, "active", active)
	return nil
}

// Delete 删除广告
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.log.Infow("[ProductService] 广告已删除", "id", id)
	return nil
}
