package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketspace/internal/model"
	"marketspace/pkg/logger"
	"marketspace/pkg/market"
)

func newProductFixture(t *testing.T, handler http.HandlerFunc) *ProductService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewProductService(market.New(server.URL, 5*time.Second), logger.NewNop())
}

func TestProductService_FetchHome(t *testing.T) {
	svc := newProductFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			json.NewEncoder(w).Encode([]model.Product{
				{ID: "prod-1", Name: "台灯", IsActive: true},
				{ID: "prod-2", Name: "椅子", IsActive: true},
			})
		case "/users/products":
			// 自己的广告：两条在售，一条已下架
			json.NewEncoder(w).Encode([]model.Product{
				{ID: "prod-3", IsActive: true},
				{ID: "prod-4", IsActive: false},
				{ID: "prod-5", IsActive: true},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	home, err := svc.FetchHome(context.Background(), market.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, home.Products, 2)
	// 已下架的不计入在售数
	assert.Equal(t, 2, home.OwnActiveCount)
}

// 任一请求失败整体失败
func TestProductService_FetchHomePartialFailure(t *testing.T) {
	svc := newProductFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			json.NewEncoder(w).Encode([]model.Product{})
		default:
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "服务不可用"})
		}
	})

	_, err := svc.FetchHome(context.Background(), market.ListFilter{})
	require.Error(t, err)
	apiErr, ok := market.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "服务不可用", apiErr.Message)
}

func TestProductService_Get(t *testing.T) {
	svc := newProductFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/prod-1", r.URL.Path)
		json.NewEncoder(w).Encode(model.Product{
			ID:    "prod-1",
			Name:  "复古台灯",
			Price: 1990,
			User:  model.ProductUser{Name: "小王", Tel: "11999990000"},
		})
	})

	product, err := svc.Get(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "复古台灯", product.Name)
	assert.Equal(t, int64(1990), product.Price)
}

func TestProductService_SetActiveAndDelete(t *testing.T) {
	var calls []string
	svc := newProductFixture(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, svc.SetActive(context.Background(), "prod-1", false))
	require.NoError(t, svc.Delete(context.Background(), "prod-1"))
	assert.Equal(t, []string{
		"PATCH /products/prod-1",
		"DELETE /products/prod-1",
	}, calls)
}
