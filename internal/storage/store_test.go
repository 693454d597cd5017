package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketspace/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)

	isNew := true
	draft := model.AdDraft{
		Name:        "复古台灯",
		Description: "八十年代的老物件",
		Price:       "120,00",
		IsNew:       &isNew,
		AcceptTrade: true,
		Images: []model.AdImage{
			{IsNew: true, Name: "photo-abc.png", URI: "/tmp/lamp.png", Type: "image/png"},
			{IsNew: false, ID: "img-1", Path: "uploads/img-1.png"},
		},
		PaymentMethods: []model.PaymentMethod{{Key: "pix", Name: "Pix"}},
	}
	require.NoError(t, store.Save(KeyCreateAd, draft))

	var got model.AdDraft
	require.NoError(t, store.Get(KeyCreateAd, &got))
	assert.Equal(t, draft, got)
}

// key 从未写入过：不报错，out 保持零值
func TestStore_GetMissingKey(t *testing.T) {
	store := newTestStore(t)

	var got model.AdDraft
	assert.NoError(t, store.Get(KeyCreateAd, &got))
	assert.True(t, got.IsEmpty())
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(KeyAuthToken, "old-token"))
	require.NoError(t, store.Save(KeyAuthToken, "new-token"))

	var token string
	require.NoError(t, store.Get(KeyAuthToken, &token))
	assert.Equal(t, "new-token", token)
}

func TestStore_Remove(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(KeyDeletedImages, model.DeletedImages{"img-1"}))
	require.NoError(t, store.Remove(KeyDeletedImages))

	var got model.DeletedImages
	require.NoError(t, store.Get(KeyDeletedImages, &got))
	assert.Empty(t, got)

	// 幂等：重复删除不报错
	assert.NoError(t, store.Remove(KeyDeletedImages))
}

// key 之间互不干扰
func TestStore_KeysAreIsolated(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(KeyCreateAd, model.AdDraft{Name: "新建草稿"}))
	require.NoError(t, store.Save(KeyEditAd, model.AdDraft{Name: "编辑草稿"}))
	require.NoError(t, store.Remove(KeyCreateAd))

	var edit model.AdDraft
	require.NoError(t, store.Get(KeyEditAd, &edit))
	assert.Equal(t, "编辑草稿", edit.Name)
}

// 写入不应留下临时文件
func TestStore_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(KeyUser, model.User{Name: "小王"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, KeyUser+".json", entries[0].Name())
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	_, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
