package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotesmith/internal/domain/entities"
	mock_interfaces "quotesmith/internal/usecase/interfaces/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func sampleParams() entities.IndustryParameters {
	return entities.IndustryParameters{
		BaseMargin:       0.40,
		LaborMultiplier:  1.1,
		MaterialMarkup:   1.2,
		ExperienceWeight: 0.005,
		RegionFactor:     1.05,
	}
}

func TestCachedParameterRepository_Get(t *testing.T) {
	t.Run("miss populates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inner := mock_interfaces.NewMockIParameterRepository(ctrl)
		mr, rdb := newTestRedis(t)
		repo := NewCachedParameterRepository(inner, rdb, time.Minute, nil)

		p := sampleParams()
		inner.EXPECT().Get(gomock.Any(), "user-1", "landscaping").Return(&p, nil)

		got, err := repo.Get(context.Background(), "user-1", "landscaping")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.BaseMargin != 0.40 {
			t.Fatalf("unexpected params: %+v", got)
		}
		if !mr.Exists("params:user-1:landscaping") {
			t.Fatalf("expected cache entry after miss")
		}
	})

	t.Run("hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inner := mock_interfaces.NewMockIParameterRepository(ctrl)
		_, rdb := newTestRedis(t)
		repo := NewCachedParameterRepository(inner, rdb, time.Minute, nil)

		p := sampleParams()
		inner.EXPECT().Get(gomock.Any(), "user-1", "landscaping").Return(&p, nil).Times(1)

		for i := 0; i < 3; i++ {
			got, err := repo.Get(context.Background(), "user-1", "landscaping")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil || got.BaseMargin != 0.40 {
				t.Fatalf("unexpected params: %+v", got)
			}
		}
	})

	t.Run("absence is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inner := mock_interfaces.NewMockIParameterRepository(ctrl)
		mr, rdb := newTestRedis(t)
		repo := NewCachedParameterRepository(inner, rdb, time.Minute, nil)

		inner.EXPECT().Get(gomock.Any(), "user-1", "landscaping").Return(nil, nil).Times(2)

		for i := 0; i < 2; i++ {
			got, err := repo.Get(context.Background(), "user-1", "landscaping")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != nil {
				t.Fatalf("expected nil params, got %+v", got)
			}
		}
		if mr.Exists("params:user-1:landscaping") {
			t.Fatalf("did not expect cache entry for absent override")
		}
	})

	t.Run("corrupt entry falls back to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inner := mock_interfaces.NewMockIParameterRepository(ctrl)
		mr, rdb := newTestRedis(t)
		repo := NewCachedParameterRepository(inner, rdb, time.Minute, nil)

		if err := mr.Set("params:user-1:landscaping", "{not json"); err != nil {
			t.Fatalf("seeding cache: %v", err)
		}
		p := sampleParams()
		inner.EXPECT().Get(gomock.Any(), "user-1", "landscaping").Return(&p, nil)

		got, err := repo.Get(context.Background(), "user-1", "landscaping")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.BaseMargin != 0.40 {
			t.Fatalf("unexpected params: %+v", got)
		}
	})

	t.Run("cache down degrades to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inner := mock_interfaces.NewMockIParameterRepository(ctrl)
		mr, rdb := newTestRedis(t)
		repo := NewCachedParameterRepository(inner, rdb, time.Minute, nil)
		mr.Close()

		p := sampleParams()
		inner.EXPECT().Get(gomock.Any(), "user-1", "landscaping").Return(&p, nil)

		got, err := repo.Get(context.Background(), "user-1", "landscaping")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.BaseMargin != 0.40 {
			t.Fatalf("unexpected params: %+v", got)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inner := mock_interfaces.NewMockIParameterRepository(ctrl)
		_, rdb := newTestRedis(t)
		repo := NewCachedParameterRepository(inner, rdb, time.Minute, nil)

		inner.EXPECT().Get(gomock.Any(), "user-1", "landscaping").Return(nil, errors.New("db"))

		_, err := repo.Get(context.Background(), "user-1", "landscaping")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCachedParameterRepository_Invalidation(t *testing.T) {
	t.Run("put evicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inner := mock_interfaces.NewMockIParameterRepository(ctrl)
		mr, rdb := newTestRedis(t)
		repo := NewCachedParameterRepository(inner, rdb, time.Minute, nil)

		p := sampleParams()
		inner.EXPECT().Get(gomock.Any(), "user-1", "landscaping").Return(&p, nil)
		inner.EXPECT().Put(gomock.Any(), "user-1", "landscaping", gomock.Any()).Return(nil)

		if _, err := repo.Get(context.Background(), "user-1", "landscaping"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Put(context.Background(), "user-1", "landscaping", p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mr.Exists("params:user-1:landscaping") {
			t.Fatalf("expected cache entry evicted after put")
		}
	})

	t.Run("delete evicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inner := mock_interfaces.NewMockIParameterRepository(ctrl)
		mr, rdb := newTestRedis(t)
		repo := NewCachedParameterRepository(inner, rdb, time.Minute, nil)

		p := sampleParams()
		inner.EXPECT().Get(gomock.Any(), "user-1", "landscaping").Return(&p, nil)
		inner.EXPECT().Delete(gomock.Any(), "user-1", "landscaping").Return(nil)

		if _, err := repo.Get(context.Background(), "user-1", "landscaping"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Delete(context.Background(), "user-1", "landscaping"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mr.Exists("params:user-1:landscaping") {
			t.Fatalf("expected cache entry evicted after delete")
		}
	})

	t.Run("store failure skips eviction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inner := mock_interfaces.NewMockIParameterRepository(ctrl)
		_, rdb := newTestRedis(t)
		repo := NewCachedParameterRepository(inner, rdb, time.Minute, nil)

		inner.EXPECT().Put(gomock.Any(), "user-1", "landscaping", gomock.Any()).Return(errors.New("db"))

		err := repo.Put(context.Background(), "user-1", "landscaping", sampleParams())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
