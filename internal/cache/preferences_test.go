package cache_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lljaworski/invoicing/internal/cache"
	"github.com/lljaworski/invoicing/internal/mocks"
)

func TestPreferences_WithoutRedis(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockPreferences(ctrl)

	store.EXPECT().NumberTemplate(gomock.Any()).Return("INV/{year}/{month}/{number}", nil).Times(2)
	store.EXPECT().SetNumberTemplate(gomock.Any(), "FV/{year}/{month}/{number}").Return(nil)

	p := cache.NewPreferences(store, nil, time.Minute)

	for range 2 {
		template, err := p.NumberTemplate(context.Background())
		require.NoError(t, err)
		require.Equal(t, "INV/{year}/{month}/{number}", template)
	}

	require.NoError(t, p.SetNumberTemplate(context.Background(), "FV/{year}/{month}/{number}"))
}

func TestPreferences_StoreError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockPreferences(ctrl)
	boom := errors.New("boom")

	store.EXPECT().NumberTemplate(gomock.Any()).Return("", boom)
	store.EXPECT().SetNumberTemplate(gomock.Any(), gomock.Any()).Return(boom)

	p := cache.NewPreferences(store, nil, time.Minute)

	_, err := p.NumberTemplate(context.Background())
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, p.SetNumberTemplate(context.Background(), "x"), boom)
}

func TestConnect_EmptyAddr(t *testing.T) {
	t.Parallel()

	client, err := cache.Connect(context.Background(), "", "", 0)
	require.NoError(t, err)
	require.Nil(t, client)
}

func TestPreferences_Redis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	ctx := context.Background()

	client, err := cache.Connect(ctx, addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.FlushDB(ctx).Err())

	ctrl := gomock.NewController(t)
	store := mocks.NewMockPreferences(ctrl)

	gomock.InOrder(
		store.EXPECT().NumberTemplate(gomock.Any()).Return("A/{year}/{month}/{number}", nil),
		store.EXPECT().SetNumberTemplate(gomock.Any(), "B/{year}/{month}/{number}").Return(nil),
	)

	p := cache.NewPreferences(store, client, time.Minute)

	// second read is served from redis
	for range 2 {
		template, err := p.NumberTemplate(ctx)
		require.NoError(t, err)
		require.Equal(t, "A/{year}/{month}/{number}", template)
	}

	require.NoError(t, p.SetNumberTemplate(ctx, "B/{year}/{month}/{number}"))

	// written through on update, no store read
	template, err := p.NumberTemplate(ctx)
	require.NoError(t, err)
	require.Equal(t, "B/{year}/{month}/{number}", template)
}

func TestPreferences_Redis_UpdateDuringMiss(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	ctx := context.Background()

	client, err := cache.Connect(ctx, addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.FlushDB(ctx).Err())

	ctrl := gomock.NewController(t)
	store := mocks.NewMockPreferences(ctrl)
	p := cache.NewPreferences(store, client, time.Minute)

	// the template changes after the reader loaded the old one from the store
	store.EXPECT().NumberTemplate(gomock.Any()).DoAndReturn(func(ctx context.Context) (string, error) {
		require.NoError(t, p.SetNumberTemplate(ctx, "B/{year}/{month}/{number}"))
		return "A/{year}/{month}/{number}", nil
	})
	store.EXPECT().SetNumberTemplate(gomock.Any(), "B/{year}/{month}/{number}").Return(nil)

	template, err := p.NumberTemplate(ctx)
	require.NoError(t, err)
	require.Equal(t, "A/{year}/{month}/{number}", template)

	cached, err := client.Get(ctx, "preferences:invoice_number_format").Result()
	require.NoError(t, err)
	require.Equal(t, "B/{year}/{month}/{number}", cached)
}
