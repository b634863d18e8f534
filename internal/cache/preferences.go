// Package cache keeps rarely changing preferences in redis in front of postgres.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyNumberTemplate = "preferences:invoice_number_format"

type PreferenceStore interface {
	NumberTemplate(ctx context.Context) (string, error)
	SetNumberTemplate(ctx context.Context, template string) error
}

// Preferences reads through redis. A nil client disables caching and every call
// goes straight to the store.
type Preferences struct {
	store  PreferenceStore
	client *redis.Client
	ttl    time.Duration
}

func NewPreferences(store PreferenceStore, client *redis.Client, ttl time.Duration) *Preferences {
	return &Preferences{
		store:  store,
		client: client,
		ttl:    ttl,
	}
}

// Connect returns a nil client when redis is unreachable so the service can run
// without it.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := client.Ping(ctx).Err()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func (p *Preferences) NumberTemplate(ctx context.Context) (string, error) {
	if p.client == nil {
		return p.store.NumberTemplate(ctx)
	}

	template, err := p.client.Get(ctx, keyNumberTemplate).Result()
	if err == nil {
		return template, nil
	}

	if !errors.Is(err, redis.Nil) {
		slog.WarnContext(ctx, "read cached number template", "error", err)
	}

	template, err = p.store.NumberTemplate(ctx)
	if err != nil {
		return "", err
	}

	// a concurrent SetNumberTemplate may already have cached a newer value
	err = p.client.SetNX(ctx, keyNumberTemplate, template, p.ttl).Err()
	if err != nil {
		slog.WarnContext(ctx, "cache number template", "error", err)
	}

	return template, nil
}

func (p *Preferences) SetNumberTemplate(ctx context.Context, template string) error {
	err := p.store.SetNumberTemplate(ctx, template)
	if err != nil {
		return err
	}

	if p.client == nil {
		return nil
	}

	err = p.client.Set(ctx, keyNumberTemplate, template, p.ttl).Err()
	if err == nil {
		return nil
	}

	slog.WarnContext(ctx, "cache number template", "error", err)

	err = p.client.Del(ctx, keyNumberTemplate).Err()
	if err != nil {
		slog.WarnContext(ctx, "invalidate cached number template", "error", err)
	}

	return nil
}
