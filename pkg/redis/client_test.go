package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lumastudio/storefront/pkg/config"
	"github.com/redis/go-redis/v9"
)

func TestStateLifecycle(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	if _, found, err := client.LoadState(ctx, "furniture-cart"); err != nil || found {
		t.Fatalf("expected missing state, found=%v err=%v", found, err)
	}

	if err := client.SaveState(ctx, "furniture-cart", []byte(`{"items":[]}`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, ok := mock.data["sf:state:furniture-cart"]; !ok {
		t.Fatalf("expected namespaced key to be written, got %v", mock.data)
	}

	blob, found, err := client.LoadState(ctx, "furniture-cart")
	if err != nil || !found {
		t.Fatalf("load failed: found=%v err=%v", found, err)
	}
	if string(blob) != `{"items":[]}` {
		t.Fatalf("unexpected blob %q", blob)
	}

	if err := client.DeleteState(ctx, "furniture-cart"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found, _ := client.LoadState(ctx, "furniture-cart"); found {
		t.Fatalf("expected state removed")
	}
}

func TestLoadStatePropagatesErrors(t *testing.T) {
	mock := newMockCmdable()
	mock.getErr = errors.New("connection reset")
	client := &Client{store: mock}

	if _, _, err := client.LoadState(context.Background(), "furniture-orders"); err == nil {
		t.Fatalf("expected error to propagate")
	}
}

func TestUninitializedClient(t *testing.T) {
	client := &Client{}
	if err := client.Ping(context.Background()); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if err := client.SaveState(context.Background(), "k", nil); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close on nil raw should be a no-op, got %v", err)
	}
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.StateKey("furniture-theme"); got != "sf:state:furniture-theme" {
		t.Fatalf("unexpected state key %s", got)
	}
	if got := client.buildKey("state", "", "x"); got != "sf:state:x" {
		t.Fatalf("empty parts should be skipped, got %s", got)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatalf("expected error without url or address")
	}

	opts, err := optionsFromConfig(config.RedisConfig{Address: "localhost:6379", DB: 2, PoolSize: 4, DialTimeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" || opts.DB != 2 || opts.PoolSize != 4 || opts.DialTimeout != time.Second {
		t.Fatalf("unexpected options %+v", opts)
	}

	opts, err = optionsFromConfig(config.RedisConfig{URL: "redis://:secret@cache:6380/3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "cache:6380" || opts.DB != 3 || opts.Password != "secret" {
		t.Fatalf("unexpected options from url %+v", opts)
	}

	if _, err := optionsFromConfig(config.RedisConfig{URL: "://bad"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

type mockCmdable struct {
	data   map[string]string
	getErr error
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{data: make(map[string]string)}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.getErr != nil {
		return redis.NewStringResult("", m.getErr)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
