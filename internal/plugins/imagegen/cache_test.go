package imagegen

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisCache(rdb), mr
}

func TestRedisCache_RoundTripAndExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	want := &UpstreamResult{StatusCode: 200, ContentType: "image/png", Body: []byte{0x89, 'P', 'N', 'G'}}
	if err := cache.Set(ctx, "abc", want, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !mr.Exists(cacheKeyPrefix + "abc") {
		t.Fatal("expected namespaced key in redis")
	}

	got, err := cache.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ContentType != "image/png" || string(got.Body) != string(want.Body) {
		t.Errorf("unexpected cached value %+v", got)
	}

	mr.FastForward(2 * time.Hour)
	got, err = cache.Get(ctx, "abc")
	if err != nil || got != nil {
		t.Errorf("expected expired entry to miss, got %+v, %v", got, err)
	}
}

func TestRedisCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.Get(context.Background(), "missing")
	if err != nil || got != nil {
		t.Errorf("expected clean miss, got %+v, %v", got, err)
	}
}

func TestRedisCache_CorruptValue(t *testing.T) {
	cache, mr := newTestCache(t)
	_ = mr.Set(cacheKeyPrefix+"bad", "not json")

	if _, err := cache.Get(context.Background(), "bad"); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestRedisCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	if _, err := cache.Get(context.Background(), "abc"); err == nil {
		t.Fatal("expected error when redis is down")
	}
}
