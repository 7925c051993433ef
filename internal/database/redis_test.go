package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/keyxmakerx/cardstudio/internal/config"
)

func TestNewRedis_PingsServer(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedis(context.Background(), config.RedisConfig{URL: "redis://" + mr.Addr()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	if err := Health(context.Background(), nil, client); err != nil {
		t.Errorf("expected healthy redis, got %v", err)
	}
}

func TestNewRedis_BadURL(t *testing.T) {
	if _, err := NewRedis(context.Background(), config.RedisConfig{URL: "not a url"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestHealth_ReportsDownRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedis(context.Background(), config.RedisConfig{URL: "redis://" + mr.Addr()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	mr.Close()

	if err := Health(context.Background(), nil, client); err == nil {
		t.Error("expected health error after redis shut down")
	}
}

func TestHealth_NoStores(t *testing.T) {
	if err := Health(context.Background(), nil, nil); err != nil {
		t.Errorf("expected nil with no stores, got %v", err)
	}
}
