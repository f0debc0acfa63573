package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("MERCHANT_STORE", "")
		t.Setenv("GATEWAY_HTTP_TIMEOUT", "")
		t.Setenv("AWS_REGION", "")
		t.Setenv("DYNAMODB_ENDPOINT", "")

		cfg := Load()
		if cfg.Server.Port != "8080" {
			t.Fatalf("expected default port, got %q", cfg.Server.Port)
		}
		if cfg.Store.Backend != StoreDynamoDB {
			t.Fatalf("expected dynamodb store, got %q", cfg.Store.Backend)
		}
		if cfg.HTTP.Timeout != 60*time.Second {
			t.Fatalf("expected 60s timeout, got %v", cfg.HTTP.Timeout)
		}
		if cfg.AWS.Region != "us-east-1" || cfg.AWS.Endpoint != "" {
			t.Fatalf("unexpected aws config: %+v", cfg.AWS)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("MERCHANT_STORE", StoreBolt)
		t.Setenv("BOLT_PATH", "/tmp/m.db")
		t.Setenv("GATEWAY_HTTP_TIMEOUT", "5")

		cfg := Load()
		if cfg.Server.Port != "9090" || cfg.Store.Backend != StoreBolt || cfg.Store.BoltPath != "/tmp/m.db" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if cfg.HTTP.Timeout != 5*time.Second {
			t.Fatalf("expected 5s timeout, got %v", cfg.HTTP.Timeout)
		}
	})

	t.Run("invalid timeout keeps default", func(t *testing.T) {
		t.Setenv("GATEWAY_HTTP_TIMEOUT", "soon")
		if got := Load().HTTP.Timeout; got != 60*time.Second {
			t.Fatalf("expected default timeout, got %v", got)
		}
	})
}
