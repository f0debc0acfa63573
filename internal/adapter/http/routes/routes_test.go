package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"merchant_gateway/internal/adapter/http/handlers"
	"merchant_gateway/internal/config"

	"github.com/gin-gonic/gin"
)

func TestAddMerchantRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addMerchantRoutes(v1, handlers.NewMerchantHandler(nil, nil), handlers.NewGatewayHandler(nil, nil))

	want := map[string]bool{
		"GET /v1/ping":                                                        false,
		"POST /v1/merchants":                                                  false,
		"GET /v1/merchants/:merchant_id":                                      false,
		"DELETE /v1/merchants/:merchant_id":                                   false,
		"POST /v1/merchants/:merchant_id/purchase":                            false,
		"POST /v1/merchants/:merchant_id/authorize":                           false,
		"POST /v1/merchants/:merchant_id/verify":                              false,
		"POST /v1/merchants/:merchant_id/store":                               false,
		"PUT /v1/merchants/:merchant_id/vault/:vault_id":                      false,
		"DELETE /v1/merchants/:merchant_id/vault/:vault_id":                   false,
		"POST /v1/merchants/:merchant_id/transactions/:authorization/capture": false,
		"POST /v1/merchants/:merchant_id/transactions/:authorization/refund":  false,
		"POST /v1/merchants/:merchant_id/transactions/:authorization/void":    false,
	}
	for _, route := range r.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, found := range want {
		if !found {
			t.Fatalf("route %s not registered", key)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewMerchantRepository(t *testing.T) {
	t.Run("bolt", func(t *testing.T) {
		cfg := &config.Config{Store: config.StoreConfig{Backend: config.StoreBolt, BoltPath: filepath.Join(t.TempDir(), "merchants.db")}}
		repo, err := newMerchantRepository(context.Background(), cfg)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if repo == nil {
			t.Fatalf("expected repository")
		}
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		cfg := &config.Config{Store: config.StoreConfig{Backend: config.StorePostgres}}
		if _, err := newMerchantRepository(context.Background(), cfg); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := &config.Config{Store: config.StoreConfig{Backend: "redis"}}
		if _, err := newMerchantRepository(context.Background(), cfg); err == nil {
			t.Fatalf("expected error")
		}
	})
}
