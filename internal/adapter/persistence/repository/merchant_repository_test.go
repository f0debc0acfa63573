package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/database"
	"merchant_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/jackc/pgconn"
	"github.com/lib/pq"
)

func sampleMerchant(id string) entities.MerchantProfile {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return entities.MerchantProfile{
		ID:          id,
		Processor:   "zeamster",
		Test:        true,
		Credentials: map[string]string{"user_id": "u", "api_key": "k", "developer_id": "d"},
		BaseURL:     "https://sandbox.example.test/v2",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// exerciseRepository runs the shared contract against one backend.
func exerciseRepository(t *testing.T, repo interfaces.IMerchantRepository, id string) {
	t.Helper()
	ctx := context.Background()
	m := sampleMerchant(id)

	if _, err := repo.Create(ctx, m); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, m); !errors.Is(err, entities.ErrMerchantExists) {
		t.Fatalf("expected ErrMerchantExists, got %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != id || got.Processor != m.Processor || !got.Test || got.BaseURL != m.BaseURL {
		t.Fatalf("unexpected merchant: %+v", got)
	}
	if !reflect.DeepEqual(got.Credentials, m.Credentials) || !got.CreatedAt.Equal(m.CreatedAt) {
		t.Fatalf("unexpected merchant: %+v", got)
	}

	m.Credentials = map[string]string{"user_id": "u2", "api_key": "k2", "developer_id": "d2"}
	m.UpdatedAt = m.UpdatedAt.Add(time.Hour)
	if _, err := repo.Put(ctx, m); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, _ = repo.GetByID(ctx, id)
	if got.Credentials["api_key"] != "k2" || !got.UpdatedAt.Equal(m.UpdatedAt) {
		t.Fatalf("put not applied: %+v", got)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	got, err = repo.GetByID(ctx, id)
	if err != nil || got.ID != "" {
		t.Fatalf("expected empty merchant after delete, got %+v (%v)", got, err)
	}
}

func TestMerchantBoltRepository(t *testing.T) {
	db, err := database.OpenBolt(filepath.Join(t.TempDir(), "merchants.db"))
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := NewMerchantBoltRepository(db)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	exerciseRepository(t, repo, "m-bolt")
}

// fakeDynamo stores items in memory and honours the create condition.
type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue
}

func (f *fakeDynamo) key(k map[string]types.AttributeValue) string {
	return k["id"].(*types.AttributeValueMemberS).Value
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	id := f.key(in.Item)
	if in.ConditionExpression != nil {
		if _, ok := f.items[id]; ok {
			return nil, &types.ConditionalCheckFailedException{Message: strPtr("exists")}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[f.key(in.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	delete(f.items, f.key(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func strPtr(s string) *string { return &s }

func TestMerchantDynamoRepository(t *testing.T) {
	t.Setenv("MERCHANTS_TABLE", "")
	repo := newMerchantDynamoRepository(&fakeDynamo{items: map[string]map[string]types.AttributeValue{}}, "")
	if repo.tableName != defaultMerchantsTableName {
		t.Fatalf("expected default table name, got %q", repo.tableName)
	}
	exerciseRepository(t, repo, "m-dynamo")
}

func TestMerchantItemRoundTrip(t *testing.T) {
	m := sampleMerchant("m-1")
	av, err := attributevalue.MarshalMap(toMerchantItem(m))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["credentials"].(*types.AttributeValueMemberM); !ok {
		t.Fatalf("credentials must be stored as a map, got %T", av["credentials"])
	}
}

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{&pq.Error{Code: "23505"}, true},
		{fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{&pq.Error{Code: "23503"}, false},
		{errors.New("boom"), false},
		{nil, false},
	}
	for _, tc := range cases {
		if got := isUniqueViolation(tc.err); got != tc.want {
			t.Fatalf("isUniqueViolation(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestMerchantPostgresRepository(t *testing.T) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN not set; skipping postgres integration test")
	}
	db, err := database.OpenPostgres(context.Background(), dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := NewMerchantPostgresRepository(db)
	if err := repo.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	id := fmt.Sprintf("m-pg-%d", time.Now().UnixNano())
	t.Cleanup(func() { _, _ = db.Exec(`DELETE FROM merchant_profiles WHERE id=$1`, id) })
	exerciseRepository(t, repo, id)
}
