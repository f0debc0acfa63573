package repository

import (
	"context"
	"errors"
	"time"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMerchantsTableName = "merchants"

type merchantItem struct {
	ID          string            `dynamodbav:"id" json:"id"`
	Processor   string            `dynamodbav:"processor" json:"processor"`
	Test        bool              `dynamodbav:"test" json:"test"`
	Credentials map[string]string `dynamodbav:"credentials" json:"credentials"`
	BaseURL     string            `dynamodbav:"base_url,omitempty" json:"base_url,omitempty"`
	CreatedAt   string            `dynamodbav:"created_at" json:"created_at"`
	UpdatedAt   string            `dynamodbav:"updated_at" json:"updated_at"`
}

// dynamoAPI is the subset of *dynamodb.Client the repository uses.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// MerchantDynamoRepository persists MerchantProfile records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type MerchantDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IMerchantRepository = (*MerchantDynamoRepository)(nil)

// NewMerchantDynamoRepository falls back to MERCHANTS_TABLE, then "merchants",
// when tableName is empty.
func NewMerchantDynamoRepository(ddb *dynamodb.Client, tableName string) *MerchantDynamoRepository {
	return newMerchantDynamoRepository(ddb, tableName)
}

func newMerchantDynamoRepository(ddb dynamoAPI, tableName string) *MerchantDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("MERCHANTS_TABLE", defaultMerchantsTableName)
	}
	return &MerchantDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MerchantDynamoRepository) Create(ctx context.Context, m entities.MerchantProfile) (entities.MerchantProfile, error) {
	av, err := attributevalue.MarshalMap(toMerchantItem(m))
	if err != nil {
		return entities.MerchantProfile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MerchantProfile{}, entities.ErrMerchantExists
		}
		return entities.MerchantProfile{}, err
	}
	return m, nil
}

func (r *MerchantDynamoRepository) GetByID(ctx context.Context, id string) (entities.MerchantProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MerchantProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.MerchantProfile{}, nil
	}

	var it merchantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MerchantProfile{}, err
	}
	return fromMerchantItem(it), nil
}

func (r *MerchantDynamoRepository) Put(ctx context.Context, m entities.MerchantProfile) (entities.MerchantProfile, error) {
	av, err := attributevalue.MarshalMap(toMerchantItem(m))
	if err != nil {
		return entities.MerchantProfile{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.MerchantProfile{}, err
	}
	return m, nil
}

func (r *MerchantDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toMerchantItem(m entities.MerchantProfile) merchantItem {
	return merchantItem{
		ID:          m.ID,
		Processor:   m.Processor,
		Test:        m.Test,
		Credentials: m.Credentials,
		BaseURL:     m.BaseURL,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMerchantItem(it merchantItem) entities.MerchantProfile {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.MerchantProfile{
		ID:          it.ID,
		Processor:   it.Processor,
		Test:        it.Test,
		Credentials: it.Credentials,
		BaseURL:     it.BaseURL,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
