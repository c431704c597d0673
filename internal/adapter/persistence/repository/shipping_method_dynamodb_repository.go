package repository

import (
	"context"

	"klarna_checkout/internal/domain/entities"
	"klarna_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultShippingMethodsTableName = "shipping_methods"
	shippingMethodsMarketIndex      = "market_id-index"
)

type shippingMethodItem struct {
	ID          string `dynamodbav:"id"`
	MarketID    string `dynamodbav:"market_id"`
	DisplayName string `dynamodbav:"display_name"`
	Description string `dynamodbav:"description,omitempty"`
	BasePrice   string `dynamodbav:"base_price"`
	IsDefault   bool   `dynamodbav:"is_default"`
}

// ShippingMethodDynamoRepository lists ShippingMethod records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: market_id-index (PK: market_id)
type ShippingMethodDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IShippingMethodRepository = (*ShippingMethodDynamoRepository)(nil)

func NewShippingMethodDynamoRepository(ddb *dynamodb.Client) *ShippingMethodDynamoRepository {
	return &ShippingMethodDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHIPPING_METHODS_TABLE", defaultShippingMethodsTableName),
	}
}

func (r *ShippingMethodDynamoRepository) ListByMarket(ctx context.Context, marketID string) ([]entities.ShippingMethod, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(shippingMethodsMarketIndex),
		KeyConditionExpression: aws.String("market_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: marketID},
		},
	})
	if err != nil {
		return nil, err
	}

	methods := make([]entities.ShippingMethod, 0, len(out.Items))
	for _, raw := range out.Items {
		var it shippingMethodItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		price, _ := decimal.NewFromString(it.BasePrice)
		methods = append(methods, entities.ShippingMethod{
			ID:          it.ID,
			MarketID:    it.MarketID,
			DisplayName: it.DisplayName,
			Description: it.Description,
			BasePrice:   price,
			IsDefault:   it.IsDefault,
		})
	}
	return methods, nil
}
