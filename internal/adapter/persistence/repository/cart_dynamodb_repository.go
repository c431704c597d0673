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
	defaultCartsTableName = "carts"
	cartsKlarnaOrderIndex = "klarna_order_id-index"
	cartKlarnaOrderIDAttr = "klarna_order_id"
)

type marketItem struct {
	ID        string   `dynamodbav:"id"`
	Countries []string `dynamodbav:"countries,omitempty"`
}

type lineItemItem struct {
	Code        string `dynamodbav:"code"`
	DisplayName string `dynamodbav:"display_name"`
	Quantity    int64  `dynamodbav:"quantity"`
	PlacedPrice string `dynamodbav:"placed_price"`
	TaxRate     string `dynamodbav:"tax_rate"`
}

type cartItem struct {
	ID         string            `dynamodbav:"id"`
	CustomerID string            `dynamodbav:"customer_id,omitempty"`
	Market     marketItem        `dynamodbav:"market"`
	Currency   string            `dynamodbav:"currency"`
	Lines      []lineItemItem    `dynamodbav:"lines,omitempty"`
	Properties map[string]string `dynamodbav:"properties,omitempty"`

	// Mirror of the CheckoutOrderIDField property, lifted to a top-level
	// attribute so the GSI can serve reverse lookups.
	KlarnaOrderID string `dynamodbav:"klarna_order_id,omitempty"`
}

// CartDynamoRepository persists Cart aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: klarna_order_id-index (PK: klarna_order_id)
type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) Save(ctx context.Context, cart entities.Cart) (entities.Cart, error) {
	av, err := attributevalue.MarshalMap(toCartItem(cart))
	if err != nil {
		return entities.Cart{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

func (r *CartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{}, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it), nil
}

// GetByCheckoutOrderID loads the single cart linked to a gateway order id.
// The query retrieves one record; the id is expected to match at most one
// cart.
func (r *CartDynamoRepository) GetByCheckoutOrderID(ctx context.Context, orderID string) (entities.Cart, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(cartsKlarnaOrderIndex),
		KeyConditionExpression: aws.String(cartKlarnaOrderIDAttr + " = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Items) == 0 {
		return entities.Cart{}, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it), nil
}

func toCartItem(cart entities.Cart) cartItem {
	return cartItem{
		ID:            cart.ID,
		CustomerID:    cart.CustomerID,
		Market:        marketItem{ID: cart.Market.ID, Countries: cart.Market.Countries},
		Currency:      cart.Currency,
		Lines:         toLineItemItems(cart.Lines),
		Properties:    cart.Properties,
		KlarnaOrderID: cart.Properties[entities.CheckoutOrderIDField],
	}
}

func fromCartItem(it cartItem) entities.Cart {
	return entities.Cart{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		Market:     entities.Market{ID: it.Market.ID, Countries: it.Market.Countries},
		Currency:   it.Currency,
		Lines:      fromLineItemItems(it.Lines),
		Properties: it.Properties,
	}
}

func toLineItemItems(lines []entities.LineItem) []lineItemItem {
	items := make([]lineItemItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, lineItemItem{
			Code:        l.Code,
			DisplayName: l.DisplayName,
			Quantity:    l.Quantity,
			PlacedPrice: l.PlacedPrice.String(),
			TaxRate:     l.TaxRate.String(),
		})
	}
	return items
}

func fromLineItemItems(items []lineItemItem) []entities.LineItem {
	lines := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		price, _ := decimal.NewFromString(it.PlacedPrice)
		rate, _ := decimal.NewFromString(it.TaxRate)
		lines = append(lines, entities.LineItem{
			Code:        it.Code,
			DisplayName: it.DisplayName,
			Quantity:    it.Quantity,
			PlacedPrice: price,
			TaxRate:     rate,
		})
	}
	return lines
}
