package repository

import (
	"context"
	"strconv"
	"time"

	"klarna_checkout/internal/domain/entities"
	"klarna_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultOrdersTableName  = "orders"
	ordersTrackingIndex     = "tracking_number-index"
	orderTrackingNumberAttr = "tracking_number"
)

type paymentItem struct {
	PaymentMethodID string `dynamodbav:"payment_method_id"`
	Amount          string `dynamodbav:"amount"`
}

type purchaseOrderItem struct {
	OrderNumber    int               `dynamodbav:"order_number"`
	TrackingNumber string            `dynamodbav:"tracking_number,omitempty"`
	CustomerID     string            `dynamodbav:"customer_id,omitempty"`
	Market         marketItem        `dynamodbav:"market"`
	Currency       string            `dynamodbav:"currency"`
	Created        string            `dynamodbav:"created"`
	Lines          []lineItemItem    `dynamodbav:"lines,omitempty"`
	Payments       []paymentItem     `dynamodbav:"payments,omitempty"`
	Properties     map[string]string `dynamodbav:"properties,omitempty"`
}

// PurchaseOrderDynamoRepository persists PurchaseOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: order_number (number)
//   - GSI: tracking_number-index (PK: tracking_number)
type PurchaseOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPurchaseOrderRepository = (*PurchaseOrderDynamoRepository)(nil)

func NewPurchaseOrderDynamoRepository(ddb *dynamodb.Client) *PurchaseOrderDynamoRepository {
	return &PurchaseOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *PurchaseOrderDynamoRepository) GetByOrderNumber(ctx context.Context, orderNumber int) (entities.PurchaseOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberN{Value: strconv.Itoa(orderNumber)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PurchaseOrder{}, nil
	}

	var it purchaseOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromPurchaseOrderItem(it), nil
}

func (r *PurchaseOrderDynamoRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (entities.PurchaseOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersTrackingIndex),
		KeyConditionExpression: aws.String(orderTrackingNumberAttr + " = :tn"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tn": &types.AttributeValueMemberS{Value: trackingNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.PurchaseOrder{}, nil
	}

	var it purchaseOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromPurchaseOrderItem(it), nil
}

func fromPurchaseOrderItem(it purchaseOrderItem) entities.PurchaseOrder {
	created, _ := time.Parse(time.RFC3339Nano, it.Created)

	payments := make([]entities.Payment, 0, len(it.Payments))
	for _, p := range it.Payments {
		amount, _ := decimal.NewFromString(p.Amount)
		payments = append(payments, entities.Payment{
			PaymentMethodID: p.PaymentMethodID,
			Amount:          amount,
		})
	}

	return entities.PurchaseOrder{
		OrderNumber:    it.OrderNumber,
		TrackingNumber: it.TrackingNumber,
		CustomerID:     it.CustomerID,
		Market:         entities.Market{ID: it.Market.ID, Countries: it.Market.Countries},
		Currency:       it.Currency,
		Created:        created,
		Lines:          fromLineItemItems(it.Lines),
		Payments:       payments,
		Properties:     it.Properties,
	}
}
