package repository

import (
	"context"
	"fmt"

	"klarna_checkout/internal/domain/entities"
	"klarna_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentMethodsTableName = "payment_methods"

type paymentMethodItem struct {
	PK            string            `dynamodbav:"pk"`
	ID            string            `dynamodbav:"id"`
	SystemKeyword string            `dynamodbav:"system_keyword"`
	Language      string            `dynamodbav:"language"`
	Parameters    map[string]string `dynamodbav:"parameters,omitempty"`
}

// PaymentMethodDynamoRepository resolves PaymentMethod records in DynamoDB.
//
// Table requirements:
//   - PK: pk (string, "<system_keyword>#<language>")
type PaymentMethodDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentMethodRepository = (*PaymentMethodDynamoRepository)(nil)

func NewPaymentMethodDynamoRepository(ddb *dynamodb.Client) *PaymentMethodDynamoRepository {
	return &PaymentMethodDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_METHODS_TABLE", defaultPaymentMethodsTableName),
	}
}

func (r *PaymentMethodDynamoRepository) GetBySystemName(ctx context.Context, systemKeyword, language string) (entities.PaymentMethod, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: fmt.Sprintf("%s#%s", systemKeyword, language)},
		},
	})
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentMethod{}, nil
	}

	var it paymentMethodItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentMethod{}, err
	}
	return entities.PaymentMethod{
		ID:            it.ID,
		SystemKeyword: it.SystemKeyword,
		Language:      it.Language,
		Parameters:    it.Parameters,
	}, nil
}
