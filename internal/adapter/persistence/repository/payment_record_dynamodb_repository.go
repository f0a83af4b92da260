package repository

import (
	"context"
	"time"

	"filtros_store/internal/domain/entities"
	"filtros_store/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsOrderIDIndex     = "order_id-index"
)

type paymentRecordItem struct {
	ID                string  `dynamodbav:"id"`
	OrderID           string  `dynamodbav:"order_id"`
	Status            string  `dynamodbav:"status"`
	StatusDetail      string  `dynamodbav:"status_detail,omitempty"`
	PaymentMethod     string  `dynamodbav:"payment_method,omitempty"`
	PaymentType       string  `dynamodbav:"payment_type,omitempty"`
	TransactionAmount float64 `dynamodbav:"transaction_amount"`
	PaidAt            string  `dynamodbav:"paid_at"`
}

// PaymentRecordDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type PaymentRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb *dynamodb.Client) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentRecordDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(p))
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	// Webhook redeliveries reuse the gateway payment id; overwriting the same
	// item keeps the write idempotent.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.PaymentRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentRecordItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromPaymentRecordItem(it))
	}
	return records, nil
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:                p.ID,
		OrderID:           p.OrderID,
		Status:            p.Status,
		StatusDetail:      p.StatusDetail,
		PaymentMethod:     p.PaymentMethod,
		PaymentType:       p.PaymentType,
		TransactionAmount: p.TransactionAmount,
		PaidAt:            p.PaidAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	paidAt, _ := time.Parse(time.RFC3339Nano, it.PaidAt)
	return entities.PaymentRecord{
		ID:                it.ID,
		OrderID:           it.OrderID,
		Status:            it.Status,
		StatusDetail:      it.StatusDetail,
		PaymentMethod:     it.PaymentMethod,
		PaymentType:       it.PaymentType,
		TransactionAmount: it.TransactionAmount,
		PaidAt:            paidAt,
	}
}
