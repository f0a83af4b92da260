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

const defaultOrdersTableName = "orders"

type orderItemRecord struct {
	ProductID   string   `dynamodbav:"product_id"`
	Name        string   `dynamodbav:"name"`
	Description string   `dynamodbav:"description,omitempty"`
	Images      []string `dynamodbav:"images,omitempty"`
	Category    string   `dynamodbav:"category,omitempty"`
	Quantity    int      `dynamodbav:"quantity"`
	Price       string   `dynamodbav:"price"`
}

type orderRecord struct {
	ID            string            `dynamodbav:"id"`
	Items         []orderItemRecord `dynamodbav:"items"`
	BuyerName     string            `dynamodbav:"buyer_name,omitempty"`
	BuyerEmail    string            `dynamodbav:"buyer_email,omitempty"`
	BuyerPhone    string            `dynamodbav:"buyer_phone,omitempty"`
	ShipStreet    string            `dynamodbav:"ship_street,omitempty"`
	ShipNumber    string            `dynamodbav:"ship_number,omitempty"`
	ShipZipCode   string            `dynamodbav:"ship_zip_code,omitempty"`
	ShippingPrice string            `dynamodbav:"shipping_price,omitempty"`
	CreatedAt     string            `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderRecord(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func toOrderRecord(o entities.Order) orderRecord {
	items := make([]orderItemRecord, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemRecord{
			ProductID:   it.Product.ID,
			Name:        it.Product.Name,
			Description: it.Product.Description,
			Images:      it.Product.Images,
			Category:    it.Product.Category,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return orderRecord{
		ID:            o.ID,
		Items:         items,
		BuyerName:     o.User.Name,
		BuyerEmail:    o.User.Email,
		BuyerPhone:    o.User.Phone,
		ShipStreet:    o.Shipping.Street,
		ShipNumber:    o.Shipping.Number,
		ShipZipCode:   o.Shipping.ZipCode,
		ShippingPrice: o.ShippingPrice,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderRecord(rec orderRecord) entities.Order {
	items := make([]entities.OrderItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, entities.OrderItem{
			Product: entities.ProductRef{
				ID:          it.ProductID,
				Name:        it.Name,
				Description: it.Description,
				Images:      it.Images,
				Category:    it.Category,
			},
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.Order{
		ID:    rec.ID,
		Items: items,
		User: entities.Buyer{
			Name:  rec.BuyerName,
			Email: rec.BuyerEmail,
			Phone: rec.BuyerPhone,
		},
		Shipping: entities.ShippingAddress{
			Street:  rec.ShipStreet,
			Number:  rec.ShipNumber,
			ZipCode: rec.ShipZipCode,
		},
		ShippingPrice: rec.ShippingPrice,
		CreatedAt:     createdAt,
	}
}
