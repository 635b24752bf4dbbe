package repository

import (
	"context"
	"errors"

	"locaequip/internal/domain/entities"
	"locaequip/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEquipmentsTableName = "equipments"
	equipmentsNameIndex        = "name-index"
)

type equipmentItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Category    string `dynamodbav:"category,omitempty"`
	Description string `dynamodbav:"description,omitempty"`
	DailyRate   string `dynamodbav:"daily_rate"`
	Stock       int    `dynamodbav:"stock"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// EquipmentDynamoRepository persists Equipment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name-index (PK: name), used by the availability check which
//     resolves equipment by its catalog name.
type EquipmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEquipmentRepository = (*EquipmentDynamoRepository)(nil)

func NewEquipmentDynamoRepository(ddb *dynamodb.Client) *EquipmentDynamoRepository {
	return &EquipmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EQUIPMENTS_TABLE", defaultEquipmentsTableName),
	}
}

func (r *EquipmentDynamoRepository) List(ctx context.Context) ([]entities.Equipment, error) {
	var equipments []entities.Equipment
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []equipmentItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			equipments = append(equipments, fromEquipmentItem(it))
		}
	}
	return equipments, nil
}

func (r *EquipmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Equipment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Equipment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Equipment{}, nil
	}

	var it equipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Equipment{}, err
	}
	return fromEquipmentItem(it), nil
}

// GetByName resolves an equipment by its exact catalog name through the
// name-index GSI. Unknown names yield a zero equipment, not an error.
func (r *EquipmentDynamoRepository) GetByName(ctx context.Context, name string) (entities.Equipment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(equipmentsNameIndex),
		KeyConditionExpression: aws.String("#name = :name"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Equipment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Equipment{}, nil
	}

	var it equipmentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Equipment{}, err
	}
	return fromEquipmentItem(it), nil
}

func (r *EquipmentDynamoRepository) Create(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	av, err := attributevalue.MarshalMap(toEquipmentItem(e))
	if err != nil {
		return entities.Equipment{}, err
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
		return entities.Equipment{}, err
	}
	return e, nil
}

func (r *EquipmentDynamoRepository) Update(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	av, err := attributevalue.MarshalMap(toEquipmentItem(e))
	if err != nil {
		return entities.Equipment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Equipment{}, nil
		}
		return entities.Equipment{}, err
	}
	return e, nil
}

func (r *EquipmentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toEquipmentItem(e entities.Equipment) equipmentItem {
	return equipmentItem{
		ID:          e.ID,
		Name:        e.Name,
		Category:    e.Category,
		Description: e.Description,
		DailyRate:   floatToString(e.DailyRate),
		Stock:       e.Stock,
		Status:      string(e.Status),
		CreatedAt:   formatTimestamp(e.CreatedAt),
		UpdatedAt:   formatTimestamp(e.UpdatedAt),
	}
}

func fromEquipmentItem(it equipmentItem) entities.Equipment {
	return entities.Equipment{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		Description: it.Description,
		DailyRate:   stringToFloat(it.DailyRate),
		Stock:       it.Stock,
		Status:      entities.EquipmentStatus(it.Status),
		CreatedAt:   parseTimestamp(it.CreatedAt),
		UpdatedAt:   parseTimestamp(it.UpdatedAt),
	}
}
