package repository

import (
	"context"
	"errors"
	"fmt"

	"locaequip/internal/domain/entities"
	"locaequip/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBudgetsTableName = "budgets"

type budgetLineItem struct {
	ID            string `dynamodbav:"id"`
	EquipmentName string `dynamodbav:"equipment_name"`
	Quantity      int    `dynamodbav:"quantity"`
	DailyRate     string `dynamodbav:"daily_rate"`
	Days          int    `dynamodbav:"days"`
	Total         string `dynamodbav:"total"`
}

type budgetItem struct {
	ID                   string           `dynamodbav:"id"`
	Number               string           `dynamodbav:"number"`
	ClientID             string           `dynamodbav:"client_id"`
	ClientName           string           `dynamodbav:"client_name"`
	StartDate            string           `dynamodbav:"start_date"`
	EndDate              string           `dynamodbav:"end_date"`
	InstallationTime     string           `dynamodbav:"installation_time,omitempty"`
	RemovalTime          string           `dynamodbav:"removal_time,omitempty"`
	InstallationLocation string           `dynamodbav:"installation_location,omitempty"`
	Items                []budgetLineItem `dynamodbav:"items"`
	Subtotal             string           `dynamodbav:"subtotal"`
	Discount             string           `dynamodbav:"discount"`
	TotalValue           string           `dynamodbav:"total_value"`
	Status               string           `dynamodbav:"status"`
	Observations         string           `dynamodbav:"observations,omitempty"`
	CreatedAt            string           `dynamodbav:"created_at"`
	UpdatedAt            string           `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) List(ctx context.Context) ([]entities.Budget, error) {
	var budgets []entities.Budget
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []budgetItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			budgets = append(budgets, fromBudgetItem(it))
		}
	}
	return budgets, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
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
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

// ListNumbersByYear scans only the number attribute of budgets issued in the
// given year. The sequence generator takes the max over this projection.
func (r *BudgetDynamoRepository) ListNumbersByYear(ctx context.Context, year int) ([]string, error) {
	prefix := fmt.Sprintf("ORC-%d-", year)

	var numbers []string
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("#number"),
		FilterExpression:     aws.String("begins_with(#number, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: prefix},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			var projected struct {
				Number string `dynamodbav:"number"`
			}
			if err := attributevalue.UnmarshalMap(item, &projected); err != nil {
				return nil, err
			}
			numbers = append(numbers, projected.Number)
		}
	}
	return numbers, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	items := make([]budgetLineItem, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, budgetLineItem{
			ID:            it.ID,
			EquipmentName: it.EquipmentName,
			Quantity:      it.Quantity,
			DailyRate:     floatToString(it.DailyRate),
			Days:          it.Days,
			Total:         floatToString(it.Total),
		})
	}
	return budgetItem{
		ID:                   b.ID,
		Number:               b.Number,
		ClientID:             b.ClientID,
		ClientName:           b.ClientName,
		StartDate:            formatDate(b.StartDate),
		EndDate:              formatDate(b.EndDate),
		InstallationTime:     b.InstallationTime,
		RemovalTime:          b.RemovalTime,
		InstallationLocation: b.InstallationLocation,
		Items:                items,
		Subtotal:             floatToString(b.Subtotal),
		Discount:             floatToString(b.Discount),
		TotalValue:           floatToString(b.TotalValue),
		Status:               string(b.Status),
		Observations:         b.Observations,
		CreatedAt:            formatTimestamp(b.CreatedAt),
		UpdatedAt:            formatTimestamp(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	items := make([]entities.BudgetItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.BudgetItem{
			ID:            line.ID,
			EquipmentName: line.EquipmentName,
			Quantity:      line.Quantity,
			DailyRate:     stringToFloat(line.DailyRate),
			Days:          line.Days,
			Total:         stringToFloat(line.Total),
		})
	}
	return entities.Budget{
		ID:                   it.ID,
		Number:               it.Number,
		ClientID:             it.ClientID,
		ClientName:           it.ClientName,
		StartDate:            parseDate(it.StartDate),
		EndDate:              parseDate(it.EndDate),
		InstallationTime:     it.InstallationTime,
		RemovalTime:          it.RemovalTime,
		InstallationLocation: it.InstallationLocation,
		Items:                items,
		Subtotal:             stringToFloat(it.Subtotal),
		Discount:             stringToFloat(it.Discount),
		TotalValue:           stringToFloat(it.TotalValue),
		Status:               entities.BudgetStatus(it.Status),
		Observations:         it.Observations,
		CreatedAt:            parseTimestamp(it.CreatedAt),
		UpdatedAt:            parseTimestamp(it.UpdatedAt),
	}
}
