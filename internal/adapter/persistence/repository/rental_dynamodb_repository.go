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

const defaultRentalsTableName = "rentals"

type rentalLineItem struct {
	ID            string `dynamodbav:"id"`
	EquipmentName string `dynamodbav:"equipment_name"`
	Quantity      int    `dynamodbav:"quantity"`
	DailyRate     string `dynamodbav:"daily_rate"`
	Days          int    `dynamodbav:"days"`
	Total         string `dynamodbav:"total"`
}

type rentalItem struct {
	ID                   string           `dynamodbav:"id"`
	ClientID             string           `dynamodbav:"client_id"`
	ClientName           string           `dynamodbav:"client_name"`
	StartDate            string           `dynamodbav:"start_date"`
	EndDate              string           `dynamodbav:"end_date"`
	InstallationTime     string           `dynamodbav:"installation_time,omitempty"`
	RemovalTime          string           `dynamodbav:"removal_time,omitempty"`
	InstallationLocation string           `dynamodbav:"installation_location,omitempty"`
	Items                []rentalLineItem `dynamodbav:"items"`
	TotalValue           string           `dynamodbav:"total_value"`
	Discount             string           `dynamodbav:"discount"`
	FinalValue           string           `dynamodbav:"final_value"`
	Status               string           `dynamodbav:"status"`
	Observations         string           `dynamodbav:"observations,omitempty"`
	BudgetID             string           `dynamodbav:"budget_id,omitempty"`
	CreatedAt            string           `dynamodbav:"created_at"`
	UpdatedAt            string           `dynamodbav:"updated_at"`
}

// RentalDynamoRepository persists Rental entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type RentalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRentalRepository = (*RentalDynamoRepository)(nil)

func NewRentalDynamoRepository(ddb *dynamodb.Client) *RentalDynamoRepository {
	return &RentalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RENTALS_TABLE", defaultRentalsTableName),
	}
}

func (r *RentalDynamoRepository) List(ctx context.Context) ([]entities.Rental, error) {
	var rentals []entities.Rental
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []rentalItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			rentals = append(rentals, fromRentalItem(it))
		}
	}
	return rentals, nil
}

func (r *RentalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Rental, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Rental{}, err
	}
	if len(out.Item) == 0 {
		return entities.Rental{}, nil
	}

	var it rentalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Rental{}, err
	}
	return fromRentalItem(it), nil
}

func (r *RentalDynamoRepository) Create(ctx context.Context, rental entities.Rental) (entities.Rental, error) {
	av, err := attributevalue.MarshalMap(toRentalItem(rental))
	if err != nil {
		return entities.Rental{}, err
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
		return entities.Rental{}, err
	}
	return rental, nil
}

func (r *RentalDynamoRepository) Update(ctx context.Context, rental entities.Rental) (entities.Rental, error) {
	av, err := attributevalue.MarshalMap(toRentalItem(rental))
	if err != nil {
		return entities.Rental{}, err
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
			return entities.Rental{}, nil
		}
		return entities.Rental{}, err
	}
	return rental, nil
}

func (r *RentalDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toRentalItem(rental entities.Rental) rentalItem {
	items := make([]rentalLineItem, 0, len(rental.Items))
	for _, it := range rental.Items {
		items = append(items, rentalLineItem{
			ID:            it.ID,
			EquipmentName: it.EquipmentName,
			Quantity:      it.Quantity,
			DailyRate:     floatToString(it.DailyRate),
			Days:          it.Days,
			Total:         floatToString(it.Total),
		})
	}
	return rentalItem{
		ID:                   rental.ID,
		ClientID:             rental.ClientID,
		ClientName:           rental.ClientName,
		StartDate:            formatDate(rental.StartDate),
		EndDate:              formatDate(rental.EndDate),
		InstallationTime:     rental.InstallationTime,
		RemovalTime:          rental.RemovalTime,
		InstallationLocation: rental.InstallationLocation,
		Items:                items,
		TotalValue:           floatToString(rental.TotalValue),
		Discount:             floatToString(rental.Discount),
		FinalValue:           floatToString(rental.FinalValue),
		Status:               string(rental.Status),
		Observations:         rental.Observations,
		BudgetID:             rental.BudgetID,
		CreatedAt:            formatTimestamp(rental.CreatedAt),
		UpdatedAt:            formatTimestamp(rental.UpdatedAt),
	}
}

func fromRentalItem(it rentalItem) entities.Rental {
	items := make([]entities.RentalItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.RentalItem{
			ID:            line.ID,
			EquipmentName: line.EquipmentName,
			Quantity:      line.Quantity,
			DailyRate:     stringToFloat(line.DailyRate),
			Days:          line.Days,
			Total:         stringToFloat(line.Total),
		})
	}
	return entities.Rental{
		ID:                   it.ID,
		ClientID:             it.ClientID,
		ClientName:           it.ClientName,
		StartDate:            parseDate(it.StartDate),
		EndDate:              parseDate(it.EndDate),
		InstallationTime:     it.InstallationTime,
		RemovalTime:          it.RemovalTime,
		InstallationLocation: it.InstallationLocation,
		Items:                items,
		TotalValue:           stringToFloat(it.TotalValue),
		Discount:             stringToFloat(it.Discount),
		FinalValue:           stringToFloat(it.FinalValue),
		Status:               entities.RentalStatus(it.Status),
		Observations:         it.Observations,
		BudgetID:             it.BudgetID,
		CreatedAt:            parseTimestamp(it.CreatedAt),
		UpdatedAt:            parseTimestamp(it.UpdatedAt),
	}
}
