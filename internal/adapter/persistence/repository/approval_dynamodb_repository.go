package repository

import (
	"context"

	"locaequip/internal/domain/entities"
	"locaequip/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ApprovalDynamoRepository runs the budget-approval write: one transaction
// that puts the new rental and deletes the source budget. Listings therefore
// never observe the budget and its rental at the same time, and a budget that
// vanished concurrently fails the whole transaction.
type ApprovalDynamoRepository struct {
	ddb          *dynamodb.Client
	budgetsTable string
	rentalsTable string
}

var _ interfaces.IApprovalRepository = (*ApprovalDynamoRepository)(nil)

func NewApprovalDynamoRepository(ddb *dynamodb.Client) *ApprovalDynamoRepository {
	return &ApprovalDynamoRepository{
		ddb:          ddb,
		budgetsTable: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
		rentalsTable: getenvDefault("RENTALS_TABLE", defaultRentalsTableName),
	}
}

func (r *ApprovalDynamoRepository) PromoteToRental(ctx context.Context, budgetID string, rental entities.Rental) error {
	av, err := attributevalue.MarshalMap(toRentalItem(rental))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.rentalsTable),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.budgetsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: budgetID},
					},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	return err
}
