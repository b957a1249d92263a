package dynamo

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"

	"items-api/internal/models"
	"items-api/internal/repositories"
)

// ItemRepository implements repositories.ItemRepository against a DynamoDB
// table whose hash key is the string attribute "id".
type ItemRepository struct {
	client DynamoDBAPI
	table  string
	logger *logrus.Logger
}

// NewItemRepository creates a new DynamoDB-backed item repository
func NewItemRepository(client DynamoDBAPI, table string, logger *logrus.Logger) *ItemRepository {
	return &ItemRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// Get fetches a single item by id. A missing row returns (nil, nil).
func (r *ItemRepository) Get(ctx context.Context, id string) (repositories.Record, error) {
	if id == "" {
		return nil, repositories.ErrInvalidID
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       itemKey(id),
	})
	if err != nil {
		return nil, &repositories.RepositoryError{Op: "get", ID: id, Err: err}
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	return decodeRecord(out.Item), nil
}

// List returns every item in the table, following LastEvaluatedKey
// continuations until the scan is exhausted. Result order is unspecified.
func (r *ItemRepository) List(ctx context.Context) ([]repositories.Record, error) {
	records := []repositories.Record{}
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, &repositories.RepositoryError{Op: "list", Err: err}
		}

		for _, item := range out.Items {
			records = append(records, decodeRecord(item))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return records, nil
}

// Create writes the item if and only if no row with the same id exists.
// Returns repositories.ErrDuplicateID when the conditional write fails.
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	attrs, err := attributevalue.MarshalMap(item)
	if err != nil {
		return &repositories.RepositoryError{Op: "create", ID: item.ID, Err: err}
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                attrs,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return repositories.ErrDuplicateID
		}
		return &repositories.RepositoryError{Op: "create", ID: item.ID, Err: err}
	}

	r.logger.WithFields(logrus.Fields{"table": r.table, "id": item.ID}).Debug("Item created")
	return nil
}

// Update applies a partial SET over the given fields. A nil field value stores
// an explicit NULL attribute; absent keys are left untouched. The id attribute
// itself is never updated.
func (r *ItemRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if id == "" {
		return repositories.ErrInvalidID
	}
	if len(fields) == 0 {
		return &repositories.RepositoryError{Op: "update", ID: id, Err: errors.New("empty field set")}
	}

	var update expression.UpdateBuilder
	for name, value := range fields {
		update = update.Set(expression.Name(name), expression.Value(value))
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return &repositories.RepositoryError{Op: "update", ID: id, Err: err}
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       itemKey(id),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return &repositories.RepositoryError{Op: "update", ID: id, Err: err}
	}

	r.logger.WithFields(logrus.Fields{"table": r.table, "id": id}).Debug("Item updated")
	return nil
}

// Delete removes the item by id. Deleting a non-existent id is not an error.
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return repositories.ErrInvalidID
	}

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       itemKey(id),
	})
	if err != nil {
		return &repositories.RepositoryError{Op: "delete", ID: id, Err: err}
	}

	r.logger.WithFields(logrus.Fields{"table": r.table, "id": id}).Debug("Item deleted")
	return nil
}

func itemKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
