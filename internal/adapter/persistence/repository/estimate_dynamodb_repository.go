package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"printhub/internal/domain/entities"
	"printhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "print_estimates"

type estimateItem struct {
	ID          string `dynamodbav:"id"`
	ClientID    string `dynamodbav:"client_id"`
	ProjectID   string `dynamodbav:"project_id,omitempty"`
	QuoteJSON   string `dynamodbav:"estimate_data"`
	Notes       string `dynamodbav:"notes,omitempty"`
	Status      string `dynamodbav:"status"`
	TotalAmount string `dynamodbav:"total_amount"`
	Currency    string `dynamodbav:"currency"`
	ValidUntil  string `dynamodbav:"valid_until"`
	ApprovedAt  string `dynamodbav:"approved_at,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists saved estimates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The quote snapshot is stored as a JSON document; listing filters run as a
// scan with a filter expression, which is acceptable at print-shop volumes.
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func (r *EstimateDynamoRepository) List(ctx context.Context, filter interfaces.EstimateFilter) ([]entities.Estimate, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	var conditions []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.ClientID != "" {
		conditions = append(conditions, "#client_id = :client_id")
		names["#client_id"] = "client_id"
		values[":client_id"] = &types.AttributeValueMemberS{Value: filter.ClientID}
	}
	if filter.ProjectID != "" {
		conditions = append(conditions, "#project_id = :project_id")
		names["#project_id"] = "project_id"
		values[":project_id"] = &types.AttributeValueMemberS{Value: filter.ProjectID}
	}
	if filter.Status != "" {
		conditions = append(conditions, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if len(conditions) > 0 {
		input.FilterExpression = aws.String(strings.Join(conditions, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var estimates []entities.Estimate
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			e, err := fromEstimateItem(it)
			if err != nil {
				return nil, err
			}
			estimates = append(estimates, e)
		}
	}

	// Newest first, matching the original listing order.
	sort.Slice(estimates, func(i, j int) bool {
		return estimates[i].CreatedAt.After(estimates[j].CreatedAt)
	})
	return estimates, nil
}

func (r *EstimateDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus, approvedAt *time.Time) (entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":          "id",
		"#status":      "status",
		"#updated_at":  "updated_at",
		"#approved_at": "approved_at",
	}
	if approvedAt != nil {
		expr += ", #approved_at = :approved_at"
		values[":approved_at"] = &types.AttributeValueMemberS{Value: approvedAt.UTC().Format(time.RFC3339Nano)}
	} else {
		expr += " REMOVE #approved_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	quoteJSON, err := json.Marshal(e.Quote)
	if err != nil {
		return estimateItem{}, err
	}
	it := estimateItem{
		ID:          e.ID,
		ClientID:    e.ClientID,
		ProjectID:   e.ProjectID,
		QuoteJSON:   string(quoteJSON),
		Notes:       e.Notes,
		Status:      string(e.Status),
		TotalAmount: floatToString(e.TotalAmount),
		Currency:    e.Currency,
		ValidUntil:  e.ValidUntil.UTC().Format(time.RFC3339Nano),
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.ApprovedAt != nil {
		it.ApprovedAt = e.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	var quote entities.Quote
	if it.QuoteJSON != "" {
		if err := json.Unmarshal([]byte(it.QuoteJSON), &quote); err != nil {
			return entities.Estimate{}, err
		}
	}
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	totalAmount, _ := strconv.ParseFloat(it.TotalAmount, 64)

	e := entities.Estimate{
		ID:          it.ID,
		ClientID:    it.ClientID,
		ProjectID:   it.ProjectID,
		Quote:       quote,
		Notes:       it.Notes,
		Status:      entities.EstimateStatus(it.Status),
		TotalAmount: totalAmount,
		Currency:    it.Currency,
		ValidUntil:  validUntil,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.ApprovedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.ApprovedAt); err == nil {
			e.ApprovedAt = &ts
		}
	}
	return e, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
