package store

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
)

//go:generate mockgen -destination mock_client_test.go -package store github.com/spacetalk/lambda-spacetalk/pkg/store Client

// Table suffixes appended to the configured prefix.
const (
	UsersTable    = "users"
	FamiliesTable = "families"
	RoutesTable   = "routes"
)

// Secondary indexes used by the services.
const (
	EmailIndex  = "email-index"
	UserIDIndex = "userId-index"
)

var errNoAssignments = errors.New("update requires at least one assignment")

// TableName renders the physical table name for the given prefix.
func TableName(prefix string, table string) string {
	return prefix + "-" + table
}

// Client is the subset of the DynamoDB API used by the store. It is
// satisfied by *dynamodb.Client.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoDB implements domain.RecordStore on top of a DynamoDB client.
type DynamoDB struct {
	Client Client
}

// NewFromConfig binds a store to a client built from the shared AWS
// configuration.
func NewFromConfig(cfg aws.Config) *DynamoDB {
	return &DynamoDB{Client: dynamodb.NewFromConfig(cfg)}
}

func storeErr(op string, table string, err error) error {
	return &domain.StoreError{Op: op, Table: table, Err: err}
}

func marshalKey(key domain.Key) map[string]types.AttributeValue {
	k := make(map[string]types.AttributeValue, len(key))
	for name, value := range key {
		k[name] = &types.AttributeValueMemberS{Value: value}
	}
	return k
}

// Get loads a single record into out.
func (s *DynamoDB) Get(ctx context.Context, table string, key domain.Key, out interface{}) (bool, error) {
	res, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       marshalKey(key),
	})
	if err != nil {
		return false, storeErr("get", table, err)
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, storeErr("get", table, err)
	}
	return true, nil
}

// Put writes the whole record, replacing any existing one with the same key.
func (s *DynamoDB) Put(ctx context.Context, table string, item interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return storeErr("put", table, err)
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	if err != nil {
		return storeErr("put", table, err)
	}
	return nil
}

// Update applies the assignments as a single SET expression.
func (s *DynamoDB) Update(ctx context.Context, table string, key domain.Key, set []domain.Assignment) error {
	if len(set) == 0 {
		return storeErr("update", table, errNoAssignments)
	}
	update := expression.Set(expression.Name(set[0].Field), expression.Value(set[0].Value))
	for _, a := range set[1:] {
		update = update.Set(expression.Name(a.Field), expression.Value(a.Value))
	}
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return storeErr("update", table, err)
	}
	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       marshalKey(key),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return storeErr("update", table, err)
	}
	return nil
}

// Delete removes a record. Deleting a missing record is not an error.
func (s *DynamoDB) Delete(ctx context.Context, table string, key domain.Key) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       marshalKey(key),
	})
	if err != nil {
		return storeErr("delete", table, err)
	}
	return nil
}

// Query collects every page of an equality key query.
func (s *DynamoDB) Query(ctx context.Context, table string, index string, cond domain.Condition, out interface{}) error {
	keyCond := expression.Key(cond.Attribute).Equal(expression.Value(cond.Value))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return storeErr("query", table, err)
	}
	input := &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	if index != "" {
		input.IndexName = aws.String(index)
	}
	var items []map[string]types.AttributeValue
	pages := dynamodb.NewQueryPaginator(s.Client, input)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return storeErr("query", table, err)
		}
		items = append(items, page.Items...)
	}
	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return storeErr("query", table, err)
	}
	return nil
}

// Scan collects every page of a table scan filtered by all conditions.
func (s *DynamoDB) Scan(ctx context.Context, table string, filters []domain.Condition, out interface{}) error {
	input := &dynamodb.ScanInput{TableName: aws.String(table)}
	if len(filters) > 0 {
		conds := make([]expression.ConditionBuilder, 0, len(filters))
		for _, f := range filters {
			conds = append(conds, expression.Name(f.Attribute).Equal(expression.Value(f.Value)))
		}
		filter := conds[0]
		if len(conds) > 1 {
			filter = expression.And(conds[0], conds[1], conds[2:]...)
		}
		expr, err := expression.NewBuilder().WithFilter(filter).Build()
		if err != nil {
			return storeErr("scan", table, err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}
	var items []map[string]types.AttributeValue
	pages := dynamodb.NewScanPaginator(s.Client, input)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return storeErr("scan", table, err)
		}
		items = append(items, page.Items...)
	}
	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return storeErr("scan", table, err)
	}
	return nil
}
