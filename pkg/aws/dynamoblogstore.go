package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	logging "github.com/ipfs/go-log/v2"

	"github.com/solsticeweb/blog-api/pkg/blog"
	"github.com/solsticeweb/blog-api/pkg/store"
	"github.com/solsticeweb/blog-api/pkg/store/blogstore"
)

var log = logging.Logger("aws")

// DynamoBlogStore implements the blogstore.BlogStore interface on dynamodb.
type DynamoBlogStore struct {
	tableName              string
	statusPublishedAtIndex string
	statusCategoryIndex    string
	dynamoDbClient         *dynamodb.Client
}

var _ blogstore.BlogStore = (*DynamoBlogStore)(nil)

// NewDynamoBlogStore returns a BlogStore connected to an AWS DynamoDB table.
func NewDynamoBlogStore(cfg aws.Config, tableName string, statusPublishedAtIndex string, statusCategoryIndex string, opts ...func(*dynamodb.Options)) *DynamoBlogStore {
	return &DynamoBlogStore{
		tableName:              tableName,
		statusPublishedAtIndex: statusPublishedAtIndex,
		statusCategoryIndex:    statusCategoryIndex,
		dynamoDbClient:         dynamodb.NewFromConfig(cfg, opts...),
	}
}

// Put implements blogstore.BlogStore.
func (d *DynamoBlogStore) Put(ctx context.Context, post blog.Post) error {
	item, err := attributevalue.MarshalMap(post)
	if err != nil {
		return fmt.Errorf("serializing item: %w", err)
	}
	_, err = d.dynamoDbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName), Item: item,
	})
	if err != nil {
		return fmt.Errorf("storing item: %w", err)
	}
	return nil
}

// Get implements blogstore.BlogStore.
func (d *DynamoBlogStore) Get(ctx context.Context, id string) (blog.Post, error) {
	response, err := d.dynamoDbClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return blog.Post{}, fmt.Errorf("getting item: %w", err)
	}
	if len(response.Item) == 0 {
		return blog.Post{}, store.ErrNotFound
	}
	var post blog.Post
	if err := attributevalue.UnmarshalMap(response.Item, &post); err != nil {
		return blog.Post{}, fmt.Errorf("parsing item: %w", err)
	}
	return post, nil
}

// List implements blogstore.BlogStore. Posts come from the status index (or
// the composite status/category index), newest first. If the index query
// fails the lookup falls back to a table scan with an equivalent filter.
func (d *DynamoBlogStore) List(ctx context.Context, q blogstore.Query) (blogstore.Page, error) {
	indexName := d.statusPublishedAtIndex
	keyEx := expression.Key("status").Equal(expression.Value(q.Status))
	if q.Category != "" {
		indexName = d.statusCategoryIndex
		keyEx = keyEx.And(expression.Key("category").Equal(expression.Value(q.Category)))
	}
	expr, err := expression.NewBuilder().WithKeyCondition(keyEx).Build()
	if err != nil {
		return blogstore.Page{}, fmt.Errorf("building query: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(d.tableName),
		IndexName:                 aws.String(indexName),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		KeyConditionExpression:    expr.KeyCondition(),
		ScanIndexForward:          aws.Bool(false),
	}
	if q.Limit > 0 {
		input.Limit = aws.Int32(q.Limit)
	}
	if q.Cursor != "" {
		startKey, err := decodeCursor(q.Cursor)
		if err != nil {
			log.Warnf("invalid continuation token %q: %s", q.Cursor, err)
		} else {
			input.ExclusiveStartKey = startKey
		}
	}

	response, err := d.dynamoDbClient.Query(ctx, input)
	if err != nil {
		log.Warnf("index %s query failed, falling back to scan: %s", indexName, err)
		return d.scanList(ctx, q)
	}

	var posts []blog.Post
	if err := attributevalue.UnmarshalListOfMaps(response.Items, &posts); err != nil {
		return blogstore.Page{}, fmt.Errorf("parsing query response: %w", err)
	}
	var cursor string
	if len(response.LastEvaluatedKey) > 0 {
		cursor, err = encodeCursor(response.LastEvaluatedKey)
		if err != nil {
			return blogstore.Page{}, fmt.Errorf("serializing continuation token: %w", err)
		}
	}
	return blogstore.Page{Posts: posts, Cursor: cursor}, nil
}

// scanList is the query fallback, e.g. while an index is still backfilling.
// Results are unordered and unpaginated.
func (d *DynamoBlogStore) scanList(ctx context.Context, q blogstore.Query) (blogstore.Page, error) {
	filter := expression.Name("status").Equal(expression.Value(q.Status))
	if q.Category != "" {
		filter = filter.And(expression.Name("category").Equal(expression.Value(q.Category)))
	}
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return blogstore.Page{}, fmt.Errorf("building scan filter: %w", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(d.tableName),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		FilterExpression:          expr.Filter(),
	}
	if q.Limit > 0 {
		input.Limit = aws.Int32(q.Limit)
	}
	response, err := d.dynamoDbClient.Scan(ctx, input)
	if err != nil {
		return blogstore.Page{}, fmt.Errorf("scanning table: %w", err)
	}
	var posts []blog.Post
	if err := attributevalue.UnmarshalListOfMaps(response.Items, &posts); err != nil {
		return blogstore.Page{}, fmt.Errorf("parsing scan response: %w", err)
	}
	return blogstore.Page{Posts: posts}, nil
}

// Search implements blogstore.BlogStore. The contains filter is case
// sensitive; dynamodb has no lower() function.
func (d *DynamoBlogStore) Search(ctx context.Context, term string, limit int32) ([]blog.Post, error) {
	filter := expression.Name("status").Equal(expression.Value(blog.StatusPublished)).
		And(expression.Name("title").Contains(term).
			Or(expression.Name("contentSummary").Contains(term)).
			Or(expression.Name("htmlContent").Contains(term)))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("building scan filter: %w", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(d.tableName),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		FilterExpression:          expr.Filter(),
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}
	response, err := d.dynamoDbClient.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("scanning table: %w", err)
	}
	var posts []blog.Post
	if err := attributevalue.UnmarshalListOfMaps(response.Items, &posts); err != nil {
		return nil, fmt.Errorf("parsing scan response: %w", err)
	}
	return posts, nil
}

// Continuation tokens are the table's LastEvaluatedKey serialized to JSON.
// Every key attribute in this schema is a string.
func encodeCursor(lastEvaluatedKey map[string]types.AttributeValue) (string, error) {
	var key map[string]string
	if err := attributevalue.UnmarshalMap(lastEvaluatedKey, &key); err != nil {
		return "", err
	}
	data, err := json.Marshal(key)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeCursor(cursor string) (map[string]types.AttributeValue, error) {
	var key map[string]string
	if err := json.Unmarshal([]byte(cursor), &key); err != nil {
		return nil, err
	}
	return attributevalue.MarshalMap(key)
}
