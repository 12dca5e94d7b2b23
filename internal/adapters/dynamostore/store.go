// Package dynamostore keeps documents in a single DynamoDB table keyed by
// collection (PK) and time-ordered document id (SK).
package dynamostore

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/freedaiy/intake/internal/adapters/docfilter"
	"github.com/freedaiy/intake/internal/app/ports"
)

const (
	defaultTable     = "freedaiy-intake"
	collectionPrefix = "COLLECTION#"
	collectionsPK    = "COLLECTIONS"
)

// Client is the subset of the DynamoDB API the store calls.
type Client interface {
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Item is one row of the documents table.
type Item struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Data      string `dynamodbav:"Data,omitempty"`
	Timestamp string `dynamodbav:"Timestamp"`
}

// Store is a DynamoDB-backed document backend.
type Store struct {
	client Client
	table  string
}

// Open builds a client from a dynamodb://<region>?endpoint=<url> address
// and verifies the table exists.
func Open(ctx context.Context, rawURL, table string) (*Store, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse dynamodb url: %w", err)
	}
	region := parsed.Host
	if region == "" {
		return nil, fmt.Errorf("dynamodb url %q has no region", rawURL)
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	endpoint := parsed.Query().Get("endpoint")
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	store := New(client, table)
	if err := store.Ping(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// New wraps an existing client. Empty table means "freedaiy-intake".
func New(client Client, table string) *Store {
	table = strings.TrimSpace(table)
	if table == "" {
		table = defaultTable
	}
	return &Store{client: client, table: table}
}

func (s *Store) Name() string {
	return "dynamodb"
}

// Insert writes the document and its collection marker in one transaction.
func (s *Store) Insert(ctx context.Context, collection string, body []byte) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	doc, err := attributevalue.MarshalMap(Item{
		PK:        collectionPrefix + collection,
		SK:        id.String(),
		Data:      string(body),
		Timestamp: now,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling item: %w", err)
	}
	marker, err := attributevalue.MarshalMap(Item{PK: collectionsPK, SK: collection, Timestamp: now})
	if err != nil {
		return "", fmt.Errorf("marshaling collection marker: %w", err)
	}

	_, err = s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(s.table), Item: doc}},
			{Put: &types.Put{TableName: aws.String(s.table), Item: marker}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("writing item to DynamoDB: %w", err)
	}
	return id.String(), nil
}

func (s *Store) Find(ctx context.Context, collection string, filter map[string]string, limit int) ([][]byte, error) {
	var bodies [][]byte
	err := s.queryPartition(ctx, collectionPrefix+collection, func(item Item) bool {
		body := []byte(item.Data)
		if !docfilter.Matches(body, filter) {
			return true
		}
		bodies = append(bodies, body)
		return limit <= 0 || len(bodies) < limit
	})
	if err != nil {
		return nil, err
	}
	return bodies, nil
}

// queryPartition pages through one partition in sort-key order until visit
// returns false or the partition is exhausted.
func (s *Store) queryPartition(ctx context.Context, pk string, visit func(Item) bool) error {
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.table),
			KeyConditionExpression: aws.String("PK = :pk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: pk},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return fmt.Errorf("querying DynamoDB: %w", err)
		}
		for _, raw := range out.Items {
			var item Item
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				continue
			}
			if !visit(item) {
				return nil
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.table)})
	if err != nil {
		return fmt.Errorf("describing table %s: %w", s.table, err)
	}
	return nil
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	names := []string{}
	err := s.queryPartition(ctx, collectionsPK, func(item Item) bool {
		names = append(names, item.SK)
		return true
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op; the SDK client holds no connections that need releasing.
func (s *Store) Close() error {
	return nil
}

var _ ports.DocumentBackend = (*Store)(nil)
