/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"github.com/rs/zerolog"

	"github.com/suparena/gesturerecognizer/catalog"
	"github.com/suparena/gesturerecognizer/errors"
)

// EntityType marks binding items in a shared table.
const EntityType = "Binding"

const (
	putCondition    = "attribute_not_exists(PK)"
	deleteCondition = "attribute_exists(PK)"
)

// API is the subset of the DynamoDB client used by Store.
type API interface {
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
	Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
}

// IndexMap maps key attributes to macro templates over item attributes.
var IndexMap = map[string]string{
	"PK": "RECOGNIZER#{Recognizer}",
	"SK": "BINDING#{Target}#{Action}",
}

// item is the stored form of a catalog.Binding.
type item struct {
	PK         string
	SK         string
	EntityType string
	Recognizer string
	Target     string
	Action     string
	CreatedAt  string `dynamodbav:",omitempty"`
}

// Store is a catalog.Source backed by DynamoDB.
type Store struct {
	client    API
	tableName string
	pageSize  int32
}

// Option configures a Store.
type Option func(*Store)

// WithPageSize sets the Limit used for each Query or Scan page.
func WithPageSize(size int32) Option {
	return func(s *Store) {
		s.pageSize = size
	}
}

// New creates a Store on the given table.
func New(client API, tableName string, opts ...Option) *Store {
	s := &Store{client: client, tableName: tableName, pageSize: 100}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// keyEscaper keeps the # separator unambiguous inside expanded values.
var keyEscaper = strings.NewReplacer("%", "%25", "#", "%23")

// expandMacros fills each template in indexMap with the string attributes of
// keysInput. Substituted values are escaped with keyEscaper.
func expandMacros(indexMap map[string]string, keysInput any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(keysInput)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keysInput: %w", err)
	}

	res := make(map[string]string, len(indexMap))
	for fieldName, template := range indexMap {
		res[fieldName] = macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			key := strings.Trim(macro, "{}")
			switch tv := av[key].(type) {
			case *types.AttributeValueMemberS:
				return keyEscaper.Replace(tv.Value)
			case *types.AttributeValueMemberN:
				return tv.Value
			default:
				return ""
			}
		})
	}
	return res, nil
}

func toItem(b catalog.Binding) (item, error) {
	it := item{
		EntityType: EntityType,
		Recognizer: b.Recognizer,
		Target:     b.Target,
		Action:     b.Action,
	}
	if b.HasCreatedAt() {
		it.CreatedAt = b.CreatedAt.String()
	}

	keys, err := expandMacros(IndexMap, it)
	if err != nil {
		return item{}, err
	}
	it.PK, it.SK = keys["PK"], keys["SK"]
	return it, nil
}

func (it item) binding() (catalog.Binding, error) {
	b := catalog.Binding{Recognizer: it.Recognizer, Target: it.Target, Action: it.Action}
	if it.CreatedAt != "" {
		dt, err := strfmt.ParseDateTime(it.CreatedAt)
		if err != nil {
			return b, fmt.Errorf("invalid CreatedAt on %s/%s: %w", it.PK, it.SK, err)
		}
		b.CreatedAt = dt
	}
	return b, nil
}

func keyOf(it item) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: it.PK},
		"SK": &types.AttributeValueMemberS{Value: it.SK},
	}
}

// Bindings implements catalog.Source. A named recognizer is a single-partition
// Query; an empty name scans the table for binding items.
func (s *Store) Bindings(ctx context.Context, recognizer string) ([]catalog.Binding, error) {
	logger := zerolog.Ctx(ctx)

	var (
		bindings []catalog.Binding
		lastKey  map[string]types.AttributeValue
		page     int
	)
	for {
		items, next, err := s.page(ctx, recognizer, lastKey)
		if err != nil {
			return nil, err
		}
		page++

		var decoded []item
		if err := attributevalue.UnmarshalListOfMaps(items, &decoded); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bindings: %w", err)
		}
		for _, it := range decoded {
			b, err := it.binding()
			if err != nil {
				return nil, err
			}
			bindings = append(bindings, b)
		}
		logger.Trace().Int("page", page).Int("items", len(items)).Msg("Loaded binding page")

		if len(next) == 0 {
			break
		}
		lastKey = next
	}

	logger.Debug().Str("recognizer", recognizer).Int("bindings", len(bindings)).Int("pages", page).Msg("Loaded bindings")
	return bindings, nil
}

func (s *Store) page(ctx context.Context, recognizer string, startKey map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
	if recognizer == "" {
		out, err := s.client.Scan(ctx, &sdk.ScanInput{
			TableName:        &s.tableName,
			FilterExpression: aws.String("EntityType = :type"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":type": &types.AttributeValueMemberS{Value: EntityType},
			},
			ExclusiveStartKey: startKey,
			Limit:             aws.Int32(s.pageSize),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("scan error: %w", err)
		}
		return out.Items, out.LastEvaluatedKey, nil
	}

	keys, err := expandMacros(map[string]string{"PK": IndexMap["PK"]}, item{Recognizer: recognizer})
	if err != nil {
		return nil, nil, err
	}
	out, err := s.client.Query(ctx, &sdk.QueryInput{
		TableName:              &s.tableName,
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: keys["PK"]},
			":sk": &types.AttributeValueMemberS{Value: "BINDING#"},
		},
		ExclusiveStartKey: startKey,
		Limit:             aws.Int32(s.pageSize),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("query error: %w", err)
	}
	return out.Items, out.LastEvaluatedKey, nil
}

// Put stores b. It fails with a ConditionFailedError if the binding is
// already stored.
func (s *Store) Put(ctx context.Context, b catalog.Binding) error {
	if err := b.Validate(); err != nil {
		return err
	}

	it, err := toItem(b)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("failed to marshal binding: %w", err)
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           &s.tableName,
		Item:                av,
		ConditionExpression: aws.String(putCondition),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return errors.NewConditionFailedError("put", putCondition)
		}
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes b. It fails with a NotFoundError if b is not stored.
func (s *Store) Delete(ctx context.Context, b catalog.Binding) error {
	it, err := toItem(b)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:           &s.tableName,
		Key:                 keyOf(it),
		ConditionExpression: aws.String(deleteCondition),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return errors.NewNotFoundError("binding", b.Key())
		}
		return fmt.Errorf("failed to delete binding in DynamoDB: %w", err)
	}
	return nil
}
