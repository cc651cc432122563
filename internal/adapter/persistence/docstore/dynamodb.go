package docstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"sistema_mdu/internal/domain/entities"
	"sistema_mdu/internal/usecase/interfaces"
	"sistema_mdu/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoStore maps every collection onto its own DynamoDB table.
//
// Table requirements:
//   - name: <prefix><collection>
//   - PK: id (string)
//
// DynamoDB has no server-side ordering for scans, so ordered queries are
// filtered server-side (FilterExpression) and sorted after the scan.
type DynamoStore struct {
	ddb    *dynamodb.Client
	prefix string
	clock  *Clock
}

var _ interfaces.IDocumentStore = (*DynamoStore)(nil)

func NewDynamoStore(ddb *dynamodb.Client, tablePrefix string, clock *Clock) *DynamoStore {
	if clock == nil {
		clock = NewClock()
	}
	return &DynamoStore{ddb: ddb, prefix: tablePrefix, clock: clock}
}

// TableName returns the table backing collection.
func (s *DynamoStore) TableName(collection string) string {
	return s.prefix + collection
}

func (s *DynamoStore) Add(ctx context.Context, collection string, doc entities.Document) (string, error) {
	id := newID()
	if err := s.put(ctx, collection, id, doc); err != nil {
		return "", pkg.NewStoreError("add", collection, "", err)
	}
	return id, nil
}

func (s *DynamoStore) Create(ctx context.Context, collection, id string, doc entities.Document) error {
	if err := s.put(ctx, collection, id, doc); err != nil {
		return pkg.NewStoreError("create", collection, id, err)
	}
	return nil
}

func (s *DynamoStore) put(ctx context.Context, collection, id string, doc entities.Document) error {
	if err := checkTarget(collection, id, true); err != nil {
		return err
	}
	enc, err := encode(doc, s.clock.Now())
	if err != nil {
		return err
	}
	enc[entities.FieldID] = id
	av, err := attributevalue.MarshalMap(enc)
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.TableName(collection)),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": entities.FieldID,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrDocumentExists
		}
		return err
	}
	return nil
}

func (s *DynamoStore) Get(ctx context.Context, collection, id string) (entities.Document, error) {
	if err := checkTarget(collection, id, true); err != nil {
		return nil, pkg.NewStoreError("get", collection, id, err)
	}
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.TableName(collection)),
		Key: map[string]types.AttributeValue{
			entities.FieldID: &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, pkg.NewStoreError("get", collection, id, err)
	}
	if len(out.Item) == 0 {
		return nil, pkg.NewStoreError("get", collection, id, interfaces.ErrDocumentNotFound)
	}
	var raw map[string]any
	if err := attributevalue.UnmarshalMap(out.Item, &raw); err != nil {
		return nil, pkg.NewStoreError("get", collection, id, err)
	}
	return decode(raw), nil
}

func (s *DynamoStore) List(ctx context.Context, collection string) ([]interfaces.Snapshot, error) {
	return s.Query(ctx, collection, interfaces.Query{})
}

func (s *DynamoStore) Query(ctx context.Context, collection string, q interfaces.Query) ([]interfaces.Snapshot, error) {
	if err := checkTarget(collection, "", false); err != nil {
		return nil, pkg.NewStoreError("query", collection, "", err)
	}
	input := &dynamodb.ScanInput{TableName: aws.String(s.TableName(collection))}
	if len(q.Filters) > 0 {
		expr, names, values, err := buildFilterExpression(q.Filters)
		if err != nil {
			return nil, pkg.NewStoreError("query", collection, "", err)
		}
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var out []interfaces.Snapshot
	p := dynamodb.NewScanPaginator(s.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, pkg.NewStoreError("query", collection, "", err)
		}
		for _, item := range page.Items {
			var raw map[string]any
			if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
				return nil, pkg.NewStoreError("query", collection, "", err)
			}
			id, _ := raw[entities.FieldID].(string)
			out = append(out, interfaces.Snapshot{ID: id, Data: decode(raw)})
		}
	}
	return applyOrder(out, q.Sort), nil
}

func (s *DynamoStore) Update(ctx context.Context, collection, id string, fields entities.Document) error {
	if err := s.update(ctx, collection, id, fields, false); err != nil {
		return pkg.NewStoreError("update", collection, id, err)
	}
	return nil
}

// Upsert relies on UpdateItem creating missing items; createdAt is only set
// through if_not_exists so an existing creation time is kept.
func (s *DynamoStore) Upsert(ctx context.Context, collection, id string, fields entities.Document) error {
	if err := s.update(ctx, collection, id, fields, true); err != nil {
		return pkg.NewStoreError("upsert", collection, id, err)
	}
	return nil
}

func (s *DynamoStore) update(ctx context.Context, collection, id string, fields entities.Document, upsert bool) error {
	if err := checkTarget(collection, id, true); err != nil {
		return err
	}
	now := s.clock.Now()
	enc, err := encode(fields, now)
	if err != nil {
		return err
	}
	if len(enc) == 0 && !upsert {
		if _, err := s.Get(ctx, collection, id); err != nil {
			if errors.Is(err, interfaces.ErrDocumentNotFound) {
				return interfaces.ErrDocumentNotFound
			}
			return err
		}
		return nil
	}

	expr, names, values, err := buildUpdateExpression(enc, entities.FormatTimestamp(now), upsert)
	if err != nil {
		return err
	}
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName(collection)),
		Key: map[string]types.AttributeValue{
			entities.FieldID: &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
	if !upsert {
		input.ConditionExpression = aws.String("attribute_exists(#id)")
		input.ExpressionAttributeNames = mergeNames(names, map[string]string{"#id": entities.FieldID})
	}

	if _, err := s.ddb.UpdateItem(ctx, input); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrDocumentNotFound
		}
		return err
	}
	return nil
}

func (s *DynamoStore) Delete(ctx context.Context, collection, id string) error {
	if err := checkTarget(collection, id, true); err != nil {
		return pkg.NewStoreError("delete", collection, id, err)
	}
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.TableName(collection)),
		Key: map[string]types.AttributeValue{
			entities.FieldID: &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return pkg.NewStoreError("delete", collection, id, err)
	}
	return nil
}

// buildFilterExpression renders "#f0 = :f0 AND #f1 = :f1 ..." in filter order.
func buildFilterExpression(filters []interfaces.Filter) (string, map[string]string, map[string]types.AttributeValue, error) {
	names := make(map[string]string, len(filters))
	values := make(map[string]types.AttributeValue, len(filters))
	parts := make([]string, 0, len(filters))
	for i, f := range filters {
		if f.Field == "" {
			return "", nil, nil, errInvalidField
		}
		av, err := attributevalue.Marshal(normalizeValue(f.Value))
		if err != nil {
			return "", nil, nil, err
		}
		name, value := fmt.Sprintf("#f%d", i), fmt.Sprintf(":f%d", i)
		names[name] = f.Field
		values[value] = av
		parts = append(parts, name+" = "+value)
	}
	return strings.Join(parts, " AND "), names, values, nil
}

// buildUpdateExpression renders a SET clause for every field, sorted by name
// so the expression is stable.
func buildUpdateExpression(fields map[string]any, now string, upsert bool) (string, map[string]string, map[string]types.AttributeValue, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := make(map[string]string, len(keys)+1)
	values := make(map[string]types.AttributeValue, len(keys)+1)
	sets := make([]string, 0, len(keys)+1)
	for i, k := range keys {
		av, err := attributevalue.Marshal(fields[k])
		if err != nil {
			return "", nil, nil, err
		}
		name, value := fmt.Sprintf("#u%d", i), fmt.Sprintf(":u%d", i)
		names[name] = k
		values[value] = av
		sets = append(sets, name+" = "+value)
	}
	if _, ok := fields[entities.FieldCreatedAt]; upsert && !ok {
		names["#createdAt"] = entities.FieldCreatedAt
		values[":createdAt"] = &types.AttributeValueMemberS{Value: now}
		sets = append(sets, "#createdAt = if_not_exists(#createdAt, :createdAt)")
	}
	return "SET " + strings.Join(sets, ", "), names, values, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
