package docstore

import (
	"bytes"
	"encoding/json"
	"hash/crc32"
	"io"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamo speaks the DynamoDB JSON protocol for the handful of
// expressions DynamoStore renders. Items are kept as wire-format attribute
// values so filters compare exactly what the SDK sent.
type fakeDynamo struct {
	mu       sync.Mutex
	pageSize int
	tables   map[string]*fakeTable
	missing  map[string]bool
	calls    map[string]int
}

type fakeTable struct {
	keys  []string
	items map[string]map[string]any
}

type dynamoRequest struct {
	TableName                 string
	Item                      map[string]any
	Key                       map[string]any
	ConditionExpression       string
	UpdateExpression          string
	FilterExpression          string
	ExpressionAttributeNames  map[string]string
	ExpressionAttributeValues map[string]any
	ExclusiveStartKey         map[string]any
}

func newFakeDynamo(pageSize int) *fakeDynamo {
	return &fakeDynamo{
		pageSize: pageSize,
		tables:   map[string]*fakeTable{},
		missing:  map[string]bool{},
		calls:    map[string]int{},
	}
}

func newFakeDynamoStore(t *testing.T, fake *fakeDynamo, clock *Clock) *DynamoStore {
	t.Helper()
	client := dynamodb.New(dynamodb.Options{
		Region:       "us-east-1",
		Credentials:  credentials.NewStaticCredentialsProvider("AKIA", "SECRET", ""),
		BaseEndpoint: aws.String("https://dynamodb.local"),
		HTTPClient:   &http.Client{Transport: fake},
		Retryer:      aws.NopRetryer{},
	})
	return NewDynamoStore(client, "mdu_", clock)
}

func (f *fakeDynamo) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeDynamo) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		body = b
	}
	var in dynamoRequest
	if err := json.Unmarshal(body, &in); err != nil {
		return dynamoError(req, "SerializationException", err.Error()), nil
	}
	op := strings.TrimPrefix(req.Header.Get("X-Amz-Target"), "DynamoDB_20120810.")

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	if f.missing[in.TableName] {
		return dynamoError(req, "ResourceNotFoundException", "Requested resource not found"), nil
	}
	t := f.table(in.TableName)

	switch op {
	case "PutItem":
		id := keyOf(in.Item)
		if id == "" {
			return dynamoError(req, "ValidationException", "missing key"), nil
		}
		ok, bad := conditionHolds(in, t, id)
		if bad != "" {
			return dynamoError(req, "ValidationException", bad), nil
		}
		if !ok {
			return dynamoError(req, "ConditionalCheckFailedException", "The conditional request failed"), nil
		}
		t.put(id, in.Item)
		return dynamoOK(req, map[string]any{}), nil

	case "GetItem":
		item, ok := t.items[keyOf(in.Key)]
		if !ok {
			return dynamoOK(req, map[string]any{}), nil
		}
		return dynamoOK(req, map[string]any{"Item": item}), nil

	case "UpdateItem":
		id := keyOf(in.Key)
		ok, bad := conditionHolds(in, t, id)
		if bad != "" {
			return dynamoError(req, "ValidationException", bad), nil
		}
		if !ok {
			return dynamoError(req, "ConditionalCheckFailedException", "The conditional request failed"), nil
		}
		next, bad := applyUpdate(in, t.items[id])
		if bad != "" {
			return dynamoError(req, "ValidationException", bad), nil
		}
		t.put(id, next)
		return dynamoOK(req, map[string]any{}), nil

	case "DeleteItem":
		t.remove(keyOf(in.Key))
		return dynamoOK(req, map[string]any{}), nil

	case "Scan":
		start := 0
		if len(in.ExclusiveStartKey) > 0 {
			start = slices.Index(t.keys, keyOf(in.ExclusiveStartKey)) + 1
		}
		end := min(start+f.pageSize, len(t.keys))
		items := []map[string]any{}
		for _, k := range t.keys[start:end] {
			if filterMatches(in, t.items[k]) {
				items = append(items, t.items[k])
			}
		}
		out := map[string]any{"Items": items, "Count": len(items), "ScannedCount": end - start}
		if end < len(t.keys) {
			out["LastEvaluatedKey"] = map[string]any{"id": t.items[t.keys[end-1]]["id"]}
		}
		return dynamoOK(req, out), nil
	}
	return dynamoError(req, "UnknownOperationException", op), nil
}

func (f *fakeDynamo) table(name string) *fakeTable {
	t, ok := f.tables[name]
	if !ok {
		t = &fakeTable{items: map[string]map[string]any{}}
		f.tables[name] = t
	}
	return t
}

func (t *fakeTable) put(id string, item map[string]any) {
	if _, ok := t.items[id]; !ok {
		t.keys = append(t.keys, id)
	}
	t.items[id] = item
}

func (t *fakeTable) remove(id string) {
	if _, ok := t.items[id]; !ok {
		return
	}
	delete(t.items, id)
	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == id })
}

func keyOf(item map[string]any) string {
	av, _ := item["id"].(map[string]any)
	s, _ := av["S"].(string)
	return s
}

// conditionHolds evaluates attribute_exists / attribute_not_exists on the
// key attribute, the only conditions DynamoStore sends.
func conditionHolds(in dynamoRequest, t *fakeTable, id string) (bool, string) {
	if in.ConditionExpression == "" {
		return true, ""
	}
	fn, arg, ok := strings.Cut(in.ConditionExpression, "(")
	if !ok || in.ExpressionAttributeNames[strings.TrimSuffix(arg, ")")] != "id" {
		return false, "unsupported condition " + in.ConditionExpression
	}
	_, exists := t.items[id]
	switch fn {
	case "attribute_exists":
		return exists, ""
	case "attribute_not_exists":
		return !exists, ""
	}
	return false, "unsupported condition " + in.ConditionExpression
}

// applyUpdate runs a "SET #a = :a, #b = if_not_exists(#b, :b)" clause.
func applyUpdate(in dynamoRequest, current map[string]any) (map[string]any, string) {
	next := make(map[string]any, len(current)+4)
	for k, v := range current {
		next[k] = v
	}
	next["id"] = in.Key["id"]

	set, ok := strings.CutPrefix(in.UpdateExpression, "SET ")
	if !ok {
		return nil, "unsupported update " + in.UpdateExpression
	}
	for i, part := range strings.Split(set, ", #") {
		if i > 0 {
			part = "#" + part
		}
		lhs, rhs, ok := strings.Cut(part, " = ")
		name, named := in.ExpressionAttributeNames[lhs]
		if !ok || !named {
			return nil, "bad assignment " + part
		}
		if arg, ok := strings.CutPrefix(rhs, "if_not_exists("); ok {
			path, value, _ := strings.Cut(strings.TrimSuffix(arg, ")"), ", ")
			if _, has := next[in.ExpressionAttributeNames[path]]; has {
				continue
			}
			rhs = value
		}
		v, ok := in.ExpressionAttributeValues[rhs]
		if !ok {
			return nil, "missing value " + rhs
		}
		next[name] = v
	}
	return next, ""
}

func filterMatches(in dynamoRequest, item map[string]any) bool {
	if in.FilterExpression == "" {
		return true
	}
	for _, clause := range strings.Split(in.FilterExpression, " AND ") {
		lhs, rhs, _ := strings.Cut(clause, " = ")
		got, ok := item[in.ExpressionAttributeNames[lhs]]
		if !ok || !reflect.DeepEqual(got, in.ExpressionAttributeValues[rhs]) {
			return false
		}
	}
	return true
}

func dynamoOK(req *http.Request, v any) *http.Response {
	return dynamoResponse(req, http.StatusOK, v)
}

func dynamoError(req *http.Request, code, msg string) *http.Response {
	return dynamoResponse(req, http.StatusBadRequest, map[string]string{
		"__type":  "com.amazonaws.dynamodb.v20120810#" + code,
		"message": msg,
	})
}

func dynamoResponse(req *http.Request, status int, v any) *http.Response {
	body, _ := json.Marshal(v)
	return &http.Response{
		StatusCode: status,
		Header: http.Header{
			"Content-Type": {"application/x-amz-json-1.0"},
			"X-Amz-Crc32":  {strconv.FormatUint(uint64(crc32.ChecksumIEEE(body)), 10)},
		},
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
