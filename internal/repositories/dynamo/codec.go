package dynamo

import (
	"math"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"items-api/internal/repositories"
)

// decodeRecord converts a raw DynamoDB item into a Record of plain Go values.
func decodeRecord(attrs map[string]types.AttributeValue) repositories.Record {
	if attrs == nil {
		return nil
	}
	rec := make(repositories.Record, len(attrs))
	for k, v := range attrs {
		rec[k] = decodeAttr(v)
	}
	return rec
}

// decodeAttr converts one attribute value. Number attributes become int64 when
// exactly integral and float64 otherwise, so JSON responses render 3 rather
// than "3" or 3.0. The generic attributevalue unmarshaler is not used here
// because it collapses every number to float64, which loses large integers.
func decodeAttr(v types.AttributeValue) any {
	switch t := v.(type) {
	case *types.AttributeValueMemberS:
		return t.Value
	case *types.AttributeValueMemberN:
		return decodeNumber(t.Value)
	case *types.AttributeValueMemberBOOL:
		return t.Value
	case *types.AttributeValueMemberNULL:
		return nil
	case *types.AttributeValueMemberB:
		return t.Value
	case *types.AttributeValueMemberM:
		m := make(map[string]any, len(t.Value))
		for k, mv := range t.Value {
			m[k] = decodeAttr(mv)
		}
		return m
	case *types.AttributeValueMemberL:
		l := make([]any, len(t.Value))
		for i, lv := range t.Value {
			l[i] = decodeAttr(lv)
		}
		return l
	case *types.AttributeValueMemberSS:
		l := make([]any, len(t.Value))
		for i, s := range t.Value {
			l[i] = s
		}
		return l
	case *types.AttributeValueMemberNS:
		l := make([]any, len(t.Value))
		for i, n := range t.Value {
			l[i] = decodeNumber(n)
		}
		return l
	default:
		return nil
	}
}

func decodeNumber(n string) any {
	if i, err := strconv.ParseInt(n, 10, 64); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		// Out-of-range or malformed number; surface the raw text.
		return n
	}
	// Values like "3.0" are still integral.
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f)
	}
	return f
}
