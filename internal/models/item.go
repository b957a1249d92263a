package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Item represents a single record in the items table.
//
// The id is the primary key and is immutable once created. The date field is
// caller-supplied and opaque; no date parsing or validation is performed.
type Item struct {
	ID          string `json:"id" dynamodbav:"id" validate:"required"`
	Description string `json:"description" dynamodbav:"description" validate:"required"`
	Date        string `json:"date" dynamodbav:"date" validate:"required"`
}

// Validate checks that all required fields are present and non-blank.
func (i *Item) Validate() error {
	var missing []string
	if strings.TrimSpace(i.ID) == "" {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(i.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(i.Date) == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ItemFromPayload builds an Item from a decoded JSON body, normalizing each of
// the three required fields to a string. Scalar values of other JSON types are
// stringified; absent keys become empty strings and fail Validate.
func ItemFromPayload(body map[string]any) *Item {
	return &Item{
		ID:          Stringify(body["id"]),
		Description: Stringify(body["description"]),
		Date:        Stringify(body["date"]),
	}
}

// Stringify converts a decoded JSON scalar to its string form. Numbers decoded
// via json.Number keep their exact textual representation.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
