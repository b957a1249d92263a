package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr bool
		missing string
	}{
		{"valid", Item{ID: "a1", Description: "buy milk", Date: "2024-01-01"}, false, ""},
		{"missing id", Item{Description: "x", Date: "y"}, true, "id"},
		{"blank description", Item{ID: "a1", Description: "   ", Date: "y"}, true, "description"},
		{"missing date", Item{ID: "a1", Description: "x"}, true, "date"},
		{"all missing", Item{}, true, "id, description, date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.missing) {
				t.Errorf("error %q should name %q", err.Error(), tt.missing)
			}
		})
	}
}

func TestItemFromPayload(t *testing.T) {
	item := ItemFromPayload(map[string]any{
		"id":          json.Number("42"),
		"description": "buy milk",
		"date":        "2024-01-01",
	})

	if item.ID != "42" {
		t.Errorf("ID = %q, want %q", item.ID, "42")
	}
	if item.Description != "buy milk" || item.Date != "2024-01-01" {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestItemFromPayloadMissingKeys(t *testing.T) {
	item := ItemFromPayload(map[string]any{})
	if item.ID != "" || item.Description != "" || item.Date != "" {
		t.Errorf("expected empty fields, got %+v", item)
	}
	if err := item.Validate(); err == nil {
		t.Error("expected validation error for empty payload")
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"plain", "plain"},
		{json.Number("3.25"), "3.25"},
		{json.Number("9007199254740993"), "9007199254740993"},
		{2.5, "2.5"},
		{true, "true"},
	}

	for _, tt := range tests {
		if got := Stringify(tt.in); got != tt.want {
			t.Errorf("Stringify(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
