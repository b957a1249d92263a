package router

import (
	"encoding/json"
	"testing"

	"items-api/pkg/httpevent"
)

func TestResolveMethod(t *testing.T) {
	tests := []struct {
		name  string
		event httpevent.Event
		want  string
	}{
		{"top-level field", httpevent.Event{HTTPMethod: "POST"}, "POST"},
		{"lowercase normalized", httpevent.Event{HTTPMethod: "put"}, "PUT"},
		{"nested fallback", httpevent.Event{RequestContext: httpevent.RequestContext{HTTP: httpevent.HTTPContext{Method: "delete"}}}, "DELETE"},
		{"top-level wins over nested", httpevent.Event{HTTPMethod: "GET", RequestContext: httpevent.RequestContext{HTTP: httpevent.HTTPContext{Method: "POST"}}}, "GET"},
		{"default GET", httpevent.Event{}, "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveMethod(&tt.event); got != tt.want {
				t.Errorf("resolveMethod() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name  string
		event httpevent.Event
		want  string
	}{
		{"path field", httpevent.Event{Path: "/items/a1"}, "/items/a1"},
		{"rawPath fallback", httpevent.Event{RawPath: "/items"}, "/items"},
		{"path wins over rawPath", httpevent.Event{Path: "/items/x", RawPath: "/other"}, "/items/x"},
		{"default root", httpevent.Event{}, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolvePath(&tt.event); got != tt.want {
				t.Errorf("resolvePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveID(t *testing.T) {
	tests := []struct {
		name  string
		event httpevent.Event
		path  string
		want  string
	}{
		{"path parameter wins", httpevent.Event{PathParameters: map[string]string{"id": "p1"}}, "/items/x1", "p1"},
		{"single segment id", httpevent.Event{}, "/items/a1", "a1"},
		{"id containing slashes", httpevent.Event{}, "/items/a/b/c", "a/b/c"},
		{"collection path has no id", httpevent.Event{}, "/items", ""},
		{"trailing slash has no id", httpevent.Event{}, "/items/", ""},
		{"unrelated prefix has no id", httpevent.Event{}, "/widgets/a1", ""},
		{"root has no id", httpevent.Event{}, "/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveID(&tt.event, tt.path); got != tt.want {
				t.Errorf("resolveID(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseBody(t *testing.T) {
	t.Run("empty body yields empty object", func(t *testing.T) {
		body, err := parseBody(&httpevent.Event{})
		if err != nil {
			t.Fatalf("parseBody() error = %v", err)
		}
		if len(body) != 0 {
			t.Errorf("expected empty body, got %v", body)
		}
	})

	t.Run("null body yields empty object", func(t *testing.T) {
		body, err := parseBody(&httpevent.Event{Body: "null"})
		if err != nil {
			t.Fatalf("parseBody() error = %v", err)
		}
		if body == nil || len(body) != 0 {
			t.Errorf("expected empty body, got %v", body)
		}
	})

	t.Run("numbers decode as json.Number", func(t *testing.T) {
		body, err := parseBody(&httpevent.Event{Body: `{"id":42}`})
		if err != nil {
			t.Fatalf("parseBody() error = %v", err)
		}
		n, ok := body["id"].(json.Number)
		if !ok {
			t.Fatalf("expected json.Number, got %T", body["id"])
		}
		if n.String() != "42" {
			t.Errorf("expected 42, got %s", n.String())
		}
	})

	t.Run("malformed JSON is an error", func(t *testing.T) {
		if _, err := parseBody(&httpevent.Event{Body: "{not json"}); err == nil {
			t.Error("expected error for malformed body")
		}
	})

	t.Run("non-object JSON is an error", func(t *testing.T) {
		if _, err := parseBody(&httpevent.Event{Body: "[1,2]"}); err == nil {
			t.Error("expected error for array body")
		}
	})
}
