package router

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		method string
		hasID  bool
		want   Action
	}{
		{"options without id", "OPTIONS", false, ActionPreflight},
		{"options with id", "OPTIONS", true, ActionPreflight},
		{"get with id", "GET", true, ActionGet},
		{"get without id", "GET", false, ActionList},
		{"post without id", "POST", false, ActionCreate},
		{"post with id", "POST", true, ActionUnsupported},
		{"put with id", "PUT", true, ActionUpdate},
		{"put without id", "PUT", false, ActionUnsupported},
		{"delete with id", "DELETE", true, ActionDelete},
		{"delete without id", "DELETE", false, ActionDelete},
		{"patch", "PATCH", true, ActionUnsupported},
		{"head", "HEAD", false, ActionUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.method, tt.hasID)
			if got != tt.want {
				t.Errorf("Classify(%q, %v) = %v, want %v", tt.method, tt.hasID, got, tt.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionCreate.String() != "create" {
		t.Errorf("ActionCreate.String() = %q, want %q", ActionCreate.String(), "create")
	}
	if Action(99).String() != "unsupported" {
		t.Errorf("unknown action should stringify as unsupported, got %q", Action(99).String())
	}
}
