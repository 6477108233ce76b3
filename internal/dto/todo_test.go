package dto

import (
	"encoding/json"
	"testing"
)

func TestUpdateTodoRequest_PresenceBits(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		titleSet  bool
		descSet   bool
		descValue *string
	}{
		{name: "both omitted", body: `{}`},
		{name: "description null", body: `{"description":null}`, descSet: true},
		{
			name:      "description value",
			body:      `{"description":"hello"}`,
			descSet:   true,
			descValue: ptr("hello"),
		},
		{name: "title value", body: `{"title":"x"}`, titleSet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateTodoRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.body, err)
			}
			if req.Title.Set != tt.titleSet {
				t.Errorf("Title.Set = %v, want %v", req.Title.Set, tt.titleSet)
			}
			if req.Description.Set != tt.descSet {
				t.Errorf("Description.Set = %v, want %v", req.Description.Set, tt.descSet)
			}
			switch {
			case tt.descValue == nil && req.Description.Value != nil:
				t.Errorf("Description.Value = %q, want nil", *req.Description.Value)
			case tt.descValue != nil && (req.Description.Value == nil || *req.Description.Value != *tt.descValue):
				t.Errorf("Description.Value = %v, want %q", req.Description.Value, *tt.descValue)
			}
		})
	}
}

func TestUpdateTodoRequest_Patch(t *testing.T) {
	var req UpdateTodoRequest
	if err := json.Unmarshal([]byte(`{"title":"t","description":null}`), &req); err != nil {
		t.Fatal(err)
	}

	patch := req.Patch()
	if patch.Title == nil || *patch.Title != "t" {
		t.Errorf("patch.Title = %v", patch.Title)
	}
	if !patch.DescriptionSet {
		t.Error("patch.DescriptionSet = false, want true")
	}
	if patch.Description != nil {
		t.Errorf("patch.Description = %v, want nil", patch.Description)
	}
}

func TestOpt_RejectsWrongType(t *testing.T) {
	var req UpdateTodoRequest
	if err := json.Unmarshal([]byte(`{"title":7}`), &req); err == nil {
		t.Error("expected error for numeric title")
	}
}

func ptr(s string) *string { return &s }
