package dto

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{`7`, 7, false},
		{`"12"`, 12, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`"abc"`, 0, true},
		{`1.5`, 0, true},
		{`true`, 0, true},
	}
	for _, tt := range tests {
		var got struct {
			ID ID `json:"id"`
		}
		err := json.Unmarshal([]byte(`{"id":`+tt.in+`}`), &got)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Unmarshal(%s) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unmarshal(%s) error = %v", tt.in, err)
			continue
		}
		if got.ID != tt.want {
			t.Errorf("Unmarshal(%s) = %d, want %d", tt.in, got.ID, tt.want)
		}
	}
}

func TestCustomValidators(t *testing.T) {
	if err := RegisterValidators(); err != nil {
		t.Fatalf("RegisterValidators() error = %v", err)
	}
	if err := RegisterValidators(); err != nil {
		t.Fatalf("second RegisterValidators() error = %v", err)
	}

	ok := UpdateTaskStatusRequest{Status: "failed", FailureReason: "blocked"}
	if err := binding.Validator.ValidateStruct(&ok); err != nil {
		t.Errorf("valid status rejected: %v", err)
	}
	bad := UpdateTaskStatusRequest{Status: "archived"}
	if err := binding.Validator.ValidateStruct(&bad); err == nil {
		t.Error("invalid status accepted")
	}

	logOK := CreateTimeLogRequest{UserID: 1, Type: "resume"}
	if err := binding.Validator.ValidateStruct(&logOK); err != nil {
		t.Errorf("valid time log rejected: %v", err)
	}
	logBad := CreateTimeLogRequest{UserID: 1, Type: "lunch"}
	if err := binding.Validator.ValidateStruct(&logBad); err == nil {
		t.Error("invalid time log type accepted")
	}

	task := CreateTaskRequest{Title: "t", AssignedTo: 1, DueDate: "10/01/2025"}
	if err := binding.Validator.ValidateStruct(&task); err == nil {
		t.Error("non ISO due date accepted")
	}
}
