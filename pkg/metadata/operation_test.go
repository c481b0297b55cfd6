package metadata

import (
	"testing"
)

func TestNewStockOperation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    StockOperation
		wantErr bool
	}{
		{"valid add", "add", OperationAdd, false},
		{"valid remove", "remove", OperationRemove, false},
		{"valid uppercase ADD", "ADD", OperationAdd, false},
		{"valid with spaces", "  remove ", OperationRemove, false},
		{"invalid set", "set", "", true},
		{"invalid empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStockOperation(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewStockOperation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("NewStockOperation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStockOperationAction(t *testing.T) {
	tests := []struct {
		name     string
		op       StockOperation
		expected string
	}{
		{"add maps to ADD", OperationAdd, "ADD"},
		{"remove maps to REMOVE", OperationRemove, "REMOVE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.Action(); got != tt.expected {
				t.Errorf("Action() = %v, want %v", got, tt.expected)
			}
		})
	}
}
