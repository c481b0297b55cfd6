package metadata

import (
	"fmt"
	"strings"
)

// StockOperation is the direction of a stock adjustment.
type StockOperation string

const (
	OperationAdd    StockOperation = "add"
	OperationRemove StockOperation = "remove"
)

func NewStockOperation(value string) (StockOperation, error) {
	op := StockOperation(strings.ToLower(strings.TrimSpace(value)))
	if !op.IsValid() {
		return "", fmt.Errorf(
			"invalid operation: %s, only valid values are: %s, %s",
			value, OperationAdd, OperationRemove,
		)
	}
	return op, nil
}

func (o StockOperation) IsValid() bool {
	switch o {
	case OperationAdd, OperationRemove:
		return true
	default:
		return false
	}
}

func (o StockOperation) String() string {
	return string(o)
}

// Action returns the activity-log action recorded for this operation.
func (o StockOperation) Action() string {
	return strings.ToUpper(string(o))
}
