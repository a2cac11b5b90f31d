// internal/domain/homework/response.go
package homework

import (
	"encoding/json"
	"fmt"
	"math"
)

// Top level keys of the endpoint response.
const (
	KeyHomeworks   = "homeworks"
	KeyCurrentDate = "current_date"
)

// Batch is a validated endpoint response.
type Batch struct {
	// Homeworks are ordered most recent first.
	Homeworks []map[string]any
	// CurrentDate is the cursor for the next poll (Unix seconds).
	CurrentDate int64
}

// CheckResponse validates the decoded JSON value returned by the endpoint.
func CheckResponse(raw any) (Batch, error) {
	response, ok := raw.(map[string]any)
	if !ok {
		return Batch{}, fmt.Errorf("%w: got %T", ErrResponseNotObject, raw)
	}

	rawHomeworks, ok := response[KeyHomeworks]
	if !ok || rawHomeworks == nil {
		return Batch{}, fmt.Errorf("%w %q", ErrResponseMissingKey, KeyHomeworks)
	}
	rawCurrentDate, ok := response[KeyCurrentDate]
	if !ok {
		return Batch{}, fmt.Errorf("%w %q", ErrResponseMissingKey, KeyCurrentDate)
	}

	list, ok := rawHomeworks.([]any)
	if !ok {
		return Batch{}, fmt.Errorf("%w: %q is %T, want array", ErrResponseWrongType, KeyHomeworks, rawHomeworks)
	}
	homeworks := make([]map[string]any, 0, len(list))
	for i, item := range list {
		hw, ok := item.(map[string]any)
		if !ok {
			return Batch{}, fmt.Errorf("%w: %s[%d] is %T, want object", ErrResponseWrongType, KeyHomeworks, i, item)
		}
		homeworks = append(homeworks, hw)
	}

	currentDate, err := toUnix(rawCurrentDate)
	if err != nil {
		return Batch{}, err
	}

	return Batch{Homeworks: homeworks, CurrentDate: currentDate}, nil
}

// toUnix accepts json.Number (decoder with UseNumber) and float64 (plain Unmarshal).
func toUnix(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		ts, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is %q, want integer", ErrResponseWrongType, KeyCurrentDate, n.String())
		}
		return ts, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %q is %v, want integer", ErrResponseWrongType, KeyCurrentDate, n)
		}
		return int64(n), nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%w: %q is %T, want integer", ErrResponseWrongType, KeyCurrentDate, v)
	}
}
