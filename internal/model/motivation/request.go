package motivation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNotInteger is returned when a metric cannot be read as a non-negative integer.
	ErrNotInteger = errors.New("value is not a non-negative integer")
	// ErrNotObject is returned when the body is not a JSON object.
	ErrNotObject = errors.New("body is not a JSON object")
)

// Request carries the volunteer's progress metrics.
type Request struct {
	Points      int `json:"points"`
	Hours       int `json:"hours"`
	Streak      int `json:"streak"`
	Initiatives int `json:"initiatives"`
}

// ParseRequest decodes a loosely typed JSON body. The returned Request is
// always usable: a body that is not a JSON object, or one with any metric that
// fails to convert, yields all zeros together with the reason.
func ParseRequest(body []byte) (Request, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrNotObject, err)
	}
	return Coerce(fields)
}

// Coerce converts the four metrics. Missing fields become zero. When any
// present field fails to convert, all four metrics are zero and the first
// conversion error is returned.
func Coerce(fields map[string]json.RawMessage) (Request, error) {
	var req Request
	targets := []struct {
		key string
		dst *int
	}{
		{"points", &req.Points},
		{"hours", &req.Hours},
		{"streak", &req.Streak},
		{"initiatives", &req.Initiatives},
	}

	for _, target := range targets {
		raw, ok := fields[target.key]
		if !ok {
			continue
		}
		val, err := coerceInt(raw)
		if err != nil {
			return Request{}, fmt.Errorf("%s: %w", target.key, err)
		}
		*target.dst = val
	}
	return req, nil
}

func coerceInt(raw json.RawMessage) (int, error) {
	var value any
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return 0, ErrNotInteger
	}

	var n int
	switch v := value.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(v.String(), 10, 0); err == nil {
			n = int(i)
			break
		}
		f, err := v.Float64()
		if err != nil || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
			return 0, ErrNotInteger
		}
		n = int(math.Trunc(f))
	case bool:
		if v {
			n = 1
		}
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, ErrNotInteger
		}
		n = i
	default:
		// null, arrays and objects
		return 0, ErrNotInteger
	}

	if n < 0 {
		return 0, ErrNotInteger
	}
	return n, nil
}
