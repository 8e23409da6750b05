package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into obj. An empty body decodes as {}.
// Only malformed JSON is an error here; field types are checked by the
// cast helpers below.
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// CastError reports a body field whose value cannot be stored as the
// field's type.
type CastError struct {
	Path  string
	Kind  string
	Value string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("Cast to %s failed for value %s at path %q", e.Kind, e.Value, e.Path)
}

func decodeRaw(raw json.RawMessage) (interface{}, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// castString accepts strings, numbers and booleans. Absent and null
// values yield nil.
func castString(path string, raw json.RawMessage) (*string, error) {
	v, err := decodeRaw(raw)
	if err != nil {
		return nil, err
	}

	var s string
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return nil, &CastError{Path: path, Kind: "string", Value: string(raw)}
	}
	return &s, nil
}

// castReference accepts only strings; the value is kept verbatim.
func castReference(path string, raw json.RawMessage) (*string, error) {
	v, err := decodeRaw(raw)
	if err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &t, nil
	}
	return nil, &CastError{Path: path, Kind: "ObjectId", Value: string(raw)}
}

// castNumber accepts numbers, numeric strings and booleans. An empty
// string is treated as null.
func castNumber(path string, raw json.RawMessage) (*float64, error) {
	v, err := decodeRaw(raw)
	if err != nil {
		return nil, err
	}

	var f float64
	switch t := v.(type) {
	case nil:
		return nil, nil
	case float64:
		f = t
	case bool:
		if t {
			f = 1
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, nil
		}
		f, err = strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &CastError{Path: path, Kind: "Number", Value: string(raw)}
		}
	default:
		return nil, &CastError{Path: path, Kind: "Number", Value: string(raw)}
	}
	return &f, nil
}
