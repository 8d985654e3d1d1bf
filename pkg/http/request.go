package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	apperrors "jumatrek/pkg/errors"
)

// DecodeJSON reads a single JSON document from the request body. Unknown
// fields are ignored.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperrors.InvalidInput("Request body is required")
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return apperrors.RequestTooLarge(maxErr.Limit)
		case errors.Is(err, io.EOF):
			return apperrors.InvalidInput("Request body is required")
		default:
			return apperrors.InvalidInput("Invalid JSON body: " + err.Error())
		}
	}

	if dec.More() {
		return apperrors.InvalidInput("Request body must contain a single JSON object")
	}
	return nil
}

// QueryString returns the trimmed value of key, or nil when it is absent or blank.
func QueryString(r *http.Request, key string) *string {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return nil
	}
	return &value
}

// QueryInt parses key as an integer no smaller than min. Absent means nil.
func QueryInt(r *http.Request, key string, min int) (*int, error) {
	raw := QueryString(r, key)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid " + key + " parameter: " + *raw).
			WithDetails(map[string]any{key: "must be an integer"})
	}
	if v < min {
		return nil, apperrors.InvalidInput("invalid " + key + " parameter: " + *raw).
			WithDetails(map[string]any{key: "must be at least " + strconv.Itoa(min)})
	}
	return &v, nil
}

// QueryBool parses key as a boolean. Absent means nil.
func QueryBool(r *http.Request, key string) (*bool, error) {
	raw := QueryString(r, key)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.ParseBool(strings.ToLower(*raw))
	if err != nil {
		return nil, apperrors.InvalidInput("invalid " + key + " parameter: " + *raw).
			WithDetails(map[string]any{key: "must be a boolean"})
	}
	return &v, nil
}
