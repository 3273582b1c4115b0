package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/taskboard/taskboard/pkg/taskboard"
)

const maxBodyBytes = 1 << 20

const dateLayout = "2006-01-02"

// body is a decoded JSON object request body. Its keys are the field set the
// policy sees, so a field counts as present even when its value is null or
// unknown to the handler.
type body map[string]json.RawMessage

func decodeBody(w http.ResponseWriter, r *http.Request) (body, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, taskboard.NewErrInvalid("body", "could not be read")
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return body{}, nil
	}

	var b body
	if err = json.Unmarshal(raw, &b); err != nil || b == nil {
		return nil, taskboard.NewErrInvalid("body", "must be a JSON object")
	}

	return b, nil
}

func (b body) fields() []string {
	fields := make([]string, 0, len(b))
	for k := range b {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	return fields
}

func (b body) has(key string) bool {
	_, ok := b[key]
	return ok
}

func (b body) null(key string) bool {
	raw, ok := b[key]
	return ok && string(bytes.TrimSpace(raw)) == "null"
}

// string returns nil when key is absent or null.
func (b body) string(key string) (*string, error) {
	if !b.has(key) || b.null(key) {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(b[key], &s); err != nil {
		return nil, taskboard.NewErrInvalid(key, "must be a string")
	}

	return &s, nil
}

// id returns nil when key is absent or null.
func (b body) id(key string) (*int64, error) {
	if !b.has(key) || b.null(key) {
		return nil, nil
	}

	var id int64
	if err := json.Unmarshal(b[key], &id); err != nil || id <= 0 {
		return nil, taskboard.NewErrInvalid(key, "must be a positive integer")
	}

	return &id, nil
}

// time accepts RFC 3339 timestamps and plain dates. It returns nil when key
// is absent or null.
func (b body) time(key string) (*time.Time, error) {
	s, err := b.string(key)
	if err != nil || s == nil {
		return nil, err
	}

	for _, layout := range []string{time.RFC3339Nano, dateLayout} {
		if t, perr := time.Parse(layout, *s); perr == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	return nil, taskboard.NewErrInvalid(key, "must be an RFC 3339 timestamp or a YYYY-MM-DD date")
}

// notNull rejects an explicit null for a field that cannot be cleared.
func (b body) notNull(keys ...string) error {
	for _, k := range keys {
		if b.null(k) {
			return taskboard.NewErrInvalid(k, "must not be null")
		}
	}

	return nil
}

// required rejects absent, null or blank values.
func (b body) required(keys ...string) error {
	for _, k := range keys {
		if !b.has(k) || b.null(k) {
			return taskboard.NewErrInvalid(k, "is required")
		}
		if s, err := b.string(k); err == nil && s != nil && strings.TrimSpace(*s) == "" {
			return taskboard.NewErrInvalid(k, "is required")
		}
	}

	return nil
}

func validateLength(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return taskboard.NewErrInvalid(field, "must not be blank")
	}
	if len([]rune(value)) > max {
		return taskboard.NewErrInvalid(field, "is too long")
	}

	return nil
}
