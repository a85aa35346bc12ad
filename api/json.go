package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, successResponse{Success: true}, http.StatusOK)
}

// decodeJSON reads the request body into v. An empty body decodes as {} so that
// every field is left absent.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// pathID returns the {id} route variable. Routes constrain it to digits, so a
// parse failure only happens on overflow.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// storeError logs err and answers with a bare 500, the only failure mode of the
// CRUD endpoints.
func storeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.Error(msg,
		slog.Any("err", err),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", RequestID(r.Context())),
	)
	http.Error(w, msg, http.StatusInternalServerError)
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

// looseInt is a nullable integer request field. It accepts a JSON number or a
// numeric string; "", null and anything that is not an integral number decode
// as NULL. The raw JSON is kept so responses echo what the client sent.
type looseInt struct {
	raw json.RawMessage
	v   *int64
}

func (l *looseInt) UnmarshalJSON(b []byte) error {
	l.raw = append(l.raw[:0], b...)
	l.v = nil

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		l.v = &n
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		n := int64(f)
		l.v = &n
	}
	return nil
}

func (l looseInt) MarshalJSON() ([]byte, error) {
	if len(l.raw) == 0 {
		return []byte("null"), nil
	}
	return l.raw, nil
}

// int64Ptr returns the decoded value; an absent field is nil.
func (l *looseInt) int64Ptr() *int64 {
	if l == nil {
		return nil
	}
	return l.v
}

// leadingInt reads an optionally signed run of digits at the start of s,
// after leading whitespace, ignoring whatever follows ("5abc" is 5).
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
