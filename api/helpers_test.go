package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/garnizeh/johnlink/api"
	dbfs "github.com/garnizeh/johnlink/db"
	"github.com/garnizeh/johnlink/internal/config"
	"github.com/garnizeh/johnlink/internal/db"
)

func init() {
	api.SetLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

// newTestRouter builds the full router over a fresh migrated database and a
// static dir holding index.html and app.js. The clock is fixed at now.
func newTestRouter(t *testing.T, now time.Time) http.Handler {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	d, err := db.New(ctx, filepath.Join(dir, "api.db"), nil)
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	static := filepath.Join(dir, "public")
	if err := os.MkdirAll(static, 0o755); err != nil {
		t.Fatalf("mkdir static: %v", err)
	}
	if err := os.WriteFile(filepath.Join(static, "index.html"), []byte("<html>johnlink</html>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	if err := os.WriteFile(filepath.Join(static, "app.js"), []byte("console.log('app')"), 0o644); err != nil {
		t.Fatalf("write app.js: %v", err)
	}

	cfg := &config.Config{StaticDir: static}
	return api.SetupRoutes(cfg, "test", "now", d, func() time.Time { return now })
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// doJSON performs the request, requires a 200 and decodes the body into T.
func doJSON[T any](t *testing.T, h http.Handler, method, path, body string) T {
	t.Helper()
	w := do(t, h, method, path, body)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s: expected 200, got %d: %s", method, path, w.Code, w.Body.String())
	}
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("%s %s: decode: %v (%s)", method, path, err, w.Body.String())
	}
	return v
}

type created struct {
	ID int64 `json:"id"`
}

func str(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

var day = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
