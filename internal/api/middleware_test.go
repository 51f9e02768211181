package api

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCORSPreflight(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/items", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if called {
		t.Error("preflight should not reach the handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "DELETE") {
		t.Errorf("Allow-Methods = %q", got)
	}
}

func TestAPIKeyAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	tests := []struct {
		name   string
		key    string
		header string
		want   int
	}{
		{name: "no key configured", key: "", header: "", want: http.StatusNoContent},
		{name: "missing header", key: "secret", header: "", want: http.StatusUnauthorized},
		{name: "wrong header", key: "secret", header: "nope", want: http.StatusUnauthorized},
		{name: "correct header", key: "secret", header: "secret", want: http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tc.header != "" {
				req.Header.Set("X-API-Key", tc.header)
			}
			rec := httptest.NewRecorder()
			APIKeyAuth(tc.key)(ok).ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestRequestBodyGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte(`{"hello":"world"}`))
	gz.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")

	body, err := requestBody(req)
	if err != nil {
		t.Fatalf("requestBody: %v", err)
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"hello":"world"}` {
		t.Errorf("body = %q", data)
	}

	bad := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	bad.Header.Set("Content-Encoding", "gzip")
	if _, err := requestBody(bad); err == nil {
		t.Error("expected error for invalid gzip body")
	}
}
