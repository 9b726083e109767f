package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(), CORS([]string{"http://shop.test"}))
	r.POST("/echo", func(c *gin.Context) {
		body, err := BindObject(c)
		if err != nil {
			Fail(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
			return
		}
		OK(c, gin.H{"echo": body})
	})
	r.GET("/broken", func(c *gin.Context) {
		StorageError(c, errors.Wrap(store.ErrCorrupt, "catalog"))
	})
	r.GET("/write", func(c *gin.Context) {
		StorageError(c, errors.New("disk full"))
	})
	return r
}

func TestBindObject(t *testing.T) {
	r := newRouter()
	cases := []struct {
		body string
		want int
	}{
		{`{"contact_name":"A"}`, http.StatusOK},
		{`{}`, http.StatusOK},
		{`[1,2]`, http.StatusBadRequest},
		{`"x"`, http.StatusBadRequest},
		{`null`, http.StatusBadRequest},
		{``, http.StatusBadRequest},
		{`{"a":`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(tc.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("body %q: status=%d body=%s", tc.body, w.Code, w.Body.String())
		}
		if tc.want == http.StatusBadRequest {
			var got ErrorResponse
			_ = json.Unmarshal(w.Body.Bytes(), &got)
			if got.Success || got.Code != CodeInvalidRequest || got.Error == "" {
				t.Fatalf("body %q: unexpected error envelope %+v", tc.body, got)
			}
		}
	}
}

func TestBindObject_KeepsNumberLiterals(t *testing.T) {
	r := newRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo",
		bytes.NewBufferString(`{"contact_phone":12345678901234567,"total":1.0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if got := w.Body.String(); got != `{"echo":{"contact_phone":12345678901234567,"total":1.0},"success":true}` {
		t.Fatalf("body=%s", got)
	}
}

func TestStorageError_Codes(t *testing.T) {
	r := newRouter()
	for path, want := range map[string]struct {
		status int
		code   string
	}{
		"/broken": {http.StatusServiceUnavailable, CodeStorageUnavailable},
		"/write":  {http.StatusInternalServerError, CodeStorageError},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		var got ErrorResponse
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if w.Code != want.status || got.Code != want.code {
			t.Fatalf("%s: status=%d body=%s", path, w.Code, w.Body.String())
		}
	}
}

func TestRequestID_EchoedOrGenerated(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(`{}`))
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc" {
		t.Fatalf("rid=%q, want abc", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(`{}`)))
	if got := w.Header().Get(RequestIDHeader); len(got) != 36 {
		t.Fatalf("generated rid=%q", got)
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	r := newRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
	req.Header.Set("Origin", "http://shop.test")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://shop.test" {
		t.Fatalf("allow-origin=%q status=%d", got, w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/echo", nil)
	req.Header.Set("Origin", "http://evil.test")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign origin: status=%d", w.Code)
	}
}
