package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	Data  map[string]string `json:"data"`
	Error *ErrorBody        `json:"error"`
	Meta  Metadata          `json:"metadata"`
}

func serve(t *testing.T, middleware []gin.HandlerFunc, handler gin.HandlerFunc, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware...)
	r.GET("/", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	return w, env
}

func TestSuccessEnvelope(t *testing.T) {
	w, env := serve(t, nil, func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"greeting": "hello"})
	}, nil)

	if w.Code != http.StatusOK {
		t.Errorf("status %d, want 200", w.Code)
	}
	if env.Data["greeting"] != "hello" {
		t.Errorf("data = %v", env.Data)
	}
	if env.Error != nil {
		t.Errorf("error present on success: %+v", env.Error)
	}
	if env.Meta.RequestID == "" {
		t.Error("request_id missing from metadata")
	}
	if env.Meta.Timestamp == "" {
		t.Error("timestamp missing from metadata")
	}
}

func TestFailEnvelope(t *testing.T) {
	w, env := serve(t, nil, func(c *gin.Context) {
		Fail(c, http.StatusNotFound, ErrNotFound)
	}, nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", w.Code)
	}
	if env.Error == nil {
		t.Fatal("error body missing")
	}
	if env.Error.Code != ErrNotFound {
		t.Errorf("code = %s, want %s", env.Error.Code, ErrNotFound)
	}
	if env.Error.Message == "" {
		t.Error("error message empty")
	}
	if env.Data != nil {
		t.Errorf("data = %v, want null", env.Data)
	}
}

func TestFailWithFields(t *testing.T) {
	_, env := serve(t, nil, func(c *gin.Context) {
		FailWithFields(c, http.StatusBadRequest, ErrValidation, map[string]string{
			"email": "email is required",
		})
	}, nil)

	if env.Error == nil {
		t.Fatal("error body missing")
	}
	if env.Error.Fields["email"] != "email is required" {
		t.Errorf("fields = %v", env.Error.Fields)
	}
}

func TestRequestIDPropagation(t *testing.T) {
	t.Run("EchoesInboundHeader", func(t *testing.T) {
		w, env := serve(t, []gin.HandlerFunc{RequestIDMiddleware()}, func(c *gin.Context) {
			Success(c, http.StatusOK, gin.H{})
		}, map[string]string{"X-Request-ID": "req-abc-123"})

		if env.Meta.RequestID != "req-abc-123" {
			t.Errorf("metadata request_id = %s", env.Meta.RequestID)
		}
		if got := w.Header().Get("X-Request-ID"); got != "req-abc-123" {
			t.Errorf("response header = %s", got)
		}
	})

	t.Run("GeneratesWhenAbsent", func(t *testing.T) {
		w, env := serve(t, []gin.HandlerFunc{RequestIDMiddleware()}, func(c *gin.Context) {
			Success(c, http.StatusOK, gin.H{})
		}, nil)

		if env.Meta.RequestID == "" {
			t.Error("request_id not generated")
		}
		if w.Header().Get("X-Request-ID") != env.Meta.RequestID {
			t.Error("header and metadata request IDs differ")
		}
	})
}
