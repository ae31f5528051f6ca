package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type signupForm struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Age      int    `json:"age" binding:"omitempty,gte=0"`
}

func bindBody(t *testing.T, body string) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var form signupForm
	return Bind(c, &form)
}

func TestBind(t *testing.T) {
	Setup()

	t.Run("ValidBodyReturnsNil", func(t *testing.T) {
		fields := bindBody(t, `{"email":"siti@example.com","password":"longenough"}`)
		if fields != nil {
			t.Errorf("unexpected field errors: %v", fields)
		}
	})

	t.Run("MissingFieldsKeyedByJSONTag", func(t *testing.T) {
		fields := bindBody(t, `{}`)
		if fields == nil {
			t.Fatal("expected field errors")
		}
		if _, ok := fields["email"]; !ok {
			t.Errorf("missing email error, got %v", fields)
		}
		if _, ok := fields["password"]; !ok {
			t.Errorf("missing password error, got %v", fields)
		}
		if _, ok := fields["Email"]; ok {
			t.Error("field keyed by struct name instead of json tag")
		}
	})

	t.Run("TranslatedMessageIsReadable", func(t *testing.T) {
		fields := bindBody(t, `{"email":"not-an-email","password":"longenough"}`)
		if fields == nil {
			t.Fatal("expected field errors")
		}
		msg := fields["email"]
		if msg == "" || strings.Contains(msg, "Key:") {
			t.Errorf("untranslated validator message: %q", msg)
		}
	})

	t.Run("ShortPasswordRejected", func(t *testing.T) {
		fields := bindBody(t, `{"email":"siti@example.com","password":"short"}`)
		if _, ok := fields["password"]; !ok {
			t.Errorf("expected password error, got %v", fields)
		}
	})

	t.Run("MalformedJSONReportsDetail", func(t *testing.T) {
		fields := bindBody(t, `{"email": `)
		if fields == nil {
			t.Fatal("expected errors for malformed body")
		}
		if _, ok := fields["detail"]; !ok {
			t.Errorf("expected detail key, got %v", fields)
		}
	})
}
