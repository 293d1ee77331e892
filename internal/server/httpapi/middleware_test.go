package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkravets/libshelf/internal/server/auth"
)

func newAuthTestRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserIDKey)})
	})
	return router
}

func getWithHeader(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_ValidToken(t *testing.T) {
	secret := []byte(testSecret)
	router := newAuthTestRouter(secret)

	token, err := auth.GenerateToken("u-7", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	w := getWithHeader(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["user_id"] != "u-7" {
		t.Fatalf("expected bound user id in context, got %v", body)
	}
}

func TestRequireAuth_Rejections(t *testing.T) {
	secret := []byte(testSecret)
	router := newAuthTestRouter(secret)

	valid, err := auth.GenerateToken("u-7", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	expired, err := auth.GenerateToken("u-7", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	wrongKey, err := auth.GenerateToken("u-7", []byte("other-secret"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no scheme", valid},
		{"wrong scheme", "Basic " + valid},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
		{"tampered token", "Bearer " + valid + "x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := getWithHeader(router, tc.header)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
			// every rejection looks identical to the caller
			if body := decodeBody(t, w); body["error"] != "unauthorized" {
				t.Fatalf("unexpected body: %v", body)
			}
		})
	}
}
