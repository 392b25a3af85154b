// FILE: internal/pkg/serverutils/jwt_middleware_test.go
package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "ops",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestJwtMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New()
	app.Get("/guarded", JwtMiddleware, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("admin_subject").(string))
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"not a bearer token", "Basic abc", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + signedToken(t, "other-secret", "admin"), fiber.StatusUnauthorized},
		{"non-admin role", "Bearer " + signedToken(t, "test-secret", "viewer"), fiber.StatusForbidden},
		{"admin role", "Bearer " + signedToken(t, "test-secret", "admin"), fiber.StatusOK},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/guarded", nil)
		if tt.authHeader != "" {
			req.Header.Set("Authorization", tt.authHeader)
		}
		resp, err := app.Test(req)
		assert.NoError(t, err, tt.name)
		assert.Equal(t, tt.wantStatus, resp.StatusCode, tt.name)
	}
}
