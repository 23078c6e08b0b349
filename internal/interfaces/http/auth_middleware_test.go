package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func testApp(roles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{AuthMiddleware(testSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    GetUserID(c),
			"company_id": GetCompanyID(c),
			"role":       GetRole(c),
		})
	})
	app.Get("/protegida", handlers...)
	return app
}

func tokenFor(t *testing.T, role string) string {
	return tokenForUser(t, "u1", role)
}

func tokenForUser(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, userID, "c1", role, "crm-api-test", 60)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_SinToken(t *testing.T) {
	app := testApp()
	req := httptest.NewRequest("GET", "/protegida", nil)

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := testApp()
	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer basura")

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := testApp()
	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, entity.RoleVendedor))

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_Matriz(t *testing.T) {
	cases := []struct {
		name     string
		required []string
		role     string
		want     int
	}{
		{"admin accede a ruta de admin", []string{entity.RoleAdmin}, entity.RoleAdmin, fiber.StatusOK},
		{"vendedor no accede a ruta de admin", []string{entity.RoleAdmin}, entity.RoleVendedor, fiber.StatusForbidden},
		{"cualquiera de la lista accede", []string{entity.RoleAdmin, entity.RoleVendedor}, entity.RoleVendedor, fiber.StatusOK},
		{"rol desconocido no accede", []string{entity.RoleAdmin}, "superusuario", fiber.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := testApp(tc.required...)
			req := httptest.NewRequest("GET", "/protegida", nil)
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, tc.role))

			resp, err := app.Test(req)

			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
