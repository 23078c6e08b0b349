package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// swaggerFile documento OpenAPI generado; se monta la UI solo si existe.
const swaggerFile = "./docs/swagger.json"

// Handlers agrupa los handlers que monta el router.
type Handlers struct {
	Auth      *AuthHandler
	Leads     *LeadHandler
	Users     *UserHandler
	Dashboard *DashboardHandler
	Notices   *NoticeHandler
}

// NewRouter arma la aplicación fiber con middleware y rutas.
func NewRouter(h Handlers, jwtSecret string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "crm-api",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/register", h.Auth.Register)
	auth.Post("/logout", AuthMiddleware(jwtSecret), h.Auth.Logout)

	protected := api.Group("", AuthMiddleware(jwtSecret))
	protected.Get("/me", h.Auth.Me)

	leads := protected.Group("/leads")
	leads.Get("/", h.Leads.List)
	leads.Post("/", h.Leads.Create)
	leads.Get("/export/csv", h.Leads.ExportCSV)
	leads.Get("/export/pdf", h.Leads.ExportPDF)
	leads.Put("/:id", h.Leads.Update)
	leads.Patch("/:id/stage", h.Leads.UpdateStage)
	leads.Delete("/:id", h.Leads.Delete)

	users := protected.Group("/users")
	users.Get("/", h.Users.List)
	users.Put("/:id", RequireRole(entity.RoleAdmin), h.Users.Update)

	protected.Get("/dashboard", h.Dashboard.Get)

	notices := protected.Group("/notices")
	notices.Get("/", h.Notices.List)
	notices.Delete("/:id", h.Notices.Dismiss)

	log.Info().Msg("rutas registradas")
	return app
}
