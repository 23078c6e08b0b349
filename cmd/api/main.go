// @title           CRM API
// @version         1.0
// @description     API de gestión comercial: pipeline de leads, dashboard y usuarios.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhoicas/crm-api/docs"
	"github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/application/authsvc"
	"github.com/jhoicas/crm-api/internal/application/session"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/infrastructure/pdf"
	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
	httpiface "github.com/jhoicas/crm-api/internal/interfaces/http"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("no se pudieron aplicar las migraciones")
	}

	// Repositorios
	accountRepo := postgres.NewAccountRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)

	// Servicios y casos de uso
	auth := authsvc.NewService(accountRepo, log)
	registry := session.NewRegistry()
	gate := session.NewGate(auth, userRepo, companyRepo, leadRepo, registry, session.Config{
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		JWTExpMinutes: cfg.JWT.Expiration,
		NoticeTTL:     time.Duration(cfg.Session.NoticeTTLSeconds) * time.Second,
	}, log)
	userUC := usecase.NewUserUseCase(userRepo, companyRepo, auth, log)
	dashboardUC := analytics.NewDashboardUseCase()

	// Auditoría del ciclo de vida de sesiones
	go func() {
		for ev := range gate.Events() {
			log.Debug().Str("tipo", ev.Type).Str("user_id", ev.UserID).Msg("evento de sesión")
		}
	}()

	app := httpiface.NewRouter(httpiface.Handlers{
		Auth:      httpiface.NewAuthHandler(gate, userUC, log),
		Leads:     httpiface.NewLeadHandler(gate, userUC, pdf.NewLeadsReport()),
		Users:     httpiface.NewUserHandler(userUC),
		Dashboard: httpiface.NewDashboardHandler(gate, dashboardUC),
		Notices:   httpiface.NewNoticeHandler(gate),
	}, cfg.JWT.Secret, log)

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("el servidor terminó con error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado con error")
	}
}
