package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stocktrack-api/internal/application/auth"
	"github.com/jhoicas/stocktrack-api/internal/application/authz"
	"github.com/jhoicas/stocktrack-api/internal/application/ledger"
	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
	"github.com/jhoicas/stocktrack-api/internal/infrastructure/postgres"
	infrastripe "github.com/jhoicas/stocktrack-api/internal/infrastructure/stripe"
	httpRouter "github.com/jhoicas/stocktrack-api/internal/interfaces/http"
	"github.com/jhoicas/stocktrack-api/pkg/config"
	"github.com/jhoicas/stocktrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyMemberRepo := postgres.NewCompanyMemberRepository(pool)
	teamRepo := postgres.NewTeamRepository(pool)
	teamMemberRepo := postgres.NewTeamMemberRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	transactionRepo := postgres.NewStockTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	gate := authz.NewGate(teamRepo, teamMemberRepo, userRepo)
	engine := ledger.NewEngine(txRunner)

	// Sin secret key el billing queda deshabilitado y los endpoints de
	// sincronización responden 503.
	var subscriptionProvider usecase.SubscriptionProvider
	if cfg.Stripe.SecretKey != "" {
		subscriptionProvider = infrastripe.NewBillingClient(cfg.Stripe.SecretKey)
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	teamUC := usecase.NewTeamUseCase(gate, teamRepo, teamMemberRepo, companyMemberRepo, txRunner, txRunner)
	locationUC := usecase.NewLocationUseCase(gate, locationRepo)
	itemUC := usecase.NewItemUseCase(gate, itemRepo, locationRepo)
	transactionUC := usecase.NewTransactionUseCase(gate, engine, transactionRepo)
	billingUC := usecase.NewBillingUseCase(gate, teamRepo, subscriptionProvider)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		TeamUC:        teamUC,
		LocationUC:    locationUC,
		ItemUC:        itemUC,
		TransactionUC: transactionUC,
		BillingUC:     billingUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("apagado del servidor HTTP")
	}
}
