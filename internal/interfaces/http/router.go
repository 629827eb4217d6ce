package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocktrack-api/internal/application/auth"
	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	TeamUC        *usecase.TeamUseCase
	LocationUC    *usecase.LocationUseCase
	ItemUC        *usecase.ItemUseCase
	TransactionUC *usecase.TransactionUseCase
	BillingUC     *usecase.BillingUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Todo lo que cuelga de un equipo vive
// bajo /api/teams/:teamId; la autorización por rol la resuelve cada caso de
// uso contra la membresía en base, no el router.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil del usuario autenticado
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.GetProfile)
	users.Put("/me", userHandler.UpdateProfile)
	users.Put("/me/password", userHandler.ChangePassword)

	// Equipos y membresías
	teams := protected.Group("/teams")
	teamHandler := NewTeamHandler(deps.TeamUC)
	teams.Post("/", teamHandler.Create)
	teams.Get("/", teamHandler.List)
	teams.Get("/:teamId", teamHandler.GetByID)
	teams.Put("/:teamId", teamHandler.Update)
	teams.Delete("/:teamId", teamHandler.Delete)
	teams.Get("/:teamId/members", teamHandler.ListMembers)
	teams.Put("/:teamId/members/:memberId", teamHandler.UpdateMemberRole)
	teams.Delete("/:teamId/members/:memberId", teamHandler.RemoveMember)

	// Ubicaciones (scoped al equipo)
	locationHandler := NewLocationHandler(deps.LocationUC)
	teams.Post("/:teamId/locations", locationHandler.Create)
	teams.Get("/:teamId/locations", locationHandler.List)
	teams.Put("/:teamId/locations/:locationId", locationHandler.Update)
	teams.Delete("/:teamId/locations/:locationId", locationHandler.Delete)

	// Artículos (scoped al equipo)
	itemHandler := NewItemHandler(deps.ItemUC)
	teams.Post("/:teamId/items", itemHandler.Create)
	teams.Get("/:teamId/items", itemHandler.List)
	teams.Get("/:teamId/items/:itemId", itemHandler.GetByID)
	teams.Put("/:teamId/items/:itemId", itemHandler.Update)
	teams.Delete("/:teamId/items/:itemId", itemHandler.Delete)

	// Ledger de stock (scoped al equipo)
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	teams.Post("/:teamId/transactions", transactionHandler.Apply)
	teams.Get("/:teamId/transactions", transactionHandler.List)
	teams.Delete("/:teamId/transactions/:transactionId", transactionHandler.Delete)

	// Facturación (scoped al equipo)
	billingHandler := NewBillingHandler(deps.BillingUC)
	teams.Get("/:teamId/billing/subscription", billingHandler.GetSubscription)
	teams.Post("/:teamId/billing/subscription/sync", billingHandler.SyncSubscription)
	teams.Post("/:teamId/billing/subscription/cancel", billingHandler.CancelSubscription)
}
