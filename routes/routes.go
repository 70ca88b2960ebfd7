package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akshu/controllers/auth"
	"akshu/controllers/contacts"
	"akshu/controllers/game"
	"akshu/controllers/payment"
	"akshu/controllers/photos"
	"akshu/controllers/wallet"
	"akshu/middlewares"
	"akshu/providers"
	"akshu/providers/storage"
	"akshu/repository"
	"akshu/services"
)

type Deps struct {
	DB       *gorm.DB
	Wallets  repository.WalletRepository
	Payments repository.PaymentRepository
	Game     *services.GameService
	Wallet   *services.WalletService
	Storage  storage.Client
	Razorpay providers.RazorpayClient
}

func Setup(app *fiber.App, deps Deps) {
	authHandler := auth.NewHandler(deps.DB, deps.Wallets)
	walletHandler := wallet.NewHandler(deps.Wallet)
	gameHandler := game.NewHandler(deps.Game)
	photoHandler := photos.NewHandler(deps.DB, deps.Storage)
	contactHandler := contacts.NewHandler(deps.DB)
	paymentHandler := payment.NewHandler(deps.Payments, deps.Razorpay)

	authRequired := middlewares.UserAuth(deps.DB)

	api := app.Group("/api")
	api.Get("/status", authHandler.Status)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authRequired, authHandler.Logout)

	api.Post("/upload", authRequired, photoHandler.Upload)
	api.Get("/photos", authRequired, photoHandler.List)
	api.Delete("/photos/:id", authRequired, photoHandler.Delete)

	api.Post("/contacts", authRequired, contactHandler.Create)
	api.Get("/contacts", authRequired, contactHandler.List)
	api.Delete("/contacts/:id", authRequired, contactHandler.Delete)
	api.Post("/import_vcf", authRequired, contactHandler.ImportVCF)

	walletRoutes := api.Group("/wallet", authRequired)
	walletRoutes.Get("/balance", walletHandler.Balance)

	gameRoutes := api.Group("/game", authRequired)
	gameRoutes.Post("/predict", gameHandler.Predict)
	gameRoutes.Get("/status", gameHandler.Status)
	gameRoutes.Post("/run_round", gameHandler.RunRound)

	paymentRoutes := api.Group("/payment", authRequired)
	paymentRoutes.Post("/create_order", paymentHandler.CreateOrder)
	paymentRoutes.Post("/verify", paymentHandler.Verify)
}
