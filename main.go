package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"akshu/database"
	"akshu/jobs"
	"akshu/providers"
	"akshu/providers/storage"
	"akshu/repository"
	"akshu/routes"
	"akshu/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	db := database.Connect()

	walletRepo := repository.NewWalletRepository(db)
	gameRepo := repository.NewGameRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	walletService := services.NewWalletService(walletRepo)
	gameService := services.NewGameService(gameRepo, walletRepo)

	photoStorage, err := storage.NewCloudinary()
	if err != nil {
		log.Printf("⚠️  Cloudinary initialization warning (check keys): %v", err)
		photoStorage = nil
	}

	host := os.Getenv("HOST")
	port := os.Getenv("PORT")

	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3000"
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // photo uploads
	})
	routes.Setup(app, routes.Deps{
		DB:       db,
		Wallets:  walletRepo,
		Payments: paymentRepo,
		Game:     gameService,
		Wallet:   walletService,
		Storage:  photoStorage,
		Razorpay: providers.NewRazorpay(),
	})
	jobs.StartGameScheduler(gameService, db)

	addr := fmt.Sprintf("%s:%s", host, port)
	log.Println("Server running at", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Panicf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Gracefully shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited cleanly")
}
