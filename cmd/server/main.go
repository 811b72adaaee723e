package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"secondlook/internal/auth"
	"secondlook/internal/config"
	"secondlook/internal/handler"
	"secondlook/internal/middleware"
	"secondlook/internal/payment"
	"secondlook/internal/repository/postgres"
	"secondlook/internal/service"
	serviceauth "secondlook/internal/service/auth"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	categoryRepo := postgres.NewCategoryRepository(repoConfig)
	productRepo := postgres.NewProductRepository(repoConfig)
	orderRepo := postgres.NewOrderRepository(repoConfig)
	paymentRepo := postgres.NewPaymentRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Token issuer/verifier. Tokens bind the email only; roles are
	// re-read per request by the role gate below.
	jwtManager, err := auth.NewJWTManager(cfg.JWTSecret, userRepo, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT manager: %v", err)
	}

	// Role gate reading live roles from the user store
	roleGate := serviceauth.NewLiveRoleGate(userRepo)

	// Payment processor bridge
	intentCreator, err := payment.NewStripeIntentCreator(cfg.StripeSecretKey, logger)
	if err != nil {
		log.Fatalf("Failed to create payment bridge: %v", err)
	}

	// Create services
	userService := service.NewUserService(userRepo, roleGate, logger)
	productService := service.NewProductService(productRepo, roleGate, logger)
	orderService := service.NewOrderService(orderRepo, roleGate, logger)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, productRepo, txManager, intentCreator, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(jwtManager, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	categoryHandler := handler.NewCategoryHandler(categoryRepo, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	paymentHandler := handler.NewPaymentHandler(paymentService, logger)

	logger.Info("services initialized")

	// Protected routes carry bearer-token verification; role and
	// ownership checks run in the services against live data.
	requireAuth := middleware.RequireAuth(jwtManager)

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Liveness
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Credentials
	mux.HandleFunc("GET /jwt", authHandler.IssueToken)

	// Users
	mux.HandleFunc("POST /users", userHandler.Register)
	mux.HandleFunc("GET /users/{email}", userHandler.GetByEmail)
	mux.HandleFunc("GET /users/admin/{email}", userHandler.IsAdmin)
	mux.HandleFunc("GET /users/buyers/{email}", userHandler.IsBuyer)
	mux.HandleFunc("GET /users/sellers/{email}", userHandler.IsSeller)
	mux.Handle("PUT /users/admin/{id}", requireAuth(http.HandlerFunc(userHandler.Verify)))
	mux.HandleFunc("GET /buyers", userHandler.ListBuyers)
	mux.HandleFunc("GET /sellers", userHandler.ListSellers)
	mux.Handle("DELETE /buyers/{id}", requireAuth(http.HandlerFunc(userHandler.Delete)))
	mux.Handle("DELETE /sellers/{id}", requireAuth(http.HandlerFunc(userHandler.Delete)))

	// Categories
	mux.HandleFunc("GET /category", categoryHandler.List)
	mux.HandleFunc("GET /category/{id}", productHandler.ListByCategory)

	// Products
	mux.HandleFunc("GET /advertisedProducts", productHandler.ListAdvertised)
	mux.HandleFunc("GET /reportedProducts", productHandler.ListReported)
	mux.HandleFunc("GET /products/recent", productHandler.ListRecent)
	mux.HandleFunc("GET /product/{id}", productHandler.Get)
	mux.Handle("POST /product", requireAuth(http.HandlerFunc(productHandler.Create)))
	mux.Handle("GET /sellers/products", requireAuth(http.HandlerFunc(productHandler.ListOwn)))
	mux.Handle("PUT /seller/products/{id}", requireAuth(http.HandlerFunc(productHandler.Advertise)))
	mux.Handle("DELETE /seller/products/{id}", requireAuth(http.HandlerFunc(productHandler.DeleteOwn)))
	mux.HandleFunc("PUT /product/{id}", productHandler.Report)
	mux.Handle("PUT /admin/product/{id}", requireAuth(http.HandlerFunc(productHandler.ClearReport)))
	mux.Handle("DELETE /admin/products/{id}", requireAuth(http.HandlerFunc(productHandler.DeleteAny)))

	// Orders
	mux.HandleFunc("POST /orders", orderHandler.Create)
	mux.Handle("GET /orders", requireAuth(http.HandlerFunc(orderHandler.ListOwn)))
	mux.HandleFunc("GET /orders/{id}", orderHandler.Get)

	// Payments
	mux.HandleFunc("POST /create-payment-intent", paymentHandler.CreateIntent)
	mux.Handle("POST /payments", requireAuth(http.HandlerFunc(paymentHandler.Record)))

	// Build middleware chain
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)

	// CORS - must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
