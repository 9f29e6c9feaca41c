package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/demilade/hostpay/docs"
	"github.com/demilade/hostpay/internal/audit"
	"github.com/demilade/hostpay/internal/commission"
	"github.com/demilade/hostpay/internal/config"
	"github.com/demilade/hostpay/internal/database"
	"github.com/demilade/hostpay/internal/dispute"
	"github.com/demilade/hostpay/internal/notification"
	"github.com/demilade/hostpay/internal/payment"
	"github.com/demilade/hostpay/internal/payout"
	"github.com/demilade/hostpay/internal/realtor"
	"github.com/demilade/hostpay/internal/report"
	"github.com/demilade/hostpay/internal/settlement"
	mw "github.com/demilade/hostpay/pkg/middleware"
)

// @title HostPay Escrow API
// @version 1.0
// @description Escrow commission and settlement engine for short-let bookings
// @BasePath /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database successfully")

	// Payment feature
	paymentRepo := payment.NewRepository(db)
	paymentService := payment.NewService(paymentRepo)
	paymentHandler := payment.NewHandler(paymentService, cfg.DefaultCurrency)

	// Settlement orchestration
	settlementService := settlement.NewService(paymentRepo)
	settlementHandler := settlement.NewHandler(settlementService)

	// Audit log and realtor directory
	auditRepo := audit.NewRepository(db)
	realtorRepo := realtor.NewRepository(db)

	// Notifications (in-app + payout email)
	mailer := notification.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo, realtorRepo, mailer)
	notificationHandler := notification.NewHandler(notificationService)

	// Payout processing
	payoutService := payout.NewService(paymentRepo, auditRepo, notificationService)
	payoutHandler := payout.NewHandler(payoutService)

	// Reporting
	reportService := report.NewService(paymentRepo, cfg.DefaultCurrency)
	reportHandler := report.NewHandler(reportService)

	// Pure calculators exposed for booking previews and admin tooling
	commissionHandler := commission.NewHandler(cfg.DefaultCurrency)
	disputeHandler := dispute.NewHandler(cfg.DefaultCurrency)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.IdentityMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/payments", paymentHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/payouts", payoutHandler.Routes())
		r.Mount("/reports", reportHandler.Routes())
		r.Mount("/commissions", commissionHandler.Routes())
		r.Mount("/disputes", disputeHandler.Routes())
		r.Mount("/notifications", notificationHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
