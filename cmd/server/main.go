package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"limpia/internal/api"
	"limpia/internal/app"
	"limpia/internal/auth"
	"limpia/internal/config"
	"limpia/internal/repository"
	"limpia/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config: " + err.Error())
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("opening database", zap.Error(err))
	}
	if err := db.Ping(); err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}

	if err := app.Migrate(context.Background(), db); err != nil {
		logger.Fatal("running migrations", zap.Error(err))
	}

	stripe.Key = cfg.StripeSecretKey

	staffRepo := repository.NewStaffRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	financeRepo := repository.NewFinanceRepository(db)
	jobRepo := repository.NewJobRepository(db)
	adminRepo := repository.NewAdminAuthRepository(db)

	stripeSvc := service.NewStripeService(cfg.StripeSuccessURL, cfg.StripeCancelURL)
	notifySvc := service.NewNotifyService(service.NotifyConfig{
		SendGridAPIKey:   cfg.SendGridAPIKey,
		SendGridFrom:     cfg.EmailFrom,
		TwilioAccountSID: cfg.TwilioAccountSID,
		TwilioAuthToken:  cfg.TwilioAuthToken,
		TwilioFromNumber: cfg.TwilioFromNumber,
	}, logger)

	staffSvc := service.NewStaffService(staffRepo, logger)
	bookingSvc := service.NewBookingService(bookingRepo, staffRepo, stripeSvc, notifySvc, logger)
	financeSvc := service.NewFinanceService(financeRepo, logger)
	payrollSvc := service.NewPayrollService(bookingRepo)
	jobSvc := service.NewJobService(jobRepo, notifySvc, logger)
	authSvc := service.NewAdminAuthService(adminRepo, cfg.JWTSecret)

	bookingHandler := api.NewBookingHandler(bookingSvc)
	staffHandler := api.NewStaffHandler(staffSvc)
	financeHandler := api.NewFinanceHandler(financeSvc)
	payrollHandler := api.NewPayrollHandler(payrollSvc)
	authHandler := api.NewAdminAuthHandler(authSvc)
	webhookHandler := api.NewStripeWebhookHandler(cfg.StripeWebhookSecret, bookingSvc, financeSvc, stripeSvc, logger)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	r.HandleFunc("/api/admin/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/stripe/webhook", webhookHandler.HandleWebhook).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(cfg.JWTSecret))
	admin.HandleFunc("/users", authHandler.CreateUserAdmin).Methods("POST")

	admin.HandleFunc("/availability", bookingHandler.CheckAvailability).Methods("GET")
	admin.HandleFunc("/availability/blocked", bookingHandler.BlockedDates).Methods("GET")

	admin.HandleFunc("/bookings", bookingHandler.CreateBooking).Methods("POST")
	admin.HandleFunc("/bookings", bookingHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings/{code}", bookingHandler.GetBooking).Methods("GET")
	admin.HandleFunc("/bookings/{code}", bookingHandler.UpdateBooking).Methods("PUT")
	admin.HandleFunc("/bookings/{code}", bookingHandler.CancelBooking).Methods("DELETE")
	admin.HandleFunc("/bookings/{code}/deposit", bookingHandler.CreateDeposit).Methods("POST")

	admin.HandleFunc("/staff", staffHandler.CreateStaff).Methods("POST")
	admin.HandleFunc("/staff", staffHandler.ListStaff).Methods("GET")
	admin.HandleFunc("/staff/{id}", staffHandler.GetStaff).Methods("GET")
	admin.HandleFunc("/staff/{id}", staffHandler.UpdateStaff).Methods("PUT")
	admin.HandleFunc("/staff/{id}", staffHandler.DeleteStaff).Methods("DELETE")
	admin.HandleFunc("/staff/{id}/availability", staffHandler.SetAvailability).Methods("PUT")

	admin.HandleFunc("/finances", financeHandler.CreateEntry).Methods("POST")
	admin.HandleFunc("/finances", financeHandler.ListEntries).Methods("GET")
	admin.HandleFunc("/finances/summary", financeHandler.GetSummary).Methods("GET")
	admin.HandleFunc("/finances/{id}", financeHandler.UpdateEntry).Methods("PUT")
	admin.HandleFunc("/finances/{id}", financeHandler.DeleteEntry).Methods("DELETE")

	admin.HandleFunc("/payroll", payrollHandler.GetReport).Methods("GET")

	c := cron.New()
	c.AddFunc("@hourly", func() {
		if err := jobSvc.CompleteFinishedBookings(); err != nil {
			logger.Error("completing finished bookings", zap.Error(err))
		}
	})
	c.AddFunc("0 17 * * *", func() {
		if err := jobSvc.SendDayBeforeReminders(); err != nil {
			logger.Error("sending reminders", zap.Error(err))
		}
	})
	c.Start()
	defer c.Stop()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "Stripe-Signature"}),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      cors(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
