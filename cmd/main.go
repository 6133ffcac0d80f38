package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getAttemptHandler "github.com/HarsHvardhnn/centrum-booking-service/internal/api/handlers/get_attempt"
	getAvailableSlotsHandler "github.com/HarsHvardhnn/centrum-booking-service/internal/api/handlers/get_available_slots"
	getNextAvailableHandler "github.com/HarsHvardhnn/centrum-booking-service/internal/api/handlers/get_next_available"
	getWeekHandler "github.com/HarsHvardhnn/centrum-booking-service/internal/api/handlers/get_week"
	listAttemptsHandler "github.com/HarsHvardhnn/centrum-booking-service/internal/api/handlers/list_attempts"
	submitBookingHandler "github.com/HarsHvardhnn/centrum-booking-service/internal/api/handlers/submit_booking"
	"github.com/HarsHvardhnn/centrum-booking-service/internal/api/middleware"
	"github.com/HarsHvardhnn/centrum-booking-service/internal/config"
	journalRepo "github.com/HarsHvardhnn/centrum-booking-service/internal/infra/storage/journal"
	clinicAPIClient "github.com/HarsHvardhnn/centrum-booking-service/internal/integrations/clinicapi"
	recaptchaClient "github.com/HarsHvardhnn/centrum-booking-service/internal/integrations/recaptcha"
	attemptsService "github.com/HarsHvardhnn/centrum-booking-service/internal/service/attempts"
	getAvailableSlotsUC "github.com/HarsHvardhnn/centrum-booking-service/internal/usecase/get_available_slots"
	getNextAvailableUC "github.com/HarsHvardhnn/centrum-booking-service/internal/usecase/get_next_available"
	getWeekUC "github.com/HarsHvardhnn/centrum-booking-service/internal/usecase/get_week"
	submitBookingUC "github.com/HarsHvardhnn/centrum-booking-service/internal/usecase/submit_booking"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/dbmetrics"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/logger"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/metrics"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting centrum-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// The collector always exists; cfg.Metrics.Enabled gates the HTTP
	// middleware, the /metrics endpoint and the pool stats goroutine.
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, metricsCollector)
	}

	clinicClient := clinicAPIClient.NewClient(
		cfg.ClinicAPI.URL,
		time.Duration(cfg.ClinicAPI.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	verifier := recaptchaClient.NewClient(
		cfg.Recaptcha.VerifyURL,
		cfg.Recaptcha.InvisibleSecret,
		cfg.Recaptcha.VisibleSecret,
		cfg.Recaptcha.ScoreThreshold,
		time.Duration(cfg.Recaptcha.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ClinicAPI=%s timeout=%ds)",
		cfg.ClinicAPI.URL, cfg.ClinicAPI.Timeout)

	journalRepository := journalRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	attemptsSvc := attemptsService.NewService(journalRepository, log)

	getWeekUseCase := getWeekUC.NewUseCase(log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(clinicClient, log)
	getNextAvailableUseCase := getNextAvailableUC.NewUseCase(clinicClient, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		clinicClient,
		verifier,
		journalRepository,
		txMgr,
		cfg.Recaptcha.Action,
		metricsCollector,
		log,
	)

	getWeek := getWeekHandler.NewHandler(getWeekUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getNextAvailable := getNextAvailableHandler.NewHandler(getNextAvailableUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getAttempt := getAttemptHandler.NewHandler(attemptsSvc, log)
	listAttempts := listAttemptsHandler.NewHandler(attemptsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public booking flow.
	api.HandleFunc("/booking/week", getWeek.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/next-available", getNextAvailable.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/book", submitBooking.Handle).Methods(http.MethodPost)

	// Reception reconciliation, behind the shared key.
	reception := api.PathPrefix("").Subrouter()
	reception.Use(middleware.ReceptionAuth(cfg.Reception.APIKey))
	reception.HandleFunc("/appointments/attempts/{attemptId}", getAttempt.Handle).Methods(http.MethodGet)
	reception.HandleFunc("/doctors/{doctorId}/attempts", listAttempts.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
