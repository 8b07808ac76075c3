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
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/justforyou-nail/booking-service/internal/api/handlers/cancel_appointment"
	confirmBookingHandler "github.com/justforyou-nail/booking-service/internal/api/handlers/confirm_booking"
	getAppointmentsHandler "github.com/justforyou-nail/booking-service/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/justforyou-nail/booking-service/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/justforyou-nail/booking-service/internal/api/handlers/get_catalog"
	getSessionHandler "github.com/justforyou-nail/booking-service/internal/api/handlers/get_session"
	resetSessionHandler "github.com/justforyou-nail/booking-service/internal/api/handlers/reset_session"
	selectDateHandler "github.com/justforyou-nail/booking-service/internal/api/handlers/select_date"
	selectServiceHandler "github.com/justforyou-nail/booking-service/internal/api/handlers/select_service"
	selectStylistHandler "github.com/justforyou-nail/booking-service/internal/api/handlers/select_stylist"
	selectTimeHandler "github.com/justforyou-nail/booking-service/internal/api/handlers/select_time"
	startSessionHandler "github.com/justforyou-nail/booking-service/internal/api/handlers/start_session"
	stepBackHandler "github.com/justforyou-nail/booking-service/internal/api/handlers/step_back"
	"github.com/justforyou-nail/booking-service/internal/api/middleware"
	"github.com/justforyou-nail/booking-service/internal/availability"
	"github.com/justforyou-nail/booking-service/internal/catalog"
	"github.com/justforyou-nail/booking-service/internal/config"
	"github.com/justforyou-nail/booking-service/internal/domain"
	appointmentRepo "github.com/justforyou-nail/booking-service/internal/infra/storage/appointment"
	lineProfileClient "github.com/justforyou-nail/booking-service/internal/integrations/lineprofile"
	sheetStoreClient "github.com/justforyou-nail/booking-service/internal/integrations/sheetstore"
	appointmentsService "github.com/justforyou-nail/booking-service/internal/service/appointments"
	sessionsService "github.com/justforyou-nail/booking-service/internal/service/sessions"
	"github.com/justforyou-nail/booking-service/internal/session"
	confirmBookingUC "github.com/justforyou-nail/booking-service/internal/usecase/confirm_booking"
	getAvailableSlotsUC "github.com/justforyou-nail/booking-service/internal/usecase/get_available_slots"
	"github.com/justforyou-nail/booking-service/pkg/logger"
	"github.com/justforyou-nail/booking-service/pkg/metrics"
	"github.com/justforyou-nail/booking-service/pkg/types"
)

// appointmentStore is the union of the store methods the services and use
// cases consume. Both backends (Postgres repository, Apps Script sheet
// client) satisfy it, so the config switch below picks one concrete value.
type appointmentStore interface {
	ListAppointments(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	ListLeaves(ctx context.Context, date string) ([]domain.Leave, error)
	CreateAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	CancelAppointment(ctx context.Context, id string) error
}

type sessionStore interface {
	Get(ctx context.Context, id string) (*session.Session, error)
	Put(ctx context.Context, s *session.Session) error
	Update(ctx context.Context, id string, fn func(s *session.Session) error) (*session.Session, error)
	Delete(ctx context.Context, id string) error
}

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Load the service/stylist catalog
	cat, err := catalog.Load(cfg.Salon.CatalogFile)
	if err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	log.Info("Catalog loaded from %s (%d services, %d stylists)",
		cfg.Salon.CatalogFile, len(cat.Services()), len(cat.Stylists()))

	// Build the availability engine from the salon schedule
	openTime, err := types.NewTimeStringFromString(cfg.Salon.OpenTime)
	if err != nil {
		log.Fatal("Invalid salon open_time: %v", err)
	}
	lastSlotTime, err := types.NewTimeStringFromString(cfg.Salon.LastSlotTime)
	if err != nil {
		log.Fatal("Invalid salon last_slot_time: %v", err)
	}
	closedWeekday, err := domain.ParseWeekday(cfg.Salon.ClosedWeekday)
	if err != nil {
		log.Fatal("Invalid salon closed_weekday: %v", err)
	}
	engine := availability.NewEngine(cat, availability.Settings{
		OpenTime:            openTime,
		LastSlotTime:        lastSlotTime,
		SlotIntervalMinutes: cfg.Salon.SlotIntervalMinutes,
		ClosedWeekday:       closedWeekday,
	})
	log.Info("Slot grid: %s-%s every %d min, closed on %s",
		cfg.Salon.OpenTime, cfg.Salon.LastSlotTime, cfg.Salon.SlotIntervalMinutes, closedWeekday)

	// Pick the appointment store backend
	var store appointmentStore
	switch cfg.Storage.Backend {
	case "postgres":
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
		log.Info("Appointment store: postgres (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		store = appointmentRepo.NewRepository(db)

	case "sheets":
		sheetClient := sheetStoreClient.NewClient(
			cfg.Sheet.URL,
			time.Duration(cfg.Sheet.Timeout)*time.Second,
			log,
		)
		if sheetClient.Configured() {
			log.Info("Appointment store: sheets (url=%s, timeout=%ds)", cfg.Sheet.URL, cfg.Sheet.Timeout)
		} else {
			log.Warn("Appointment store: sheets URL not configured, running in simulation mode")
		}
		store = sheetClient
	}

	// Pick the session store backend
	sessionTTL := time.Duration(cfg.Sessions.TTLMinutes) * time.Minute
	var sessions sessionStore
	switch cfg.Sessions.Backend {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Session store: redis (addr=%s, db=%d, ttl=%dm)",
			cfg.Redis.Addr, cfg.Redis.DB, cfg.Sessions.TTLMinutes)

		sessions = session.NewRedisStore(redisClient, sessionTTL)

	case "memory":
		sessions = session.NewMemoryStore(sessionTTL)
		log.Info("Session store: in-memory (ttl=%dm)", cfg.Sessions.TTLMinutes)
	}

	// LINE profile client (optional)
	var lineClient sessionsService.LineProfileClient
	if cfg.Line.Enabled {
		lineClient = lineProfileClient.NewClient(
			cfg.Line.ProfileURL,
			time.Duration(cfg.Line.Timeout)*time.Second,
			log,
		)
		log.Info("LINE profile client initialized (url=%s, timeout=%ds)", cfg.Line.ProfileURL, cfg.Line.Timeout)
	} else {
		log.Info("LINE profile integration disabled, visitors get the default name %q", cfg.Salon.DefaultUserName)
	}

	// Initialize services
	sessionSvc := sessionsService.NewService(
		sessions,
		store,
		cat,
		engine,
		lineClient,
		cfg.Salon.DefaultUserName,
		log,
	)
	appointmentSvc := appointmentsService.NewService(store, cat, log)

	// Initialize use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(store, cat, engine, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(sessions, store, cat, engine, log)

	// Initialize handlers
	getCatalog := getCatalogHandler.NewHandler(cat, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	startSession := startSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	selectService := selectServiceHandler.NewHandler(sessionSvc, log)
	selectStylist := selectStylistHandler.NewHandler(sessionSvc, log)
	selectDate := selectDateHandler.NewHandler(sessionSvc, log)
	selectTime := selectTimeHandler.NewHandler(sessionSvc, log)
	stepBack := stepBackHandler.NewHandler(sessionSvc, log)
	resetSession := resetSessionHandler.NewHandler(sessionSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)

	// Set up the router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Catalog and slot availability
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Booking session flow
	api.HandleFunc("/sessions", startSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/service", selectService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/stylist", selectStylist.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/date", selectDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/time", selectTime.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/back", stepBack.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/reset", resetSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// Appointment lookup and cancellation
	api.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// Create the HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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
