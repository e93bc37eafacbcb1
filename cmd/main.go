package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/m04kA/SpaBookingService/internal/api/handlers"
	adminActionHandler "github.com/m04kA/SpaBookingService/internal/api/handlers/admin_action"
	adminLoginHandler "github.com/m04kA/SpaBookingService/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/SpaBookingService/internal/api/handlers/admin_logout"
	createBookingHandler "github.com/m04kA/SpaBookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SpaBookingService/internal/api/handlers/get_booking"
	getBookingSlipHandler "github.com/m04kA/SpaBookingService/internal/api/handlers/get_booking_slip"
	getDashboardHandler "github.com/m04kA/SpaBookingService/internal/api/handlers/get_dashboard"
	listActivityHandler "github.com/m04kA/SpaBookingService/internal/api/handlers/list_activity"
	listBookingsHandler "github.com/m04kA/SpaBookingService/internal/api/handlers/list_bookings"
	listMessagesHandler "github.com/m04kA/SpaBookingService/internal/api/handlers/list_messages"
	submitContactHandler "github.com/m04kA/SpaBookingService/internal/api/handlers/submit_contact"
	"github.com/m04kA/SpaBookingService/internal/api/middleware"
	"github.com/m04kA/SpaBookingService/internal/config"
	activityRepo "github.com/m04kA/SpaBookingService/internal/infra/storage/activity"
	adminRepo "github.com/m04kA/SpaBookingService/internal/infra/storage/admin"
	bookingRepo "github.com/m04kA/SpaBookingService/internal/infra/storage/booking"
	messageRepo "github.com/m04kA/SpaBookingService/internal/infra/storage/message"
	sessionRepo "github.com/m04kA/SpaBookingService/internal/infra/storage/session"
	"github.com/m04kA/SpaBookingService/internal/integrations/email"
	"github.com/m04kA/SpaBookingService/internal/integrations/events"
	"github.com/m04kA/SpaBookingService/internal/integrations/sms"
	activityService "github.com/m04kA/SpaBookingService/internal/service/activity"
	authService "github.com/m04kA/SpaBookingService/internal/service/auth"
	bookingsService "github.com/m04kA/SpaBookingService/internal/service/bookings"
	dashboardService "github.com/m04kA/SpaBookingService/internal/service/dashboard"
	messagesService "github.com/m04kA/SpaBookingService/internal/service/messages"
	"github.com/m04kA/SpaBookingService/internal/service/notifications"
	"github.com/m04kA/SpaBookingService/internal/service/slip"
	createBookingUC "github.com/m04kA/SpaBookingService/internal/usecase/create_booking"
	submitContactUC "github.com/m04kA/SpaBookingService/internal/usecase/submit_contact"
	"github.com/m04kA/SpaBookingService/pkg/dbmetrics"
	"github.com/m04kA/SpaBookingService/pkg/logger"
	"github.com/m04kA/SpaBookingService/pkg/metrics"
	"github.com/m04kA/SpaBookingService/pkg/txmanager"
)

func main() {
	// .env необязателен: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	configPath := os.Getenv("SPA_CONFIG")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SpaBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Коллекторы создаются всегда (счетчики уведомлений и приема броней),
	// наружу метрики отдаются только если включены
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db)
	}

	// Репозитории и transaction manager
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	messageRepository := messageRepo.NewRepository(wrappedDB)
	activityRepository := activityRepo.NewRepository(wrappedDB)
	adminRepository := adminRepo.NewRepository(wrappedDB)
	sessionRepository := sessionRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Каналы доставки уведомлений
	emailClient := email.NewClient(
		cfg.Email.BaseURL,
		cfg.Email.APIKey,
		cfg.Email.From,
		time.Duration(cfg.Email.Timeout)*time.Second,
		log,
	)
	smsClient := sms.NewClient(
		cfg.SMS.BaseURL,
		cfg.SMS.APIKey,
		cfg.SMS.Username,
		cfg.SMS.SenderID,
		time.Duration(cfg.SMS.Timeout)*time.Second,
		log,
	)
	log.Info("Notification sinks initialized (email live=%t, sms live=%t)", cfg.Email.APIKey != "", cfg.SMS.APIKey != "")

	// Публикация событий (опционально); интерфейс остается nil, если выключено
	var publisher notifications.EventPublisher
	if cfg.Events.Enabled {
		eventsPublisher, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to event broker: %v", err)
		}
		defer eventsPublisher.Close()
		publisher = eventsPublisher
		log.Info("Domain events are published to exchange %s", cfg.Events.Exchange)
	}

	renderer, err := notifications.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse notification templates: %v", err)
	}

	// Инициализируем сервисы
	activitySvc := activityService.NewService(activityRepository, log)
	dispatcher := notifications.NewDispatcher(
		renderer,
		emailClient,
		smsClient,
		publisher,
		metricsCollector,
		notifications.Business{
			Name:      cfg.Business.Name,
			ShortName: cfg.Business.ShortName,
			Phone:     cfg.Business.Phone,
			Address:   cfg.Business.Address,
			Social:    cfg.Business.Social,
		},
		log,
	)
	slipGenerator := slip.NewGenerator(slip.Header{
		Name:    cfg.Business.Name,
		Phone:   cfg.Business.Phone,
		Address: cfg.Business.Address,
		Social:  cfg.Business.Social,
	})
	bookingSvc := bookingsService.NewService(bookingRepository, slipGenerator, dispatcher, activitySvc, log)
	messageSvc := messagesService.NewService(messageRepository, activitySvc, log)
	dashboardSvc := dashboardService.NewService(bookingRepository, messageRepository, txMgr, cfg.Location(), log)
	tokens := authService.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionDuration())
	authSvc := authService.NewService(adminRepository, sessionRepository, tokens, activitySvc, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		dispatcher,
		activitySvc,
		metricsCollector,
		createBookingUC.NewReferenceGenerator(cfg.Business.ReferencePrefix),
		cfg.Location(),
		log,
	)
	submitContactUseCase := submitContactUC.NewUseCase(
		messageRepository,
		dispatcher,
		activitySvc,
		cfg.Business.AdminEmail,
		log,
	)

	// Инициализируем handlers
	cookie := handlers.SessionCookie{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure}

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	submitContact := submitContactHandler.NewHandler(submitContactUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, cookie, log)
	adminLogout := adminLogoutHandler.NewHandler(authSvc, cookie, log)
	adminAction := adminActionHandler.NewHandler(bookingSvc, messageSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingSlip := getBookingSlipHandler.NewHandler(bookingSvc, log)
	listMessages := listMessagesHandler.NewHandler(messageSvc, log)
	listActivity := listActivityHandler.NewHandler(activitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondMethodNotAllowed(w)
	})

	r.Use(middleware.RequestID(log))
	r.Use(middleware.ClientIP(cfg.Server.TrustProxy))
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (формы сайта)
	// ============================================================

	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/contact", submitContact.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют сессию администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(authSvc, cfg.Auth.CookieName, log))

	admin.HandleFunc("/logout", adminLogout.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/actions", adminAction.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/slip", getBookingSlip.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/messages", listMessages.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/activity", listActivity.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
