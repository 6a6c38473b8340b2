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

	createReservationHandler "github.com/babypavshiy/GameClubBooking/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/babypavshiy/GameClubBooking/internal/api/handlers/delete_reservation"
	getAvailabilityHandler "github.com/babypavshiy/GameClubBooking/internal/api/handlers/get_availability"
	getReservationHandler "github.com/babypavshiy/GameClubBooking/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/babypavshiy/GameClubBooking/internal/api/handlers/list_reservations"
	payReservationHandler "github.com/babypavshiy/GameClubBooking/internal/api/handlers/pay_reservation"
	updateReservationHandler "github.com/babypavshiy/GameClubBooking/internal/api/handlers/update_reservation"
	"github.com/babypavshiy/GameClubBooking/internal/api/middleware"
	"github.com/babypavshiy/GameClubBooking/internal/config"
	paymentRepo "github.com/babypavshiy/GameClubBooking/internal/infra/storage/payment"
	reservationRepo "github.com/babypavshiy/GameClubBooking/internal/infra/storage/reservation"
	stationRepo "github.com/babypavshiy/GameClubBooking/internal/infra/storage/station"
	paymentServiceClient "github.com/babypavshiy/GameClubBooking/internal/integrations/paymentservice"
	userServiceClient "github.com/babypavshiy/GameClubBooking/internal/integrations/userservice"
	reservationsService "github.com/babypavshiy/GameClubBooking/internal/service/reservations"
	createReservationUC "github.com/babypavshiy/GameClubBooking/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/babypavshiy/GameClubBooking/internal/usecase/get_availability"
	payReservationUC "github.com/babypavshiy/GameClubBooking/internal/usecase/pay_reservation"
	updateReservationUC "github.com/babypavshiy/GameClubBooking/internal/usecase/update_reservation"
	"github.com/babypavshiy/GameClubBooking/pkg/dbmetrics"
	"github.com/babypavshiy/GameClubBooking/pkg/logger"
	"github.com/babypavshiy/GameClubBooking/pkg/metrics"
	"github.com/babypavshiy/GameClubBooking/pkg/simpletxmanager"
	"github.com/babypavshiy/GameClubBooking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting GameClubBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		cfg.PaymentService.AccountID,
		cfg.PaymentService.SecretKey,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds, PaymentService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout, cfg.PaymentService.URL, cfg.PaymentService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		stationRepository     *stationRepo.Repository
		paymentRepository     *paymentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		stationRepository = stationRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		stationRepository = stationRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		userClient,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(reservationRepository, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		stationRepository,
		txMgr,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		stationRepository,
		txMgr,
		log,
	)
	payReservationUseCase := payReservationUC.NewUseCase(
		reservationRepository,
		paymentRepository,
		paymentClient,
		cfg.PaymentService.ReturnURL,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	payReservation := payReservationHandler.NewHandler(payReservationUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты на дату: фиксированный путь регистрируется раньше
	// маршрута с параметром, чтобы "availability" не матчился как ID
	api.HandleFunc("/reservations/availability/", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Коллекционные маршруты регистрируются в обеих формах,
	// со слэшем и без: клиенты исторически ходят на обе

	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/", createReservation.Handle).Methods(http.MethodPost)

	// Список всех бронирований (только администраторы и сотрудники)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/", listReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)

	// Частичное обновление бронирования
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", updateReservation.Handle).Methods(http.MethodPatch)

	// Удаление бронирования
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Оплата бронирования
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/payment", payReservation.Handle).Methods(http.MethodPost)

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
