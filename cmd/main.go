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

	createReservationHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/create_reservation"
	createServiceHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/create_service"
	createStaffDayOffHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/create_staff_day_off"
	deleteReservationHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/delete_reservation"
	deleteServiceHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/delete_service"
	deleteSpecialDayHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/delete_special_day"
	deleteStaffDayOffHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/delete_staff_day_off"
	deleteStaffWeeklyDayOffHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/delete_staff_weekly_day_off"
	deleteStaffWindowHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/delete_staff_window"
	getDaySlotsHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/get_day_slots"
	getDaysOffOverviewHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/get_days_off_overview"
	getReservationHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/get_reservation"
	getReservationsHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/get_reservations"
	getScheduleHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/get_schedule"
	getServicesHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/get_services"
	getStaffAvailabilityHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/get_staff_availability"
	setAvailableDatesHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/set_available_dates"
	updateReservationServiceHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/update_reservation_service"
	updateReservationStatusHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/update_reservation_status"
	updateServiceHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/update_service"
	updateWeekdayHoursHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/update_weekday_hours"
	upsertSpecialDayHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/upsert_special_day"
	upsertStaffWeeklyDayOffHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/upsert_staff_weekly_day_off"
	upsertStaffWindowHandler "github.com/houseofbeauty/appointment-service/internal/api/handlers/upsert_staff_window"
	"github.com/houseofbeauty/appointment-service/internal/api/middleware"
	"github.com/houseofbeauty/appointment-service/internal/availability"
	"github.com/houseofbeauty/appointment-service/internal/config"
	"github.com/houseofbeauty/appointment-service/internal/domain"
	catalogRepo "github.com/houseofbeauty/appointment-service/internal/infra/storage/catalog"
	reservationRepo "github.com/houseofbeauty/appointment-service/internal/infra/storage/reservation"
	scheduleRepo "github.com/houseofbeauty/appointment-service/internal/infra/storage/schedule"
	identityClient "github.com/houseofbeauty/appointment-service/internal/integrations/identity"
	mailerClient "github.com/houseofbeauty/appointment-service/internal/integrations/mailer"
	paymentsClient "github.com/houseofbeauty/appointment-service/internal/integrations/payments"
	catalogService "github.com/houseofbeauty/appointment-service/internal/service/catalog"
	reservationsService "github.com/houseofbeauty/appointment-service/internal/service/reservations"
	scheduleService "github.com/houseofbeauty/appointment-service/internal/service/schedule"
	createReservationUC "github.com/houseofbeauty/appointment-service/internal/usecase/create_reservation"
	getDaySlotsUC "github.com/houseofbeauty/appointment-service/internal/usecase/get_day_slots"
	updateReservationStatusUC "github.com/houseofbeauty/appointment-service/internal/usecase/update_reservation_status"
	"github.com/houseofbeauty/appointment-service/pkg/dbmetrics"
	"github.com/houseofbeauty/appointment-service/pkg/logger"
	"github.com/houseofbeauty/appointment-service/pkg/metrics"
	"github.com/houseofbeauty/appointment-service/pkg/simpletxmanager"
	"github.com/houseofbeauty/appointment-service/pkg/txmanager"
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

	log.Info("Starting appointment-service...")
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
	identity := identityClient.NewClient(
		cfg.Identity.URL,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	payments := paymentsClient.NewClient(
		cfg.Payments.URL,
		cfg.Payments.SecretKey,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	mailer := mailerClient.NewClient(
		cfg.Mailer.URL,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Identity=%s, Payments=%s, Mailer=%s)",
		cfg.Identity.URL, cfg.Payments.URL, cfg.Mailer.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		catalogRepository     *catalogRepo.Repository
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
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем резолвер доступности
	resolver := availability.NewResolver(log)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		reservationRepository,
		identity,
		log,
	)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		catalogRepository,
		log,
	)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		log,
	)

	// Резервные окна на случай отсутствия расписания на дату
	publicWindow := availability.DayWindow{
		StartHour: cfg.Booking.PublicFallbackOpenHour,
		EndHour:   cfg.Booking.PublicFallbackCloseHour,
	}
	dashboardWindow := availability.DayWindow{
		StartHour: cfg.Booking.DashboardFallbackOpenHour,
		EndHour:   cfg.Booking.DashboardFallbackCloseHour,
	}

	// Инициализируем use cases
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		scheduleSvc,
		resolver,
		publicWindow,
		dashboardWindow,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		catalogRepository,
		scheduleSvc,
		payments,
		mailer,
		resolver,
		txMgr,
		log,
	)

	updateReservationStatusUseCase := updateReservationStatusUC.NewUseCase(
		reservationRepository,
		scheduleSvc,
		mailer,
		resolver,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getPublicSlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, domain.SourcePublic, log)
	getDashboardSlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, domain.SourceDashboard, log)
	createPublicReservation := createReservationHandler.NewHandler(createReservationUseCase, domain.SourcePublic, log)
	createDashboardReservation := createReservationHandler.NewHandler(createReservationUseCase, domain.SourceDashboard, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getReservations := getReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(updateReservationStatusUseCase, log)
	updateReservationService := updateReservationServiceHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateWeekdayHours := updateWeekdayHoursHandler.NewHandler(scheduleSvc, log)
	upsertSpecialDay := upsertSpecialDayHandler.NewHandler(scheduleSvc, log)
	deleteSpecialDay := deleteSpecialDayHandler.NewHandler(scheduleSvc, log)
	setAvailableDates := setAvailableDatesHandler.NewHandler(scheduleSvc, log)
	upsertStaffWeeklyDayOff := upsertStaffWeeklyDayOffHandler.NewHandler(scheduleSvc, log)
	deleteStaffWeeklyDayOff := deleteStaffWeeklyDayOffHandler.NewHandler(scheduleSvc, log)
	createStaffDayOff := createStaffDayOffHandler.NewHandler(scheduleSvc, log)
	deleteStaffDayOff := deleteStaffDayOffHandler.NewHandler(scheduleSvc, log)
	upsertStaffWindow := upsertStaffWindowHandler.NewHandler(scheduleSvc, log)
	deleteStaffWindow := deleteStaffWindowHandler.NewHandler(scheduleSvc, log)
	getStaffAvailability := getStaffAvailabilityHandler.NewHandler(scheduleSvc, log)
	getDaysOffOverview := getDaysOffOverviewHandler.NewHandler(scheduleSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (виджет записи, без аутентификации)
	// ============================================================

	// Лента слотов на дату для виджета
	api.HandleFunc("/slots", getPublicSlots.Handle).Methods(http.MethodGet)

	// Создание записи из виджета (требует оплаченный payment intent)
	api.HandleFunc("/reservations", createPublicReservation.Handle).Methods(http.MethodPost)

	// Каталог услуг для виджета
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (панель салона, требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Лента слотов для панели
	protected.HandleFunc("/dashboard/slots", getDashboardSlots.Handle).Methods(http.MethodGet)

	// Создание записи из панели (без оплаты, сразу confirmed)
	protected.HandleFunc("/dashboard/reservations", createDashboardReservation.Handle).Methods(http.MethodPost)

	// Список записей с фильтрами
	protected.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Смена статуса записи (подтверждение, отмена, реактивация)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// Смена услуги записи
	protected.HandleFunc("/reservations/{reservationId}/service", updateReservationService.Handle).Methods(http.MethodPatch)

	// Удаление записи
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Расписание салона ---
	protected.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/weekdays/{day}", updateWeekdayHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedule/special-days", upsertSpecialDay.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedule/special-days/{date}", deleteSpecialDay.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/schedule/available-dates", setAvailableDates.Handle).Methods(http.MethodPut)

	// --- Ограничения сотрудников ---
	protected.HandleFunc("/staff/{staffId}/weekly-days-off", upsertStaffWeeklyDayOff.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{staffId}/weekly-days-off/{day}", deleteStaffWeeklyDayOff.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/staff/{staffId}/days-off", createStaffDayOff.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/staff/days-off", getDaysOffOverview.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/days-off/{dayOffId}", deleteStaffDayOff.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/staff/{staffId}/window", upsertStaffWindow.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{staffId}/window", deleteStaffWindow.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/staff/{staffId}/availability", getStaffAvailability.Handle).Methods(http.MethodGet)

	// --- Каталог услуг (администрирование) ---
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

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
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited gracefully")
}
