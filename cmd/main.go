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

	approveRequestHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/approve_request"
	cancelBookingHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/cancel_booking"
	createEventHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/create_event"
	deleteEventHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/delete_event"
	editBookingHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/edit_booking"
	editRequestHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/edit_request"
	getBookingHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/get_calendar"
	getRequestHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/get_request"
	listBookedSlotsHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/list_booked_slots"
	listBookingRecordsHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/list_booking_records"
	listBookingsHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/list_bookings"
	listEventsHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/list_events"
	listMyRequestsHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/list_my_requests"
	listPendingRequestsHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/list_pending_requests"
	rejectRequestHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/reject_request"
	setCalendarDateHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/set_calendar_date"
	submitRequestHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/submit_request"
	updateEventHandler "github.com/m04kA/Parish-BookingService/internal/api/handlers/update_event"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
	"github.com/m04kA/Parish-BookingService/internal/config"
	bookingRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/booking"
	calendarRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/calendar"
	eventRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/event"
	recordRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/record"
	requestRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/request"
	notifyRelayClient "github.com/m04kA/Parish-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/Parish-BookingService/internal/notify"
	bookingsService "github.com/m04kA/Parish-BookingService/internal/service/bookings"
	calendarService "github.com/m04kA/Parish-BookingService/internal/service/calendar"
	eventsService "github.com/m04kA/Parish-BookingService/internal/service/events"
	recordsService "github.com/m04kA/Parish-BookingService/internal/service/records"
	requestsService "github.com/m04kA/Parish-BookingService/internal/service/requests"
	approveRequestUC "github.com/m04kA/Parish-BookingService/internal/usecase/approve_request"
	cancelBookingUC "github.com/m04kA/Parish-BookingService/internal/usecase/cancel_booking"
	editBookingUC "github.com/m04kA/Parish-BookingService/internal/usecase/edit_booking"
	editRequestUC "github.com/m04kA/Parish-BookingService/internal/usecase/edit_request"
	rejectRequestUC "github.com/m04kA/Parish-BookingService/internal/usecase/reject_request"
	submitRequestUC "github.com/m04kA/Parish-BookingService/internal/usecase/submit_request"
	"github.com/m04kA/Parish-BookingService/internal/ws"
	"github.com/m04kA/Parish-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Parish-BookingService/pkg/logger"
	"github.com/m04kA/Parish-BookingService/pkg/metrics"
	"github.com/m04kA/Parish-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Parish-BookingService/pkg/txmanager"
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

	log.Info("Starting Parish-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopCh := make(chan struct{})

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

	// Инициализируем репозитории (с метриками или без)
	var (
		requestRepository  *requestRepo.Repository
		bookingRepository  *bookingRepo.Repository
		calendarRepository *calendarRepo.Repository
		recordRepository   *recordRepo.Repository
		eventRepository    *eventRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopCh)
		log.Info("Database metrics collection started")

		requestRepository = requestRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		recordRepository = recordRepo.NewRepository(wrappedDB)
		eventRepository = eventRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		requestRepository = requestRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		recordRepository = recordRepo.NewRepository(db)
		eventRepository = eventRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Собираем цепочку нотификаторов: WebSocket-хаб для UI и
	// опциональный relay во внешний сервис доставки уведомлений
	var notifiers notify.Multi
	var hub *ws.Hub

	if cfg.Notifications.WebSocketEnabled {
		hub = ws.NewHub(log)
		go hub.Run(stopCh)
		notifiers = append(notifiers, hub)
		log.Info("WebSocket hub started")
	}
	if cfg.Notifications.RelayURL != "" {
		relay := notifyRelayClient.NewClient(
			cfg.Notifications.RelayURL,
			time.Duration(cfg.Notifications.RelayTimeout)*time.Second,
			log,
		)
		notifiers = append(notifiers, relay)
		log.Info("Notification relay enabled (url=%s, timeout=%ds)",
			cfg.Notifications.RelayURL, cfg.Notifications.RelayTimeout)
	}

	var notifier notify.Notifier = notifiers
	if len(notifiers) == 0 {
		notifier = notify.Nop{}
		log.Info("Notifications disabled")
	}

	// Инициализируем сервисы
	requestsSvc := requestsService.NewService(requestRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	calendarSvc := calendarService.NewService(calendarRepository, notifier, log)
	recordsSvc := recordsService.NewService(recordRepository, log)
	eventsSvc := eventsService.NewService(eventRepository, notifier, log)

	// Инициализируем use cases
	submitRequestUseCase := submitRequestUC.NewUseCase(
		requestRepository,
		calendarRepository,
		recordRepository,
		txMgr,
		notifier,
		log,
	)
	approveRequestUseCase := approveRequestUC.NewUseCase(
		requestRepository,
		bookingRepository,
		calendarRepository,
		recordRepository,
		txMgr,
		notifier,
		log,
	)
	rejectRequestUseCase := rejectRequestUC.NewUseCase(
		requestRepository,
		recordRepository,
		txMgr,
		notifier,
		log,
	)
	editRequestUseCase := editRequestUC.NewUseCase(
		requestRepository,
		calendarRepository,
		recordRepository,
		txMgr,
		notifier,
		log,
	)
	editBookingUseCase := editBookingUC.NewUseCase(
		bookingRepository,
		calendarRepository,
		recordRepository,
		txMgr,
		notifier,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		calendarRepository,
		recordRepository,
		txMgr,
		notifier,
		log,
	)

	// Инициализируем handlers
	submitRequest := submitRequestHandler.NewHandler(submitRequestUseCase, log)
	listPendingRequests := listPendingRequestsHandler.NewHandler(requestsSvc, log)
	listMyRequests := listMyRequestsHandler.NewHandler(requestsSvc, log)
	getRequest := getRequestHandler.NewHandler(requestsSvc, log)
	editRequest := editRequestHandler.NewHandler(editRequestUseCase, log)
	approveRequest := approveRequestHandler.NewHandler(approveRequestUseCase, log)
	rejectRequest := rejectRequestHandler.NewHandler(rejectRequestUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	listBookedSlots := listBookedSlotsHandler.NewHandler(bookingsSvc, log)
	editBooking := editBookingHandler.NewHandler(editBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	setCalendarDate := setCalendarDateHandler.NewHandler(calendarSvc, log)
	listBookingRecords := listBookingRecordsHandler.NewHandler(recordsSvc, log)
	listEvents := listEventsHandler.NewHandler(eventsSvc, log)
	createEvent := createEventHandler.NewHandler(eventsSvc, log)
	updateEvent := updateEventHandler.NewHandler(eventsSvc, log)
	deleteEvent := deleteEventHandler.NewHandler(eventsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// WebSocket endpoint для live-обновлений UI
	if hub != nil {
		r.HandleFunc("/ws", hub.Handler()).Methods(http.MethodGet)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Занятые слоты (без персональных данных)
	api.HandleFunc("/booked-slots", listBookedSlots.Handle).Methods(http.MethodGet)

	// Календарь ёмкости по датам
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Анонсы приходских событий
	api.HandleFunc("/events", listEvents.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заявки на бронирование ---
	// Подача заявки
	protected.HandleFunc("/requests", submitRequest.Handle).Methods(http.MethodPost)

	// Очередь заявок на рассмотрении (администратор)
	protected.HandleFunc("/requests", listPendingRequests.Handle).Methods(http.MethodGet)

	// Заявки текущего пользователя
	protected.HandleFunc("/my/requests", listMyRequests.Handle).Methods(http.MethodGet)

	// Просмотр заявки (владелец или администратор)
	protected.HandleFunc("/requests/{requestId}", getRequest.Handle).Methods(http.MethodGet)

	// Редактирование заявки (владелец или администратор)
	protected.HandleFunc("/requests/{requestId}", editRequest.Handle).Methods(http.MethodPut)

	// Решение по заявке (администратор)
	protected.HandleFunc("/requests/{requestId}/approve", approveRequest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/requests/{requestId}/reject", rejectRequest.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Список бронирований (администратор видит все, пользователь свои)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Просмотр бронирования (владелец или администратор)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Редактирование бронирования (администратор)
	protected.HandleFunc("/bookings/{bookingId}", editBooking.Handle).Methods(http.MethodPut)

	// Отмена бронирования (владелец или администратор)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Календарь и журнал (администратор) ---
	protected.HandleFunc("/calendar/{date}", setCalendarDate.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/records", listBookingRecords.Handle).Methods(http.MethodGet)

	// --- События (администратор) ---
	protected.HandleFunc("/events", createEvent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/events/{eventId}", updateEvent.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/events/{eventId}", deleteEvent.Handle).Methods(http.MethodDelete)

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

	// Останавливаем фоновые процессы: хаб и сбор метрик connection pool
	close(stopCh)

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
