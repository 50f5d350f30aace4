package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	cancelBookingHandler "github.com/m04kA/essenza-booking/internal/api/handlers/cancel_booking"
	clearDayHandler "github.com/m04kA/essenza-booking/internal/api/handlers/clear_day"
	confirmBookingHandler "github.com/m04kA/essenza-booking/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/essenza-booking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/essenza-booking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/essenza-booking/internal/api/handlers/get_booking"
	getDayScheduleHandler "github.com/m04kA/essenza-booking/internal/api/handlers/get_day_schedule"
	getFreeCountsHandler "github.com/m04kA/essenza-booking/internal/api/handlers/get_free_counts"
	listBookingsHandler "github.com/m04kA/essenza-booking/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/m04kA/essenza-booking/internal/api/handlers/list_services"
	listSlotsHandler "github.com/m04kA/essenza-booking/internal/api/handlers/list_slots"
	setDayScheduleHandler "github.com/m04kA/essenza-booking/internal/api/handlers/set_day_schedule"
	"github.com/m04kA/essenza-booking/internal/api/middleware"
)

// Handlers набор обработчиков всех маршрутов
type Handlers struct {
	ListSlots      *listSlotsHandler.Handler
	GetDaySchedule *getDayScheduleHandler.Handler
	FreeTimes      *getAvailableSlotsHandler.Handler
	FreeCounts     *getFreeCountsHandler.Handler
	ListServices   *listServicesHandler.Handler
	CreateBooking  *createBookingHandler.Handler

	SetDaySchedule *setDayScheduleHandler.Handler
	ClearDay       *clearDayHandler.Handler
	ListBookings   *listBookingsHandler.Handler
	GetBooking     *getBookingHandler.Handler
	ManualBooking  *createBookingHandler.Handler
	ConfirmBooking *confirmBookingHandler.Handler
	CancelBooking  *cancelBookingHandler.Handler
}

// Options параметры роутера
type Options struct {
	// Metrics nil отключает HTTP метрики и MetricsHandler
	Metrics        middleware.HTTPMetrics
	MetricsPath    string
	MetricsHandler http.Handler

	// BookingRateLimit заявок в минуту с одного IP, 0 без ограничения
	BookingRateLimit int

	AdminPasswordHash string
	AllowedOrigins    []string
	Logger            middleware.Logger
}

// NewRouter собирает маршруты /api/v1 и оборачивает их в CORS
func NewRouter(h *Handlers, opts Options) http.Handler {
	r := mux.NewRouter()

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Расписание и свободное время ---
	api.HandleFunc("/slots", h.ListSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{dayKey}", h.GetDaySchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{dayKey}/free", h.FreeTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", h.FreeCounts.Handle).Methods(http.MethodGet)

	// --- Каталог и заявка клиента ---
	api.HandleFunc("/services", h.ListServices.Handle).Methods(http.MethodGet)
	api.Handle("/bookings",
		middleware.RateLimitByIP(opts.BookingRateLimit, time.Minute)(http.HandlerFunc(h.CreateBooking.Handle)),
	).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Password header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(opts.AdminPasswordHash, opts.Logger))

	// --- Рабочие часы ---
	admin.HandleFunc("/slots/{dayKey}", h.SetDaySchedule.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/slots/{dayKey}", h.ClearDay.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", h.ListBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", h.ManualBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}", h.GetBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/confirm", h.ConfirmBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/cancel", h.CancelBooking.Handle).Methods(http.MethodPatch)

	// Preflight OPTIONS не доходит до маршрутов mux, поэтому CORS снаружи роутера
	return cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.AdminPasswordHeader},
		MaxAge:         300,
	})(r)
}
