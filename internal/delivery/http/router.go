package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"vendormatch/internal/delivery/http/controllers"
	"vendormatch/internal/delivery/http/middleware"
	"vendormatch/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Event and booking routes are public; vendor mutations and outbound email
// require a bearer token.
func NewRouter(
	eventController *controllers.EventController,
	bookingController *controllers.BookingController,
	vendorController *controllers.VendorController,
	authController *controllers.AuthController,
	emailController *controllers.EmailController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Events
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events/{tenantID}", eventController.ListEvents)
	mux.HandleFunc("GET /events/id/{eventID}", eventController.GetEvent)
	mux.HandleFunc("PUT /events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{eventID}", eventController.DeleteEvent)

	// Slot bookings
	mux.HandleFunc("POST /bookings", bookingController.BookSlot)
	mux.HandleFunc("GET /bookings/{eventID}", bookingController.ListBookings)
	mux.HandleFunc("GET /bookings/status/{eventID}", bookingController.SlotStatus)

	// Vendor directory
	mux.HandleFunc("POST /vendors", requireAuth(vendorController.CreateVendor))
	mux.HandleFunc("GET /vendors", vendorController.ListVendors)
	mux.HandleFunc("GET /vendors/{vendorID}", vendorController.GetVendor)
	mux.HandleFunc("PUT /vendors/{vendorID}", requireAuth(vendorController.UpdateVendor))
	mux.HandleFunc("DELETE /vendors/{vendorID}", requireAuth(vendorController.DeleteVendor))

	// Outbound email
	mux.HandleFunc("POST /email/send", requireAuth(emailController.SendEmail))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
