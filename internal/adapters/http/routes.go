package web

import (
	"net/http"

	"peakdispatch/internal/adapters/http/middleware"
)

// registerRoutes wires the public and admin routes. Admin routes are wrapped
// in RequireAdmin so any unauthenticated request, whatever its method, is
// redirected to the login page.
func registerRoutes(mux *http.ServeMux) {
	// Public pages
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/join", handleJoin)

	// Admin session
	mux.HandleFunc("/admin/login", handleAdminLogin)
	mux.HandleFunc("/admin/logout", handleAdminLogout)

	// Admin management
	mux.Handle("/admin", middleware.RequireAdmin(http.HandlerFunc(handleAdminDashboard)))
	mux.Handle("/admin/content", middleware.RequireAdmin(http.HandlerFunc(handleAdminContent)))
	mux.Handle("/admin/submissions/{id}/delete", middleware.RequireAdmin(http.HandlerFunc(handleAdminSubmissionDelete)))
	mux.Handle("/admin/bookings/{id}/status", middleware.RequireAdmin(http.HandlerFunc(handleAdminBookingStatus)))
}
