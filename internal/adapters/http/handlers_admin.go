package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"peakdispatch/internal/adapters/http/middleware"
	"peakdispatch/internal/application/orchestrators"
	"peakdispatch/internal/application/projections"
	domainBooking "peakdispatch/internal/domain/booking"
	domainContent "peakdispatch/internal/domain/content"
)

// handleAdminLogin handles GET (form) and POST (authenticate) for /admin/login.
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// If already logged in, redirect to the panel
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "admin_login.html", map[string]any{})
		return
	}

	if r.Method == "POST" {
		input := orchestrators.LoginInput{}

		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.Email = r.FormValue("email")
			input.Password = r.FormValue("password")
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}

		deps := orchestrators.LoginDeps{AccountStore: stores.AccountStore}

		result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
		if err != nil {
			if isHTMLRequest(r) {
				renderTemplate(w, r, "admin_login.html", map[string]any{
					"Error": err.Error(),
					"Email": input.Email,
				})
				return
			}
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := sessions.Create(result.AccountID, result.Email)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminLogout ends the session and returns to the login page.
func handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName()); err == nil && cookie.Value != "" {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// handleAdminDashboard handles GET /admin (content editor, submissions, bookings).
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := projections.GetDashboardDeps{
		ContentStore:    stores.ContentStore,
		SubmissionStore: stores.SubmissionStore,
		BookingStore:    stores.BookingStore,
	}
	result, err := projections.QueryGetDashboard(r.Context(), deps)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		// The editor always shows three service slots, even before any
		// content has been saved.
		services := make([]domainContent.Service, domainContent.ServiceCount)
		copy(services, result.Content.Services)

		renderTemplate(w, r, "admin_dashboard.html", map[string]any{
			"Content":       result.Content,
			"Services":      services,
			"Submissions":   result.Submissions,
			"Bookings":      result.Bookings,
			"StatusOptions": domainBooking.StatusOptions,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// formPatchValue maps an HTML form value to a patch field. Empty inputs mean
// "keep the stored value", so they become nil.
func formPatchValue(r *http.Request, name string) *string {
	v := r.FormValue(name)
	if v == "" {
		return nil
	}
	return &v
}

// handleAdminContent handles POST /admin/content (partial content update).
func handleAdminContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	patch := domainContent.Patch{
		HeroTitle:        formPatchValue(r, "heroTitle"),
		HeroSubtitle:     formPatchValue(r, "heroSubtitle"),
		HeroPrimaryCTA:   formPatchValue(r, "heroPrimaryCta"),
		HeroSecondaryCTA: formPatchValue(r, "heroSecondaryCta"),
		AboutTitle:       formPatchValue(r, "aboutTitle"),
		AboutText:        formPatchValue(r, "aboutText"),
		ServicesTitle:    formPatchValue(r, "servicesTitle"),
		CTABannerTitle:   formPatchValue(r, "ctaBannerTitle"),
		CTABannerText:    formPatchValue(r, "ctaBannerText"),
		FooterText:       formPatchValue(r, "footerText"),
		Services: []domainContent.Service{
			{Title: r.FormValue("service1Title"), Text: r.FormValue("service1Text")},
			{Title: r.FormValue("service2Title"), Text: r.FormValue("service2Text")},
			{Title: r.FormValue("service3Title"), Text: r.FormValue("service3Text")},
		},
	}

	deps := orchestrators.UpdateContentDeps{ContentStore: stores.ContentStore}
	if _, err := orchestrators.ExecuteUpdateContent(r.Context(), patch, deps); err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAdminSubmissionDelete handles POST /admin/submissions/{id}/delete.
func handleAdminSubmissionDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := orchestrators.DeleteSubmissionDeps{
		SubmissionStore: stores.SubmissionStore,
		BookingStore:    stores.BookingStore,
	}
	if err := orchestrators.ExecuteDeleteSubmission(r.Context(), r.PathValue("id"), deps); err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAdminBookingStatus handles POST /admin/bookings/{id}/status.
func handleAdminBookingStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.UpdateBookingStatusInput{
		BookingID: r.PathValue("id"),
		Status:    r.FormValue("status"),
	}
	deps := orchestrators.UpdateBookingStatusDeps{BookingStore: stores.BookingStore}
	if err := orchestrators.ExecuteUpdateBookingStatus(r.Context(), input, deps); err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
