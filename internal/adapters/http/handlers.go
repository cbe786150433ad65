package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"peakdispatch/internal/adapters/http/middleware"
	"peakdispatch/internal/application/orchestrators"
	"peakdispatch/internal/application/projections"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer converts the editable about text from markdown. Raw HTML in the
// input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

const templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, loggedIn := middleware.GetSessionFromContext(r.Context())
	email := ""
	if loggedIn {
		email = sess.Email
	}

	funcMap := template.FuncMap{
		"currentEmail": func() string { return email },
		"isLoggedIn":   func() bool { return loggedIn },
		"csrfToken":    func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// notifyDeps assembles the notification dependencies from the globals set at
// startup.
func notifyDeps() orchestrators.NotifySubmissionDeps {
	return orchestrators.NotifySubmissionDeps{
		EmailSender: emailSender,
		NotifyTo:    notifyToAddress,
		FromAddress: emailFromAddress,
	}
}

// handleHome handles GET / (the public landing page).
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := projections.GetHomeDeps{
		ContentStore: stores.ContentStore,
		Now:          timeNow,
	}
	result, err := projections.QueryGetHome(r.Context(), deps)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "index.html", map[string]any{
			"Content":    result.Content,
			"FooterText": result.FooterText,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleJoin handles GET (form) and POST (create submission) for /join.
func handleJoin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		renderTemplate(w, r, "join.html", map[string]any{})
		return
	}

	if r.Method == "POST" {
		input := orchestrators.SubmitJoinInput{}

		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.FirstName = r.FormValue("firstName")
			input.LastName = r.FormValue("lastName")
			input.Email = r.FormValue("email")
			input.Phone = r.FormValue("phone")
			input.Company = r.FormValue("company")
			input.Country = r.FormValue("country")
			input.FleetSize = r.FormValue("fleetSize")
			input.EquipmentType = r.FormValue("equipmentType")
			input.HearAbout = r.FormValue("hearAbout")
			input.Notes = r.FormValue("notes")
			input.MeetingDate = r.FormValue("meetingDate")
			input.TimeSlot = r.FormValue("timeSlot")
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}

		deps := orchestrators.SubmitJoinDeps{
			SubmissionStore: stores.SubmissionStore,
			BookingStore:    stores.BookingStore,
			Notify:          notifyDeps(),
			GenerateID:      generateID,
			Now:             timeNow,
		}

		result, err := orchestrators.ExecuteSubmitJoin(ctx, input, deps)
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			renderTemplate(w, r, "join_success.html", map[string]any{
				"Submission": result.Submission,
				"Booking":    result.Booking,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(result)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
