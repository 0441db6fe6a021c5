package router

import (
	"net/http"

	"github.com/pollbox/pollbox/auth"
	"github.com/pollbox/pollbox/cliparse"
	"github.com/pollbox/pollbox/configedit"
	"github.com/pollbox/pollbox/handlers"
	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/notify"
	"github.com/pollbox/pollbox/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Shared collaborators
	gate := auth.NewGate()
	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.NotifyEmail)
	editor := configedit.New(st, mailer)

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(st)
	adminHandler := handlers.NewAdminHandler(st, gate, editor, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting operations (public)
	mux.HandleFunc("GET /poll", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("POST /poll/votes", middleware.WithLogging(pollHandler.SubmitVote))
	mux.HandleFunc("GET /poll/stats", middleware.WithLogging(pollHandler.GetStats))

	// Admin session
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("POST /admin/logout", middleware.WithLogging(adminHandler.Logout))

	// Admin operations (require X-Admin-Token)
	mux.HandleFunc("GET /admin/votes", middleware.WithLogging(adminHandler.GetVotes))
	mux.HandleFunc("PUT /admin/title", middleware.WithLogging(adminHandler.SetTitle))
	mux.HandleFunc("PUT /admin/password", middleware.WithLogging(adminHandler.SetPassword))
	mux.HandleFunc("POST /admin/options", middleware.WithLogging(adminHandler.AddOption))
	mux.HandleFunc("DELETE /admin/options/{index}", middleware.WithLogging(adminHandler.RemoveOption))
	mux.HandleFunc("PUT /admin/rule", middleware.WithLogging(adminHandler.SetRule))
	mux.HandleFunc("POST /admin/reset", middleware.WithLogging(adminHandler.Reset))
	mux.HandleFunc("GET /admin/export/csv", middleware.WithLogging(adminHandler.ExportCSV))
	mux.HandleFunc("GET /admin/export/pdf", middleware.WithLogging(adminHandler.ExportPDF))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollbox API v1"))
	})

	return mux
}
