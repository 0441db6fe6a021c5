package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pollbox/pollbox/auth"
	"github.com/pollbox/pollbox/cliparse"
	"github.com/pollbox/pollbox/configedit"
	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/notify"
	"github.com/pollbox/pollbox/report"
	"github.com/pollbox/pollbox/store"
	"github.com/pollbox/pollbox/tally"
)

// AdminHandler serves the password-gated admin surface: login, config
// edits, vote reset, and report exports.
type AdminHandler struct {
	store  *store.Store
	gate   *auth.Gate
	editor *configedit.Editor
	pdf    *report.PDF
	cfg    cliparse.Config
}

func NewAdminHandler(st *store.Store, gate *auth.Gate, editor *configedit.Editor, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{
		store:  st,
		gate:   gate,
		editor: editor,
		pdf:    &report.PDF{FontPath: cfg.FontFile},
		cfg:    cfg,
	}
}

// requireAdmin checks the X-Admin-Token header. Returns false after
// writing a 401 when the token is missing or revoked.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !h.gate.Authorized(r.Header.Get("X-Admin-Token")) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Admin token required")
		return false
	}
	return true
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		slog.Error("failed to load poll document", "error", err)
		writeError(w, err)
		return
	}

	token, err := h.gate.Login(req.Password, doc.Password)
	if err != nil {
		slog.Warn("admin login rejected", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Wrong password")
		return
	}

	slog.Info("admin logged in", "remote", middleware.GetClientIP(r))
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Token: token})
}

// Logout handles POST /admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.gate.Logout(r.Header.Get("X-Admin-Token"))
	w.WriteHeader(http.StatusNoContent)
}

// GetVotes handles GET /admin/votes
// Returns the raw vote log for the admin data table.
func (h *AdminHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.VotesResponse{Votes: doc.Votes})
}

// SetTitle handles PUT /admin/title
func (h *AdminHandler) SetTitle(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.SetTitleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.editor.SetTitle(doc, req.Title); err != nil {
		writeError(w, err)
		return
	}

	slog.Info("title updated")
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"title": doc.Title})
}

// SetPassword handles PUT /admin/password
// The password change persists even when the notification mail fails; the
// notification outcome is reported alongside.
func (h *AdminHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.SetPasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		writeError(w, err)
		return
	}
	outcome, err := h.editor.SetPassword(doc, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	message := "Password updated"
	if outcome == notify.Failed {
		message = "Password updated, but the notification mail failed"
	}
	slog.Info("password updated", "notification", string(outcome))
	middleware.JSONResponse(w, http.StatusOK, models.SetPasswordResponse{
		Message:      message,
		Notification: string(outcome),
	})
}

// AddOption handles POST /admin/options
// Duplicate labels are a 409; the option list is unchanged.
func (h *AdminHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.AddOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		writeError(w, err)
		return
	}
	added, err := h.editor.AddOption(doc, req.Label)
	if err != nil {
		writeError(w, err)
		return
	}
	if !added {
		middleware.ErrorResponse(w, http.StatusConflict, "Option already exists")
		return
	}

	slog.Info("option added", "label", req.Label, "option_count", len(doc.Options))
	middleware.JSONResponse(w, http.StatusCreated, map[string]interface{}{"options": doc.Options})
}

// RemoveOption handles DELETE /admin/options/{index}
func (h *AdminHandler) RemoveOption(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.editor.RemoveOption(doc, index); err != nil {
		writeError(w, err)
		return
	}

	slog.Info("option removed", "index", index, "option_count", len(doc.Options))
	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"options":       doc.Options,
		"maxSelections": doc.Config.MaxSelections,
	})
}

// SetRule handles PUT /admin/rule
func (h *AdminHandler) SetRule(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.SetRuleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.editor.SetRule(doc, req.EnableMultiSelect, req.MaxSelections); err != nil {
		writeError(w, err)
		return
	}

	slog.Info("voting rule updated",
		"multi_select", req.EnableMultiSelect,
		"max_selections", req.MaxSelections,
	)
	middleware.JSONResponse(w, http.StatusOK, doc.Config)
}

// Reset handles POST /admin/reset
// Clears the vote log; title, password, config, and options survive.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.store.ResetVotes(doc); err != nil {
		writeError(w, err)
		return
	}

	slog.Info("vote log cleared")
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "All votes cleared"})
}

// ExportCSV handles GET /admin/export/csv
func (h *AdminHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("votes_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := report.WriteCSV(w, doc.Votes); err != nil {
		slog.Error("csv export failed", "error", err)
	}
}

// ExportPDF handles GET /admin/export/pdf
func (h *AdminHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		writeError(w, err)
		return
	}

	counts := tally.Count(doc.Votes, doc.Options)
	data, err := h.pdf.Render(doc, counts, time.Now())
	if err != nil {
		slog.Error("pdf export failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "PDF report unavailable: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=report.pdf")
	w.Write(data)
}
