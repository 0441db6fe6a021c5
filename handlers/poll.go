package handlers

import (
	"log/slog"
	"net/http"

	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/store"
	"github.com/pollbox/pollbox/tally"
)

// PollHandler serves the public voting surface: the poll payload, vote
// submission, and live statistics.
type PollHandler struct {
	store *store.Store
}

func NewPollHandler(st *store.Store) *PollHandler {
	return &PollHandler{store: st}
}

// GetPoll handles GET /poll
// Returns the home page payload: title, options, and voting mode.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Load()
	if err != nil {
		slog.Error("failed to load poll document", "error", err)
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollResponse{
		Title:             doc.Title,
		Options:           doc.Options,
		EnableMultiSelect: doc.Config.EnableMultiSelect,
		MaxSelections:     doc.Config.MaxSelections,
	})
}

// SubmitVote handles POST /poll/votes
// Validates the selection against the current option list and mode, then
// appends it to the vote log.
func (h *PollHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Selection) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "selection cannot be empty")
		return
	}

	doc, err := h.store.Load()
	if err != nil {
		slog.Error("failed to load poll document", "error", err)
		writeError(w, err)
		return
	}

	// Membership check is this layer's job; the store only checks
	// non-emptiness and cardinality against the current mode.
	valid := make(map[string]bool, len(doc.Options))
	for _, opt := range doc.Options {
		valid[opt] = true
	}
	seen := make(map[string]bool, len(req.Selection))
	for _, name := range req.Selection {
		if !valid[name] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown option: "+name)
			return
		}
		if seen[name] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Duplicate option: "+name)
			return
		}
		seen[name] = true
	}

	var sel models.Selection
	if doc.Config.EnableMultiSelect {
		sel = models.Multiple(req.Selection)
	} else {
		if len(req.Selection) != 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "exactly one option is required in single-select mode")
			return
		}
		sel = models.Single(req.Selection[0])
	}

	vote, err := h.store.RecordVote(doc, sel)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("vote recorded",
		"selections", sel.Len(),
		"total_votes", len(doc.Votes),
		"remote", middleware.GetClientIP(r),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		Vote:    vote,
		Message: "Vote recorded",
	})
}

// GetStats handles GET /poll/stats
// Returns per-option counts and percentages derived from the vote log.
func (h *PollHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Load()
	if err != nil {
		slog.Error("failed to load poll document", "error", err)
		writeError(w, err)
		return
	}

	counts := tally.Count(doc.Votes, doc.Options)
	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		TotalVotes:  len(doc.Votes),
		Counts:      counts,
		Percentages: tally.Percentages(counts, len(doc.Votes)),
	})
}
