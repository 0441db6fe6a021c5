package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/testutil"
)

func TestRoutes(t *testing.T) {
	st := testutil.TempStore(t)
	testutil.SimpleDoc(t, st)
	mux := NewRouter(st, testutil.GetTestConfig())

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("GET", "/health", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	})

	t.Run("root", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("GET", "/", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	})

	t.Run("poll payload", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("GET", "/poll", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.PollResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Title == "" {
			t.Error("poll payload missing title")
		}
	})

	t.Run("admin routes are gated", func(t *testing.T) {
		for _, route := range []struct{ method, path string }{
			{"GET", "/admin/votes"},
			{"POST", "/admin/reset"},
			{"GET", "/admin/export/csv"},
			{"DELETE", "/admin/options/0"},
		} {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(route.method, route.path, nil, nil))
			testutil.AssertStatus(t, w, http.StatusUnauthorized)
		}
	})

	t.Run("vote then stats end to end", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("POST", "/poll/votes",
			models.SubmitVoteRequest{Selection: []string{"A"}}, nil))
		testutil.AssertStatus(t, w, http.StatusCreated)

		w = httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("GET", "/poll/stats", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var stats models.StatsResponse
		testutil.AssertJSON(t, w, &stats)
		if stats.TotalVotes < 1 || stats.Counts["A"] < 1 {
			t.Errorf("stats did not reflect the vote: %+v", stats)
		}
	})

	t.Run("login and edit title end to end", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("POST", "/admin/login",
			models.LoginRequest{Password: "admin123"}, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var login models.LoginResponse
		testutil.AssertJSON(t, w, &login)

		headers := map[string]string{"X-Admin-Token": login.Token}
		w = httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("PUT", "/admin/title",
			models.SetTitleRequest{Title: "Renamed"}, headers))
		testutil.AssertStatus(t, w, http.StatusOK)
	})
}
