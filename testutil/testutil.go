package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/pollbox/pollbox/cliparse"
	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/store"
)

// TempStore returns a store backed by a fresh file in a per-test temp
// directory. The file does not exist yet, so the first Load seeds it.
func TempStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(filepath.Join(t.TempDir(), "polling_data.json"))
}

// SeededDoc loads (and thereby seeds) the document from st.
func SeededDoc(t *testing.T, st *store.Store) *models.PollDocument {
	t.Helper()
	doc, err := st.Load()
	if err != nil {
		t.Fatalf("Failed to load seeded document: %v", err)
	}
	return doc
}

// GetTestConfig returns a standard test configuration. No mail relay is
// configured, so notifications report a skipped outcome.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:        8741,
		DataFile:    "polling_data.json",
		NotifyEmail: "admin@example.com",
		SMTPPort:    587,
	}
}

// SimpleDoc builds a three-option single-select document and persists it,
// replacing the seeded default. Handy when tests want Latin option names.
func SimpleDoc(t *testing.T, st *store.Store) *models.PollDocument {
	t.Helper()
	doc := SeededDoc(t, st)
	doc.Title = "Team lunch"
	doc.Options = []string{"A", "B", "C"}
	doc.Config = models.PollConfig{EnableMultiSelect: false, MaxSelections: 3}
	doc.Votes = []models.Vote{}
	if err := st.Save(doc); err != nil {
		t.Fatalf("Failed to save test document: %v", err)
	}
	return doc
}

// AddTestVote appends a vote directly, bypassing HTTP.
func AddTestVote(t *testing.T, st *store.Store, doc *models.PollDocument, sel models.Selection) models.Vote {
	t.Helper()
	vote := models.NewVote(sel, time.Now())
	doc.Votes = append(doc.Votes, vote)
	if err := st.Save(doc); err != nil {
		t.Fatalf("Failed to save test vote: %v", err)
	}
	return vote
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
