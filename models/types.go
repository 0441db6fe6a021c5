package models

import (
	"encoding/json"
	"time"
)

// TimestampLayout is how new votes stamp their submission instant. The
// field stays a string end to end, so documents written by earlier app
// versions with zone-less ISO timestamps round-trip untouched.
const TimestampLayout = time.RFC3339

// PollConfig controls how a single submission may look.
// When EnableMultiSelect is false, MaxSelections is persisted and editable
// but not consulted by voting logic.
type PollConfig struct {
	EnableMultiSelect bool `json:"enableMultiSelect"`
	MaxSelections     int  `json:"maxSelections"`
}

// PollDocument is the whole persisted state: one poll, its configuration,
// and its append-only vote log.
type PollDocument struct {
	Title    string     `json:"title"`
	Password string     `json:"password"`
	Config   PollConfig `json:"config"`
	Options  []string   `json:"options"`
	Votes    []Vote     `json:"votes"`
}

// UnmarshalJSON treats a missing "config" object as the default config,
// so documents written before the config field existed still load.
func (d *PollDocument) UnmarshalJSON(data []byte) error {
	type alias PollDocument
	aux := struct {
		Config *PollConfig `json:"config"`
		*alias
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Config == nil {
		d.Config = DefaultConfig()
	} else {
		d.Config = *aux.Config
	}
	if d.Options == nil {
		d.Options = []string{}
	}
	if d.Votes == nil {
		d.Votes = []Vote{}
	}
	return nil
}

// Vote is one submission. Option holds the chosen option name(s); its JSON
// form is a bare string for single-select submissions and an array for
// multi-select ones. Timestamp is an ISO-8601 instant.
type Vote struct {
	Option    Selection `json:"option"`
	Timestamp string    `json:"timestamp"`
}

// NewVote stamps a selection with the given submission time.
func NewVote(sel Selection, at time.Time) Vote {
	return Vote{Option: sel, Timestamp: at.Format(TimestampLayout)}
}

// DefaultConfig is the seed configuration: single-select, up to three
// choices once multi-select is switched on.
func DefaultConfig() PollConfig {
	return PollConfig{EnableMultiSelect: false, MaxSelections: 3}
}

// DefaultDocument returns the seed poll created on first access. The seeded
// password is exempt from the admin password rules.
func DefaultDocument() *PollDocument {
	return &PollDocument{
		Title:    "目標與策略",
		Password: "admin123",
		Config:   DefaultConfig(),
		Options: []string{
			"滿足所有持分者需要",
			"全體參與",
			"凝聚全校共識",
			"清晰的教學目標",
			"協同效應",
			"可見的教學成效",
			"整合內化",
			"與天主聖神一起工作",
		},
		Votes: []Vote{},
	}
}

// Request types

type SubmitVoteRequest struct {
	Selection []string `json:"selection"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type SetTitleRequest struct {
	Title string `json:"title"`
}

type SetPasswordRequest struct {
	Password string `json:"password"`
}

type AddOptionRequest struct {
	Label string `json:"label"`
}

type SetRuleRequest struct {
	EnableMultiSelect bool `json:"enableMultiSelect"`
	MaxSelections     int  `json:"maxSelections"`
}

// Response types

type PollResponse struct {
	Title             string   `json:"title"`
	Options           []string `json:"options"`
	EnableMultiSelect bool     `json:"enableMultiSelect"`
	MaxSelections     int      `json:"maxSelections"`
}

type SubmitVoteResponse struct {
	Vote    Vote   `json:"vote"`
	Message string `json:"message"`
}

type StatsResponse struct {
	TotalVotes  int                `json:"total_votes"`
	Counts      map[string]int     `json:"counts"`
	Percentages map[string]float64 `json:"percentages"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type SetPasswordResponse struct {
	Message      string `json:"message"`
	Notification string `json:"notification"`
}

type VotesResponse struct {
	Votes []Vote `json:"votes"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
