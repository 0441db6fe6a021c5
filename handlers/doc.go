/*
Package handlers contains the HTTP request handlers for the pollbox API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - PollHandler: public voting surface (poll payload, vote submission,
    live statistics)
  - AdminHandler: password-gated administration (login, config edits,
    vote reset, CSV/PDF export)

# Voting Flow

Anonymous respondents interact without any identity:

	GET  /poll        → GetPoll (title, options, mode)
	POST /poll/votes  → SubmitVote (validates membership + cardinality)
	GET  /poll/stats  → GetStats (counts, percentages)

The HTTP layer owns the membership check (every selected name must be a
current option); the store owns non-emptiness and cardinality against the
current mode. Each request is one read-modify-write cycle against the
document; nothing is cached between requests.

# Admin Flow

Login exchanges the poll password for a bearer token sent as X-Admin-Token:

	POST   /admin/login           → Login
	POST   /admin/logout          → Logout
	GET    /admin/votes           → GetVotes (raw log)
	PUT    /admin/title           → SetTitle
	PUT    /admin/password        → SetPassword (fires the mail notifier)
	POST   /admin/options         → AddOption (409 on duplicate)
	DELETE /admin/options/{index} → RemoveOption (clamps maxSelections)
	PUT    /admin/rule            → SetRule
	POST   /admin/reset           → Reset (clears votes only)
	GET    /admin/export/csv      → ExportCSV
	GET    /admin/export/pdf      → ExportPDF

A failed notification mail downgrades to a warning in the response; the
password change itself always stands once persisted.
*/
package handlers
