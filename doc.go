/*
Package main provides the entry point for the pollbox API server.

Pollbox is a single-tenant polling service: a fixed set of options is
presented to anonymous respondents, every submission is appended to a flat
JSON document, and an authenticated administrator can view aggregated
counts, export CSV/PDF reports, and edit the poll configuration.

# Starting the Server

	go run . -p 8741 -f polling_data.json

All settings have defaults or env fallbacks; a .env file in the working
directory is loaded first for the mail relay secrets.

# Configuration

Optional settings:

  - PORT (-p): server port (default: 8741)
  - POLL_DATA_FILE (-f): poll document path (default: polling_data.json)
  - REPORT_FONT_FILE (-font): TTF font for PDF export
  - SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD: mail relay for
    password-change notifications (skipped when absent)
  - NOTIFY_EMAIL: notification recipient

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (voting, stats, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Poll document, Selection union, request/response types
  - store: JSON-file persistence of the poll document
  - tally: vote aggregation (counts, percentages)
  - configedit: validated configuration mutations
  - auth: admin password gate and session tokens
  - notify: SMTP password-change notifier
  - report: CSV and PDF exports
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
