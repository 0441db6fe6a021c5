/*
Package cliparse parses server configuration from CLI flags with
environment variable fallbacks.

Flags win over env vars; env vars win over defaults. Relay credentials are
secrets and should come from the environment (or a .env file loaded in
main), though CLI flags exist for development.

	-p / PORT                  server port (default 8741)
	-f / POLL_DATA_FILE        poll document path (default polling_data.json)
	-font / REPORT_FONT_FILE   TTF font for PDF export (optional)
	SMTP_HOST, SMTP_PORT       mail relay (optional; default port 587)
	-smtp-user / SMTP_USER     relay username
	-smtp-pass / SMTP_PASSWORD relay password
	NOTIFY_EMAIL               notification recipient
*/
package cliparse
