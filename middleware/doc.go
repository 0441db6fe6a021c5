/*
Package middleware provides HTTP cross-cutting helpers: request logging,
JSON response and body helpers, CORS, and client IP extraction.

WithLogging wraps individual handlers and logs start/completion with
method, path, and duration via slog. CORS wraps the whole mux and answers
preflight requests. ErrorResponse emits the shared models.ErrorResponse
shape so every error looks the same on the wire.
*/
package middleware
