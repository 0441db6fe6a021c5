/*
Package router defines the HTTP routes using Go 1.22+ method patterns.

NewRouter wires the shared collaborators (store, auth gate, config editor,
mail notifier) into the handlers and registers every route with the
logging middleware. The returned mux is wrapped with CORS in main.
*/
package router
