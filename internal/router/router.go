package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shelfmates/shelfmates/internal/setup"
	mw "github.com/shelfmates/shelfmates/shared/middleware"
	"github.com/shelfmates/shelfmates/shared/middleware/metrics"
)

// New creates and configures a new mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedOrigins(deps.Config.Public.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	// JSON API only, no scripts/styles needed
	backendCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeadersWithCSP(deps.Config.Public.Secure, backendCSP))

	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(metrics.Middleware)

	// Add a wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler

	r.HandleFunc("/healthz", h.Health).Methods("GET")
	r.HandleFunc("/ready", h.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Commentary
	v1.HandleFunc("/books/{book}/sections/{section}/comments", h.PostComment).Methods("POST")
	v1.HandleFunc("/books/{book}/sections/{section}/comments", h.GetThreadComments).Methods("GET")
	v1.HandleFunc("/comments/{comment}/replies", h.CreateReply).Methods("POST")
	v1.HandleFunc("/comments/{comment}/reactions", h.CreateReaction).Methods("POST")
	v1.HandleFunc("/comments/{comment}/reactions", h.GetReactions).Methods("GET")
	v1.HandleFunc("/comments/{comment}", h.GetComment).Methods("GET")
	v1.HandleFunc("/comments/{comment}", h.DeleteComment).Methods("DELETE")
	v1.HandleFunc("/threads/{thread}", h.GetThread).Methods("GET")

	// Library
	v1.HandleFunc("/books", h.CreateBook).Methods("POST")
	v1.HandleFunc("/books/{book}", h.GetBook).Methods("GET")
	v1.HandleFunc("/books/{book}/progress", h.StartReading).Methods("POST")
	v1.HandleFunc("/books/{book}/progress", h.FinishSection).Methods("PUT")
	v1.HandleFunc("/books/{book}/progress", h.GetProgress).Methods("GET")
	v1.HandleFunc("/readers/{user}/progress", h.GetReaderProgress).Methods("GET")

	// Profiles
	v1.HandleFunc("/profiles", h.CreateProfile).Methods("POST")
	v1.HandleFunc("/profiles/{user}", h.UpdateProfile).Methods("PATCH")
	v1.HandleFunc("/profiles/{user}", h.GetProfile).Methods("GET")

	// Matching
	v1.HandleFunc("/matches", h.CreateMatch).Methods("POST")
	v1.HandleFunc("/matches/{match}/response", h.RespondToMatch).Methods("POST")
	v1.HandleFunc("/matches/{match}", h.GetMatch).Methods("GET")
	v1.HandleFunc("/readers/{user}/matches", h.GetMatches).Methods("GET")
	v1.HandleFunc("/readers/{user}/suggestions", h.GetSuggestions).Methods("GET")

	// Messaging
	v1.HandleFunc("/messages", h.CreateMessage).Methods("POST")
	v1.HandleFunc("/messages", h.GetConversation).Methods("GET")
	v1.HandleFunc("/messages/{message}", h.GetMessage).Methods("GET")
	v1.HandleFunc("/messages/{message}", h.DeleteMessage).Methods("DELETE")

	return r
}
