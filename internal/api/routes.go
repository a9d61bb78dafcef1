package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// SetupRoutes configures the RPC endpoint and health check. All procedures
// live behind the single /rpc/{procedure} endpoint; the read-only procedures
// also accept GET. Cross-origin calls are permitted from any origin.
func SetupRoutes(handler *Handler) http.Handler {
	r := mux.NewRouter()

	// Liveness alias
	r.HandleFunc("/health", handler.Healthcheck).Methods("GET")

	// RPC endpoint
	r.HandleFunc("/rpc/{procedure}", handler.Dispatch).Methods("POST")
	r.HandleFunc("/rpc/{procedure:getInvestments|healthcheck}", handler.Dispatch).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return cors(r)
}
