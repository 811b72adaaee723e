package handler

import (
	"net/http"

	"secondlook/internal/httputil"
)

// Root is the liveness text endpoint
// GET /
func Root(w http.ResponseWriter, r *http.Request) {
	httputil.RespondText(w, http.StatusOK, "Second Look server is running")
}

// HealthCheck is the JSON health endpoint
// GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
