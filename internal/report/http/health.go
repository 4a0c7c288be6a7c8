package http

import (
	"net/http"
	"time"

	"github.com/clientdesk/clientdesk/internal/report/store"
	"github.com/clientdesk/clientdesk/pkg/httpx"
	"github.com/clientdesk/clientdesk/pkg/slogx"
)

// LivezHandler reports process liveness. It never touches the database.
func LivezHandler(startTime time.Time, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
		})
	})
}

// ReadyzHandler reports readiness: the service is ready when the database
// answers a ping.
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := slogx.FromContext(ctx)

		checks := map[string]string{"database": "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(ctx); err != nil {
			log.Error("readiness check failed", "error", err)
			checks["database"] = "unreachable"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  checks,
		})
	})
}
