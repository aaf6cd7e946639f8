package api

import "net/http"

// healthz returns 200 "ok\n" unconditionally.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

// readyz returns 200 "ready\n" when the run history, if enabled, is reachable.
func (h *handlers) readyz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if h.store != nil {
		if err := h.store.Ping(); err != nil {
			h.logger.Warn("run history is not reachable", "component", "api", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("not ready\n"))
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ready\n"))
}
