package handler

import (
	"net/http"
	"time"
)

type healthResponse struct {
	OK   bool   `json:"ok"`
	Time string `json:"time"`
}

// HealthcheckHandler responde {"ok": true, "time": ...} enquanto o processo estiver de pé
func HealthcheckHandler(now func() time.Time) http.Handler {
	if now == nil {
		now = time.Now
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			OK:   true,
			Time: now().UTC().Format(time.RFC3339),
		})
	})
}
