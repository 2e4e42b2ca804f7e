package controllers

import (
	"net/http"
	"time"

	"github.com/MohamedSultan7/davinci-bakers/api/responses"
	"github.com/MohamedSultan7/davinci-bakers/pkg/config"
)

var bootTime = time.Now().UTC()

// HealthLive is the liveness probe. The mock backend has no external
// dependencies, so readiness reduces to the process being up.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"status": "ok",
			"env":    cfg.App.Env,
		})
	}
}

func HealthReady(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"status":         "ready",
			"env":            cfg.App.Env,
			"uptime_seconds": int(time.Since(bootTime).Seconds()),
		})
	}
}
