package controllers

import (
	"net/http"

	"github.com/riffus/hyperswitch/api/responses"
	"github.com/riffus/hyperswitch/internal/health"
	"github.com/riffus/hyperswitch/pkg/config"
	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
	"github.com/riffus/hyperswitch/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Hyperswitch-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, svc *health.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Hyperswitch-Env", cfg.App.Env)

		if err := svc.Check(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "readiness check failed"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
