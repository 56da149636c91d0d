package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/shiftsorted/shiftsorted-backend/api/responses"
	"github.com/shiftsorted/shiftsorted-backend/pkg/config"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
)

const readinessTimeout = 3 * time.Second

// Pinger is the readiness surface a dependency exposes.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ShiftSorted-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks the hard dependencies. A nil pinger is treated as
// not wired and skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, db, redis Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ShiftSorted-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		for name, dep := range map[string]Pinger{
			"db":    db,
			"redis": redis,
		} {
			if dep == nil {
				checks[name] = "skipped"
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				checks[name] = "down"
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable").WithDetails(checks))
				return
			}
			checks[name] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
