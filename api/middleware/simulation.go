package middleware

import (
	"net/http"
	"time"

	"github.com/MohamedSultan7/davinci-bakers/api/responses"
	"github.com/MohamedSultan7/davinci-bakers/internal/simulation"
	"github.com/MohamedSultan7/davinci-bakers/pkg/logger"
)

// Simulation delays each request and occasionally rejects it, mimicking a
// busy production backend. sleep is injectable so tests stay fast.
func Simulation(inj *simulation.Injector, logg *logger.Logger, sleep func(time.Duration)) func(http.Handler) http.Handler {
	if sleep == nil {
		sleep = time.Sleep
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if inj == nil || !inj.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			if delay := inj.Delay(); delay > 0 {
				sleep(delay)
			}

			if err := inj.Fault(); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
