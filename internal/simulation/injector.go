package simulation

import (
	"math/rand"
	"time"

	"github.com/MohamedSultan7/davinci-bakers/pkg/config"
	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
)

// Injector reproduces the rough edges of a real backend: variable latency
// plus occasional rate-limit and server-error rejections. The storefront is
// expected to handle all three gracefully.
type Injector struct {
	cfg  config.SimulationConfig
	roll func() float64
}

// NewInjector builds an injector. roll is the randomness source; pass nil for
// the default.
func NewInjector(cfg config.SimulationConfig, roll func() float64) *Injector {
	if roll == nil {
		roll = rand.Float64
	}
	return &Injector{cfg: cfg, roll: roll}
}

// Enabled reports whether faults should be injected at all.
func (i *Injector) Enabled() bool {
	return i.cfg.Enabled
}

// Delay picks a latency within the configured window.
func (i *Injector) Delay() time.Duration {
	if !i.cfg.Enabled {
		return 0
	}
	window := i.cfg.DelayMax - i.cfg.DelayMin
	if window <= 0 {
		return i.cfg.DelayMin
	}
	return i.cfg.DelayMin + time.Duration(i.roll()*float64(window))
}

// Fault decides whether this request should fail. Rate limiting is checked
// before server errors so the configured rates stay independent bands of the
// same roll.
func (i *Injector) Fault() error {
	if !i.cfg.Enabled {
		return nil
	}
	r := i.roll()
	if r < i.cfg.RateLimitRate {
		return pkgerrors.New(pkgerrors.CodeRateLimit, "simulated rate limit")
	}
	if r < i.cfg.RateLimitRate+i.cfg.ServerErrorRate {
		return pkgerrors.New(pkgerrors.CodeServerError, "simulated server error")
	}
	return nil
}
