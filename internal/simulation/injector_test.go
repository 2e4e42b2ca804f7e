package simulation

import (
	"testing"
	"time"

	"github.com/MohamedSultan7/davinci-bakers/pkg/config"
	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
)

func testCfg() config.SimulationConfig {
	return config.SimulationConfig{
		Enabled:         true,
		DelayMin:        300 * time.Millisecond,
		DelayMax:        700 * time.Millisecond,
		RateLimitRate:   0.05,
		ServerErrorRate: 0.02,
	}
}

func fixedRoll(v float64) func() float64 {
	return func() float64 { return v }
}

func TestDelayStaysInWindow(t *testing.T) {
	inj := NewInjector(testCfg(), fixedRoll(0.0))
	if got := inj.Delay(); got != 300*time.Millisecond {
		t.Fatalf("expected minimum delay, got %s", got)
	}

	inj = NewInjector(testCfg(), fixedRoll(0.999))
	got := inj.Delay()
	if got < 300*time.Millisecond || got >= 700*time.Millisecond {
		t.Fatalf("delay %s outside configured window", got)
	}
}

func TestFaultBands(t *testing.T) {
	cases := []struct {
		name string
		roll float64
		want pkgerrors.Code
	}{
		{name: "rate limit band", roll: 0.01, want: pkgerrors.CodeRateLimit},
		{name: "server error band", roll: 0.06, want: pkgerrors.CodeServerError},
		{name: "healthy", roll: 0.50, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inj := NewInjector(testCfg(), fixedRoll(tc.roll))
			err := inj.Fault()
			if tc.want == "" {
				if err != nil {
					t.Fatalf("expected no fault, got %v", err)
				}
				return
			}
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != tc.want {
				t.Fatalf("expected %s, got %v", tc.want, err)
			}
		})
	}
}

func TestDisabledInjectorIsInert(t *testing.T) {
	cfg := testCfg()
	cfg.Enabled = false
	inj := NewInjector(cfg, fixedRoll(0.0))

	if inj.Delay() != 0 {
		t.Fatal("disabled injector must not delay")
	}
	if err := inj.Fault(); err != nil {
		t.Fatalf("disabled injector must not fault, got %v", err)
	}
}
