package domain

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestScenarioLibraryCatalog(t *testing.T) {
	lib := NewScenarioLibrary()

	tests := []struct {
		name          string
		spxShock      string
		ratesShockBps string
		oilShock      string
	}{
		{ScenarioBaseline, "0", "0", "0"},
		{ScenarioMarketCrash, "-0.15", "0", "0"},
		{ScenarioRatesShock, "0", "50", "0"},
		{ScenarioOilSpike, "0", "0", "0.2"},
		{ScenarioRecessionCombo, "-0.1", "-75", "-0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := lib.Get(tt.name)
			if !ok {
				t.Fatalf("scenario %q not registered", tt.name)
			}
			if s.Name != tt.name {
				t.Fatalf("name %q, want %q", s.Name, tt.name)
			}
			if want := decimal.RequireFromString(tt.spxShock); !s.Shock.SpxShock.Equal(want) {
				t.Fatalf("spx shock %s, want %s", s.Shock.SpxShock, want)
			}
			if want := decimal.RequireFromString(tt.ratesShockBps); !s.Shock.RatesShockBps.Equal(want) {
				t.Fatalf("rates shock %s, want %s", s.Shock.RatesShockBps, want)
			}
			if want := decimal.RequireFromString(tt.oilShock); !s.Shock.OilShock.Equal(want) {
				t.Fatalf("oil shock %s, want %s", s.Shock.OilShock, want)
			}
		})
	}
}

func TestScenarioLibraryList(t *testing.T) {
	lib := NewScenarioLibrary()

	list := lib.List()

	want := []string{
		ScenarioBaseline,
		ScenarioMarketCrash,
		ScenarioRatesShock,
		ScenarioOilSpike,
		ScenarioRecessionCombo,
		ScenarioCustom,
	}
	if len(list) != len(want) {
		t.Fatalf("list length %d, want %d", len(list), len(want))
	}
	for i, name := range want {
		if list[i].Name != name {
			t.Fatalf("list[%d] = %q, want %q", i, list[i].Name, name)
		}
	}
}

func TestScenarioLibraryResolveFallback(t *testing.T) {
	lib := NewScenarioLibrary()

	for _, name := range []string{"", "Alien Invasion", "market crash (-15% spx)"} {
		s := lib.Resolve(name)
		if s.Name != ScenarioBaseline {
			t.Fatalf("Resolve(%q) = %q, want baseline", name, s.Name)
		}
		if !s.Shock.IsZero() {
			t.Fatalf("Resolve(%q) carries non-zero shock", name)
		}
	}
}

func TestCustomScenario(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name         string
		spxPct       *float64
		ratesBps     *float64
		oilPct       *float64
		wantName     string
		wantSpx      string
		wantRatesBps string
		wantOil      string
	}{
		{
			name:         "all supplied",
			spxPct:       f(10),
			ratesBps:     f(-25),
			oilPct:       f(5),
			wantName:     "Custom (10%, -25bps, 5%)",
			wantSpx:      "0.1",
			wantRatesBps: "-25",
			wantOil:      "0.05",
		},
		{
			name:         "fractional percent",
			spxPct:       f(-2.5),
			ratesBps:     f(37.5),
			oilPct:       f(0),
			wantName:     "Custom (-2.5%, 37.5bps, 0%)",
			wantSpx:      "-0.025",
			wantRatesBps: "37.5",
			wantOil:      "0",
		},
		{
			name:         "nil inputs",
			wantName:     "Custom (0%, 0bps, 0%)",
			wantSpx:      "0",
			wantRatesBps: "0",
			wantOil:      "0",
		},
		{
			name:         "nan and inf sanitized",
			spxPct:       f(math.NaN()),
			ratesBps:     f(math.Inf(1)),
			oilPct:       f(math.Inf(-1)),
			wantName:     "Custom (0%, 0bps, 0%)",
			wantSpx:      "0",
			wantRatesBps: "0",
			wantOil:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := CustomScenario(tt.spxPct, tt.ratesBps, tt.oilPct)

			if s.Name != tt.wantName {
				t.Fatalf("name %q, want %q", s.Name, tt.wantName)
			}
			if want := decimal.RequireFromString(tt.wantSpx); !s.Shock.SpxShock.Equal(want) {
				t.Fatalf("spx shock %s, want %s", s.Shock.SpxShock, want)
			}
			if want := decimal.RequireFromString(tt.wantRatesBps); !s.Shock.RatesShockBps.Equal(want) {
				t.Fatalf("rates shock %s, want %s", s.Shock.RatesShockBps, want)
			}
			if want := decimal.RequireFromString(tt.wantOil); !s.Shock.OilShock.Equal(want) {
				t.Fatalf("oil shock %s, want %s", s.Shock.OilShock, want)
			}
		})
	}
}
