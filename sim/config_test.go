package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_IsLunch_OnlyDuringThirteenthHour(t *testing.T) {
	// GIVEN the default day starting at 09:00
	cfg := DefaultConfig()

	// THEN minutes 240..299 (13:00-13:59) are lunch and their neighbours are not
	assert.False(t, cfg.IsLunch(239))
	assert.True(t, cfg.IsLunch(240))
	assert.True(t, cfg.IsLunch(299))
	assert.False(t, cfg.IsLunch(300))
	assert.Equal(t, 17, cfg.Hour(539))
}

func TestConfig_NoLunch_NeverLunch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LunchHour = NoLunch
	for m := 0; m < cfg.TotalMinutes; m++ {
		if cfg.IsLunch(m) {
			t.Fatalf("minute %d reported as lunch with NoLunch", m)
		}
	}
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_RejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero counters", func(c *Config) { c.Counters = 0 }, "counters"},
		{"zero minutes", func(c *Config) { c.TotalMinutes = 0 }, "total_minutes"},
		{"negative initial visitors", func(c *Config) { c.InitialVisitors = -1 }, "initial_visitors"},
		{"open hour out of range", func(c *Config) { c.OpenHour = 24 }, "open_hour"},
		{"zero arrival interval", func(c *Config) { c.ArrivalInterval = 0 }, "arrival_interval"},
		{"zero max arrivals", func(c *Config) { c.MaxArrivals = 0 }, "max_arrivals"},
		{"lunch hour out of range", func(c *Config) { c.LunchHour = 25 }, "lunch_hour"},
		{"shares above 100", func(c *Config) { c.Profile[Adult].Share = 90 }, "shares sum"},
		{"zero min duration", func(c *Config) { c.Profile[Child].MinDuration = 0 }, "min_duration"},
		{"max below min", func(c *Config) { c.Profile[OldMan].MaxDuration = 6 }, "max_duration"},
		{"electronic percent above 100", func(c *Config) { c.Profile[Adult].ElectronicPercent = 101 }, "electronic_percent"},
		{"negative share", func(c *Config) { c.Profile[Child].Share = -1 }, "share"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestDefaultProfile_MatchesStandardMix(t *testing.T) {
	p := DefaultProfile()
	assert.Equal(t, 5, p[Child].Share)
	assert.Equal(t, 40, p[Adult].Share)
	assert.Equal(t, 30, p[OldMan].Share)
	assert.Equal(t, 70, p[Adult].ElectronicPercent)
}
