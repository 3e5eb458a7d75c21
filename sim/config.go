package sim

import (
	"fmt"
)

// Defaults for a single business day at the institution.
const (
	DefaultCounters        = 3
	DefaultTotalMinutes    = 540 // 09:00 to 18:00
	DefaultInitialVisitors = 10
	DefaultOpenHour        = 9
	DefaultLunchHour       = 13
	DefaultArrivalInterval = 5 // arrivals are drawn every N minutes
	DefaultMaxArrivals     = 4 // arrivals per draw are uniform in [0, MaxArrivals)

	// NoLunch as LunchHour keeps the counters open all day.
	NoLunch = -1
)

// CategoryProfile describes how one visitor category is drawn.
type CategoryProfile struct {
	Share             int `yaml:"share"`              // percentage points of the 0..99 category draw
	MinDuration       int `yaml:"min_duration"`       // inclusive, minutes
	MaxDuration       int `yaml:"max_duration"`       // inclusive, minutes
	ElectronicPercent int `yaml:"electronic_percent"` // chance of joining the electronic queue
}

// Profile holds the draw parameters for every category, indexed by Category.
// Category shares are laid out back to back in declaration order; draws that
// fall past the last share produce no visitor.
type Profile [NumCategories]CategoryProfile

// DefaultProfile returns the standard visitor mix:
// 5% children, 40% adults, 30% old men, 25% no visitor.
func DefaultProfile() Profile {
	return Profile{
		Child:  {Share: 5, MinDuration: 5, MaxDuration: 10, ElectronicPercent: 20},
		Adult:  {Share: 40, MinDuration: 2, MaxDuration: 5, ElectronicPercent: 70},
		OldMan: {Share: 30, MinDuration: 7, MaxDuration: 9, ElectronicPercent: 5},
	}
}

// Validate checks duration ranges, percentages and that shares fit in 100.
func (p Profile) Validate() error {
	total := 0
	for _, c := range Categories {
		cp := p[c]
		if cp.Share < 0 {
			return fmt.Errorf("%s: share must be >= 0, got %d", c, cp.Share)
		}
		if cp.MinDuration < 1 {
			return fmt.Errorf("%s: min_duration must be >= 1, got %d", c, cp.MinDuration)
		}
		if cp.MaxDuration < cp.MinDuration {
			return fmt.Errorf("%s: max_duration %d is below min_duration %d", c, cp.MaxDuration, cp.MinDuration)
		}
		if cp.ElectronicPercent < 0 || cp.ElectronicPercent > 100 {
			return fmt.Errorf("%s: electronic_percent must be in [0, 100], got %d", c, cp.ElectronicPercent)
		}
		total += cp.Share
	}
	if total > 100 {
		return fmt.Errorf("category shares sum to %d, must be <= 100", total)
	}
	return nil
}

// Config groups every parameter of a simulation run.
// Field tags serve the YAML config file and COUNTERSIM_* environment overrides.
type Config struct {
	Counters        int     `yaml:"counters" env:"COUNTERS"`
	TotalMinutes    int     `yaml:"total_minutes" env:"TOTAL_MINUTES"`
	InitialVisitors int     `yaml:"initial_visitors" env:"INITIAL_VISITORS"`
	OpenHour        int     `yaml:"open_hour" env:"OPEN_HOUR"`
	LunchHour       int     `yaml:"lunch_hour" env:"LUNCH_HOUR"`
	ArrivalInterval int     `yaml:"arrival_interval" env:"ARRIVAL_INTERVAL"`
	MaxArrivals     int     `yaml:"max_arrivals" env:"MAX_ARRIVALS"`
	Seed            int64   `yaml:"seed" env:"SEED"`
	Profile         Profile `yaml:"profile"`
}

// DefaultConfig returns the configuration of a standard 540-minute day with three counters.
func DefaultConfig() Config {
	return Config{
		Counters:        DefaultCounters,
		TotalMinutes:    DefaultTotalMinutes,
		InitialVisitors: DefaultInitialVisitors,
		OpenHour:        DefaultOpenHour,
		LunchHour:       DefaultLunchHour,
		ArrivalInterval: DefaultArrivalInterval,
		MaxArrivals:     DefaultMaxArrivals,
		Seed:            42,
		Profile:         DefaultProfile(),
	}
}

// Hour returns the wall-clock hour during simulated minute m.
func (c Config) Hour(minute int) int {
	return c.OpenHour + minute/60
}

// IsLunch reports whether minute m falls in the lunch hour.
func (c Config) IsLunch(minute int) bool {
	return c.Hour(minute) == c.LunchHour
}

// Validate returns the first invalid field, wrapped with its name.
func (c Config) Validate() error {
	if c.Counters < 1 {
		return fmt.Errorf("counters must be >= 1, got %d", c.Counters)
	}
	if c.TotalMinutes < 1 {
		return fmt.Errorf("total_minutes must be >= 1, got %d", c.TotalMinutes)
	}
	if c.InitialVisitors < 0 {
		return fmt.Errorf("initial_visitors must be >= 0, got %d", c.InitialVisitors)
	}
	if c.OpenHour < 0 || c.OpenHour > 23 {
		return fmt.Errorf("open_hour must be in [0, 23], got %d", c.OpenHour)
	}
	if c.ArrivalInterval < 1 {
		return fmt.Errorf("arrival_interval must be >= 1, got %d", c.ArrivalInterval)
	}
	if c.MaxArrivals < 1 {
		return fmt.Errorf("max_arrivals must be >= 1, got %d", c.MaxArrivals)
	}
	if c.LunchHour != NoLunch && (c.LunchHour < 0 || c.LunchHour > 23) {
		return fmt.Errorf("lunch_hour must be in [0, 23] or %d, got %d", NoLunch, c.LunchHour)
	}
	if err := c.Profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}
