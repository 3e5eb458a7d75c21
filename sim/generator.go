package sim

// VisitorGenerator draws visitors from an IntSource according to a Profile.
//
// Draw order per visitor is fixed: category (0..99), then service duration,
// then channel (0..99). A category draw past the last share consumes no
// further draws and yields no visitor.
type VisitorGenerator struct {
	src         IntSource
	profile     Profile
	interval    int // generate only on minutes divisible by interval
	maxArrivals int // arrivals per generating minute are uniform in [0, maxArrivals)
}

// NewVisitorGenerator builds a generator using the cadence and profile from cfg.
func NewVisitorGenerator(src IntSource, cfg Config) *VisitorGenerator {
	if src == nil {
		panic("NewVisitorGenerator: src must not be nil")
	}
	return &VisitorGenerator{
		src:         src,
		profile:     cfg.Profile,
		interval:    cfg.ArrivalInterval,
		maxArrivals: cfg.MaxArrivals,
	}
}

// Generate returns the visitors arriving at the given minute.
// Returns nil during lunch and on minutes off the arrival cadence,
// without consuming any draws.
func (g *VisitorGenerator) Generate(minute int, lunch bool) []Visitor {
	if lunch || minute%g.interval != 0 {
		return nil
	}
	return g.DrawN(g.src.Intn(g.maxArrivals))
}

// DrawN performs n draws and returns the visitors among them.
func (g *VisitorGenerator) DrawN(n int) []Visitor {
	var visitors []Visitor
	for i := 0; i < n; i++ {
		if v, ok := g.Draw(); ok {
			visitors = append(visitors, v)
		}
	}
	return visitors
}

// Draw produces a single visitor. ok is false when the category draw
// landed in the no-visitor band.
func (g *VisitorGenerator) Draw() (v Visitor, ok bool) {
	category, ok := g.drawCategory()
	if !ok {
		return Visitor{}, false
	}
	cp := g.profile[category]
	duration := uniformRange(g.src, cp.MinDuration, cp.MaxDuration)
	channel := Offline
	if g.src.Intn(100) < cp.ElectronicPercent {
		channel = Electronic
	}
	if duration <= 0 {
		return Visitor{}, false
	}
	return NewVisitor(category, duration, channel), true
}

func (g *VisitorGenerator) drawCategory() (Category, bool) {
	p := g.src.Intn(100)
	upper := 0
	for _, c := range Categories {
		upper += g.profile[c].Share
		if p < upper {
			return c, true
		}
	}
	return 0, false
}
