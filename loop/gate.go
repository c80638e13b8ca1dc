package loop

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// Reasons the loop may be held.
const (
	HoldLoading     = "loading"
	HoldOrientation = "orientation"
	HoldPaused      = "paused"
)

// Gate runs the driver only while no hold is set.
type Gate struct {
	driver *Driver
	holds  map[string]bool
}

// NewGate wraps driver with the given initial holds and applies them.
func NewGate(driver *Driver, holds ...string) *Gate {
	g := &Gate{driver: driver, holds: make(map[string]bool)}
	for _, h := range holds {
		g.holds[h] = true
	}
	g.apply()
	return g
}

// Set places or clears a hold and starts or stops the driver accordingly.
func (g *Gate) Set(reason string, hold bool) {
	if g.holds[reason] == hold {
		return
	}
	if hold {
		g.holds[reason] = true
	} else {
		delete(g.holds, reason)
	}
	log.Info().Str("component", "loop").Str("reason", reason).Bool("hold", hold).Msg("gate changed")
	g.apply()
}

// Held reports whether reason is currently held.
func (g *Gate) Held(reason string) bool {
	return g.holds[reason]
}

// Holds returns the active holds in sorted order.
func (g *Gate) Holds() []string {
	out := make([]string, 0, len(g.holds))
	for h := range g.holds {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

func (g *Gate) apply() {
	if len(g.holds) == 0 {
		g.driver.Start()
		return
	}
	g.driver.Stop()
}
