package component

import "github.com/milk9111/hop/viewport"

// Stage is the singleton holding the current viewport metrics and the
// proportional tuning they were derived from.
type Stage struct {
	Config  viewport.Config
	Metrics viewport.Metrics
}

var StageComponent = NewComponent[Stage]()
