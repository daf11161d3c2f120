// Package trackers implements Trackers, which track and keep data
// generated during an experiment
package trackers

import ts "github.com/samuelfneumann/gridworlds/timestep"

// Tracker tracks data from the TimeSteps of an experiment. Track is
// called with every TimeStep of the experiment, in order.
type Tracker interface {
	Track(t ts.TimeStep)
}
