// Package routine draws daily routines (wake-up, sleep and outings) for
// simulated residents from a Profile.
package routine

import (
	"math"
	"math/rand/v2"

	"github.com/Phasilva-dev/IC-Pedro/pkg/dist"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("routine")

// DaySeconds is the length of the cycle times are wrapped into.
const DaySeconds = 24 * 60 * 60

// Event is one outing, in seconds since midnight.
type Event struct {
	Leave  int32
	Return int32
}

// Routine is one drawn day.
type Routine struct {
	WakeUp int32
	Sleep  int32
	Events []Event
}

// Generator holds the distributions of a validated profile.
type Generator struct {
	wakeUp dist.Distribution
	sleep  dist.Distribution
	events [][2]dist.Distribution
}

// NewGenerator builds every distribution of p once.
func NewGenerator(p *Profile) (*Generator, error) {
	g := &Generator{}
	var err error
	if g.wakeUp, err = p.WakeUp.Distribution(); err != nil {
		return nil, errors.Wrap(err, "wake_up")
	}
	if g.sleep, err = p.Sleep.Distribution(); err != nil {
		return nil, errors.Wrap(err, "sleep")
	}
	for i, ev := range p.Events {
		var pair [2]dist.Distribution
		if pair[0], err = ev.Leave.Distribution(); err != nil {
			return nil, errors.Wrapf(err, "events[%d].leave", i)
		}
		if pair[1], err = ev.Return.Distribution(); err != nil {
			return nil, errors.Wrapf(err, "events[%d].return", i)
		}
		g.events = append(g.events, pair)
	}
	return g, nil
}

// Next draws one routine: wake-up, sleep, then each outing's leave and
// return time, in that order.
func (g *Generator) Next(src rand.Source) (Routine, error) {
	var r Routine
	var err error
	if r.WakeUp, err = CyclicTime(g.wakeUp, src); err != nil {
		return Routine{}, err
	}
	if r.Sleep, err = CyclicTime(g.sleep, src); err != nil {
		return Routine{}, err
	}
	if len(g.events) > 0 {
		r.Events = make([]Event, len(g.events))
	}
	for i, pair := range g.events {
		if r.Events[i].Leave, err = CyclicTime(pair[0], src); err != nil {
			return Routine{}, err
		}
		if r.Events[i].Return, err = CyclicTime(pair[1], src); err != nil {
			return Routine{}, err
		}
	}
	return r, nil
}

// Generate draws n routines from one source.
func (g *Generator) Generate(n int, src rand.Source) ([]Routine, error) {
	if n < 0 {
		return nil, errors.Errorf("negative routine count %d", n)
	}
	routines := make([]Routine, n)
	for i := range routines {
		r, err := g.Next(src)
		if err != nil {
			return nil, errors.Wrapf(err, "routine %d", i)
		}
		routines[i] = r
	}
	log.Debugf("generated %d routines", n)
	return routines, nil
}

// FromProfile draws a single routine from p.
func FromProfile(p *Profile, src rand.Source) (Routine, error) {
	g, err := NewGenerator(p)
	if err != nil {
		return Routine{}, err
	}
	return g.Next(src)
}

// CyclicTime draws from d, truncates to whole seconds and wraps the result
// into [0, DaySeconds).
func CyclicTime(d dist.Distribution, src rand.Source) (int32, error) {
	x, err := d.Sample(src)
	if err != nil {
		return 0, err
	}
	t := math.Mod(math.Trunc(x), DaySeconds)
	if t < 0 {
		t += DaySeconds
	}
	return int32(t), nil
}
