package main

import (
	"fmt"
	"time"

	"github.com/romshark/coop"
)

// scenario builds the reference program: a detached task awaiting 5 units
// and the join of a branch awaiting 1, 2 and 1 more units with a branch
// awaiting 2 units. emit is called at every checkpoint with the
// elapsed time since the scenario was first polled.
func scenario(
	s *coop.Scheduler,
	unit time.Duration,
	emit func(label string, elapsed time.Duration),
) coop.Future {
	var start time.Time

	wait := func(units int) func() coop.Future {
		return func() coop.Future {
			return s.Timeout(time.Duration(units) * unit)
		}
	}
	mark := func(label string) func() coop.Future {
		return func() coop.Future {
			return coop.Do(func() { emit(label, time.Since(start)) })
		}
	}
	at := func(units int) string {
		return fmt.Sprintf("%dms", (time.Duration(units) * unit).Milliseconds())
	}

	return coop.Seq(
		func() coop.Future {
			start = time.Now()
			s.Spawn(coop.Seq(wait(5), mark(at(5))))
			return coop.Join(
				coop.Seq(
					wait(1), mark(at(1)),
					wait(2), mark(at(3)),
					wait(1), mark(at(4)),
				),
				coop.Seq(wait(2), mark(at(2))),
			)
		},
		mark("joined"),
	)
}
