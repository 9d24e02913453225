// Package stress measures building and tearing down very long lists.
package stress

import (
	"errors"
	"time"

	"github.com/sll-cli/sll/list"
	"github.com/sll-cli/sll/log"
)

// ErrCount is returned for a non-positive node count.
var ErrCount = errors.New("node count must be positive")

// Result holds the timings of one run.
type Result struct {
	Count    int           `json:"count"`
	Build    time.Duration `json:"build"`
	Teardown time.Duration `json:"teardown"`
	// Remaining is the length observed after teardown; always zero on success.
	Remaining int `json:"remaining"`
}

// Run pushes count integers onto a fresh list and releases them with Drop.
// progress, when not nil, is called after the build and after the teardown.
func Run(count int, progress func(stage string)) (*Result, error) {
	if count <= 0 {
		return nil, ErrCount
	}

	notify := func(stage string) {
		if progress != nil {
			progress(stage)
		}
	}

	l := list.New[int]()

	start := time.Now()
	for i := 0; i < count; i++ {
		l.Push(i)
	}
	build := time.Since(start)
	notify("build")

	start = time.Now()
	l.Drop()
	teardown := time.Since(start)
	notify("teardown")

	res := &Result{
		Count:     count,
		Build:     build,
		Teardown:  teardown,
		Remaining: l.Len(),
	}

	log.With(log.Fields{
		"count":    count,
		"build":    build.String(),
		"teardown": teardown.String(),
	}).Info("stress run finished")

	return res, nil
}
