// Package importer runs the assignment import pipeline: load the ledger,
// collect unseen assignments, order them, hand each one to Things, and record
// what was sent.
package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/assignment"
	"github.com/realprogrammersusevim/canvas-todo/internal/core/ledger"
	"github.com/realprogrammersusevim/canvas-todo/internal/core/logging"
	"github.com/realprogrammersusevim/canvas-todo/internal/core/things"
	"github.com/realprogrammersusevim/canvas-todo/internal/printer"
)

// CourseSource lists courses and their upcoming assignments.
type CourseSource interface {
	// Courses returns the user's favorite courses, or all enrolled courses
	// when none are marked as favorites.
	Courses(ctx context.Context) ([]assignment.Course, error)
	// UpcomingAssignments returns assignments due in the future or undated.
	UpcomingAssignments(ctx context.Context, course assignment.Course) ([]assignment.Record, error)
}

// Dispatcher hands a payload to the task manager.
type Dispatcher interface {
	Dispatch(ctx context.Context, p things.Payload) error
}

// Options configures an Importer.
type Options struct {
	Builder things.Builder
	Filter  CourseFilter

	// Incremental saves the ledger after every dispatch. By default the ledger
	// is saved once after the whole run, so a failure part way through leaves
	// already created tasks unrecorded and they will be sent again next run.
	Incremental bool

	// DryRun leaves the ledger untouched on disk.
	DryRun bool

	// Location is the zone deadlines are computed in. Nil means time.Local.
	Location *time.Location
}

// Result summarizes a run.
type Result struct {
	Dispatched      []string // assignment ids in dispatch order
	AlreadyImported int      // assignments skipped because the ledger had them
	SkippedCourses  int      // restricted or filtered courses
}

// Importer runs the pipeline.
type Importer struct {
	source     CourseSource
	store      ledger.Store
	dispatcher Dispatcher
	opts       Options
	log        zerolog.Logger
	out        *printer.Printer
}

// New creates an Importer.
func New(source CourseSource, store ledger.Store, dispatcher Dispatcher, opts Options, log zerolog.Logger, out *printer.Printer) *Importer {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Importer{
		source:     source,
		store:      store,
		dispatcher: dispatcher,
		opts:       opts,
		log:        log,
		out:        out,
	}
}

// Run performs one import. Any error aborts the run; with the default flush
// policy nothing from the aborted run is written to the ledger.
func (im *Importer) Run(ctx context.Context) (Result, error) {
	l, err := im.store.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load ledger: %w", err)
	}
	im.log.Debug().Ctx(ctx).Int("imported", l.Len()).Msg("ledger loaded")

	im.out.Printf("Fetching assignments...")

	candidates, res, err := im.Collect(ctx, l)
	if err != nil {
		return res, err
	}

	assignment.Order(candidates)

	im.out.Printf("Adding %d Todos to Things", len(candidates))

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		actx := logging.WithAssignmentID(ctx, c.Record.ID)

		p := im.opts.Builder.Build(c)
		if err := im.dispatcher.Dispatch(actx, p); err != nil {
			im.log.Error().Ctx(actx).Err(err).Msg("dispatch failed")
			return res, err
		}

		l.Add(c.Record.ID)
		res.Dispatched = append(res.Dispatched, c.Record.ID)
		im.log.Info().Ctx(actx).
			Str("title", p.Title).
			Str("deadline", p.Deadline).
			Msg("dispatched")

		if im.opts.Incremental && !im.opts.DryRun {
			if err := im.store.Save(ctx, l); err != nil {
				return res, fmt.Errorf("save ledger: %w", err)
			}
		}
	}

	im.out.Printf("Done! Check your Things 3 Inbox.")

	if im.opts.DryRun {
		im.log.Debug().Msg("dry run, ledger not saved")
		return res, nil
	}

	if err := im.store.Save(ctx, l); err != nil {
		return res, fmt.Errorf("save ledger: %w", err)
	}

	return res, nil
}

// Collect gathers assignments that are not in l. Restricted courses and
// courses rejected by the filter are skipped. An id seen twice in one pass
// (cross-listed courses) is only collected once.
func (im *Importer) Collect(ctx context.Context, l *ledger.Ledger) ([]assignment.Candidate, Result, error) {
	var res Result

	courses, err := im.source.Courses(ctx)
	if err != nil {
		return nil, res, err
	}

	var (
		candidates []assignment.Candidate
		seen       = make(map[string]struct{})
	)

	for _, co := range courses {
		if co.Restricted() {
			im.log.Debug().Str("course_id", co.ID).Msg("skipping restricted course")
			res.SkippedCourses++
			continue
		}
		if !im.opts.Filter.Allows(co.Name) {
			im.log.Debug().Str("course_id", co.ID).Str("course", co.Name).Msg("skipping filtered course")
			res.SkippedCourses++
			continue
		}

		im.out.Printf("Checking course: %s", co.Name)

		cctx := logging.WithCourseID(ctx, co.ID)
		records, err := im.source.UpcomingAssignments(cctx, co)
		if err != nil {
			return nil, res, fmt.Errorf("course %q: %w", co.Name, err)
		}

		for _, r := range records {
			if l.Contains(r.ID) {
				res.AlreadyImported++
				continue
			}
			if _, dup := seen[r.ID]; dup {
				continue
			}
			seen[r.ID] = struct{}{}

			if r.CourseName == "" {
				r.CourseName = co.Name
			}
			candidates = append(candidates, assignment.NewCandidate(r, im.opts.Location))
		}

		im.log.Debug().Ctx(cctx).Int("assignments", len(records)).Msg("course checked")
	}

	return candidates, res, nil
}
