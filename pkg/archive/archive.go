// Package archive aggregates catalog entries released around today's date
// across every year since 1940.
//
// The upstream catalog only filters by bounded date ranges, not by a
// repeating day-of-year predicate, so the aggregator synthesizes one: it
// issues one bounded query per year and page, merges everything, then
// re-checks each candidate against the window's month/day predicate on the
// client side. The re-check also corrects for upstream string-bound
// semantics at month boundaries.
package archive

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/flickscope/flickscope/internal/utils"
	"github.com/flickscope/flickscope/pkg/tmdb"
)

const (
	// FirstYear bounds the backward fan-out.
	FirstYear = 1940

	// Pages fetched per year, per kind.
	MoviePages  = 2
	SeriesPages = 3

	// Vote-count floors per kind.
	MovieVoteFloor  = 100
	SeriesVoteFloor = 50

	// MaxResults caps the ranked output per kind.
	MaxResults = 18

	windowRadius = 3
)

// Cataloger is the date-range slice of the catalog client.
type Cataloger interface {
	DiscoverDateRange(ctx context.Context, kind tmdb.Kind, q tmdb.DateRangeQuery) []tmdb.Entry
}

type Aggregator struct {
	catalog Cataloger
	now     func() time.Time
}

func New(catalog Cataloger) *Aggregator {
	return &Aggregator{catalog: catalog, now: time.Now}
}

// Result carries the ranked archive for both kinds plus the window it was
// computed for.
type Result struct {
	Window Window
	Movies []tmdb.Entry
	Series []tmdb.Entry
}

// ArchiveAroundToday fans one query per (year, page) out for both kinds,
// all concurrently, and merges whatever came back. Individual upstream
// failures only thin the pool; they never fail the aggregation.
func (a *Aggregator) ArchiveAroundToday(ctx context.Context) Result {
	today := a.now()
	window := WindowAround(today, windowRadius)
	currentYear := today.Year()

	utils.Log.Debugf("archive window: %s (%d-%d)", window, FirstYear, currentYear)

	var movies, series []tmdb.Entry

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		movies = a.collect(ctx, tmdb.KindMovie, window, MoviePages, currentYear)
	}()
	go func() {
		defer wg.Done()
		series = a.collect(ctx, tmdb.KindSeries, window, SeriesPages, currentYear)
	}()
	wg.Wait()

	return Result{
		Window: window,
		Movies: rank(filter(movies, window, MovieVoteFloor)),
		Series: rank(filter(series, window, SeriesVoteFloor)),
	}
}

// collect issues every (year, page) query for one kind concurrently and
// concatenates the results.
func (a *Aggregator) collect(ctx context.Context, kind tmdb.Kind, window Window, pages, currentYear int) []tmdb.Entry {
	type job struct{ year, page int }

	var jobs []job
	for year := FirstYear; year <= currentYear; year++ {
		for page := 1; page <= pages; page++ {
			jobs = append(jobs, job{year, page})
		}
	}

	perJob := make([][]tmdb.Entry, len(jobs))

	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(i, year, page int) {
			defer wg.Done()

			endYear := year
			if window.wrapsYear() {
				endYear = year + 1
			}

			perJob[i] = a.catalog.DiscoverDateRange(ctx, kind, tmdb.DateRangeQuery{
				From: fmt.Sprintf("%d-%02d-%02d", year, window.StartMonth, window.StartDay),
				To:   fmt.Sprintf("%d-%02d-%02d", endYear, window.EndMonth, window.EndDay),
				Page: page,
			})
		}(i, j.year, j.page)
	}
	wg.Wait()

	var merged []tmdb.Entry
	for _, entries := range perJob {
		merged = append(merged, entries...)
	}
	return merged
}

// filter applies the client-side window predicate, de-duplicates by id and
// drops entries below the vote floor.
func filter(entries []tmdb.Entry, window Window, voteFloor int) []tmdb.Entry {
	seen := make(map[int64]struct{}, len(entries))

	var out []tmdb.Entry
	for _, e := range entries {
		released, err := time.Parse("2006-01-02", e.ReleaseDate)
		if err != nil {
			continue
		}
		if !window.Contains(released.Month(), released.Day()) {
			continue
		}
		if e.VoteCount < int64(voteFloor) {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out
}

// rank orders by vote average, breaking ties on popularity, and truncates.
func rank(entries []tmdb.Entry) []tmdb.Entry {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].VoteAverage != entries[j].VoteAverage {
			return entries[i].VoteAverage > entries[j].VoteAverage
		}
		return entries[i].Popularity > entries[j].Popularity
	})
	if len(entries) > MaxResults {
		entries = entries[:MaxResults]
	}
	return entries
}
