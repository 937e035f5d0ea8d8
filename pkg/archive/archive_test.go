package archive

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flickscope/flickscope/pkg/tmdb"
)

type fakeCatalog struct {
	mu      sync.Mutex
	entries map[tmdb.Kind][]tmdb.Entry
	queries map[tmdb.Kind][]tmdb.DateRangeQuery
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		entries: map[tmdb.Kind][]tmdb.Entry{},
		queries: map[tmdb.Kind][]tmdb.DateRangeQuery{},
	}
}

// DiscoverDateRange replays the configured entries once, on the first page
// of the first year, and records every query.
func (f *fakeCatalog) DiscoverDateRange(ctx context.Context, kind tmdb.Kind, q tmdb.DateRangeQuery) []tmdb.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries[kind] = append(f.queries[kind], q)
	if q.Page == 1 && len(q.From) >= 4 && q.From[:4] == "1940" {
		return f.entries[kind]
	}
	return nil
}

func fixedNow(agg *Aggregator, t time.Time) {
	agg.now = func() time.Time { return t }
}

func TestArchiveQueryMatrix(t *testing.T) {
	catalog := newFakeCatalog()
	agg := New(catalog)
	fixedNow(agg, date(2023, time.June, 15))

	agg.ArchiveAroundToday(context.Background())

	years := 2023 - FirstYear + 1
	assert.Len(t, catalog.queries[tmdb.KindMovie], years*MoviePages)
	assert.Len(t, catalog.queries[tmdb.KindSeries], years*SeriesPages)

	for _, q := range catalog.queries[tmdb.KindMovie] {
		assert.Equal(t, q.From[5:], "06-12")
		assert.Equal(t, q.To[5:], "06-18")
		assert.Equal(t, q.From[:4], q.To[:4], "same-year window must use one bounded year")
	}
}

func TestArchiveYearWrapUsesNextYearBound(t *testing.T) {
	catalog := newFakeCatalog()
	agg := New(catalog)
	fixedNow(agg, date(2023, time.January, 2))

	agg.ArchiveAroundToday(context.Background())

	q := catalog.queries[tmdb.KindMovie][0]
	require.Equal(t, "12-30", q.From[5:])
	require.Equal(t, "01-05", q.To[5:])

	fromYear, toYear := q.From[:4], q.To[:4]
	assert.NotEqual(t, fromYear, toYear, "December-January window must cross the year bound")
}

func TestArchiveFiltersDedupesAndRanks(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.entries[tmdb.KindMovie] = []tmdb.Entry{
		{ID: 1, Title: "Kept Low Rank", ReleaseDate: "1999-06-14", VoteAverage: 6.0, VoteCount: 500},
		{ID: 2, Title: "Kept High Rank", ReleaseDate: "1985-06-13", VoteAverage: 8.5, VoteCount: 900},
		{ID: 2, Title: "Kept High Rank", ReleaseDate: "1985-06-13", VoteAverage: 8.5, VoteCount: 900},
		{ID: 3, Title: "Outside Window", ReleaseDate: "1985-06-25", VoteAverage: 9.9, VoteCount: 9000},
		{ID: 4, Title: "Below Vote Floor", ReleaseDate: "1985-06-14", VoteAverage: 9.9, VoteCount: MovieVoteFloor - 1},
		{ID: 5, Title: "No Release Date", ReleaseDate: "", VoteAverage: 9.0, VoteCount: 5000},
		{ID: 6, Title: "Tie Break By Popularity", ReleaseDate: "2001-06-15", VoteAverage: 8.5, VoteCount: 700, Popularity: 99},
	}

	agg := New(catalog)
	fixedNow(agg, date(2023, time.June, 15))

	res := agg.ArchiveAroundToday(context.Background())

	require.Len(t, res.Movies, 3)
	// 8.5/pop99 first, then 8.5/pop0, then 6.0.
	assert.Equal(t, int64(6), res.Movies[0].ID)
	assert.Equal(t, int64(2), res.Movies[1].ID)
	assert.Equal(t, int64(1), res.Movies[2].ID)
}

func TestArchiveVoteFloorBeatsRating(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.entries[tmdb.KindMovie] = []tmdb.Entry{
		{ID: 1, Title: "Highest Rated But Thin", ReleaseDate: "1970-06-15", VoteAverage: 10.0, VoteCount: 99},
		{ID: 2, Title: "Solid", ReleaseDate: "1970-06-15", VoteAverage: 7.0, VoteCount: 100},
	}

	agg := New(catalog)
	fixedNow(agg, date(2023, time.June, 15))

	res := agg.ArchiveAroundToday(context.Background())
	require.Len(t, res.Movies, 1)
	assert.Equal(t, int64(2), res.Movies[0].ID)
}

func TestArchiveTruncatesToMaxResults(t *testing.T) {
	catalog := newFakeCatalog()
	for i := int64(1); i <= 30; i++ {
		catalog.entries[tmdb.KindSeries] = append(catalog.entries[tmdb.KindSeries], tmdb.Entry{
			ID:          i,
			Title:       "Series",
			ReleaseDate: "1988-06-16",
			VoteAverage: 7.0,
			VoteCount:   SeriesVoteFloor + 1,
		})
	}

	agg := New(catalog)
	fixedNow(agg, date(2023, time.June, 15))

	res := agg.ArchiveAroundToday(context.Background())
	assert.Len(t, res.Series, MaxResults)
}
