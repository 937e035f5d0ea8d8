// Package discover fans paginated catalog discovery queries out across a
// genre set and samples the merged results.
//
// Known limitation: a title that appears on more than one requested page is
// not collapsed here, so it can show up twice in one pool. Only the archive
// aggregator de-duplicates by id.
package discover

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"github.com/flickscope/flickscope/internal/utils"
	"github.com/flickscope/flickscope/pkg/genres"
	"github.com/flickscope/flickscope/pkg/tmdb"
)

// SampleSize is how many entries one discovery pass returns.
const SampleSize = 6

// Vote-count floors exclude entries whose rating rests on too few votes to
// be statistically meaningful.
const (
	MovieVoteFloor      = 500
	SeriesVoteFloor     = 300
	SoundtrackVoteFloor = 100
)

// soundtrackKeywordIDs constrains the cross-media pass to music-centric
// productions (concert film, musical, music documentary).
var soundtrackKeywordIDs = []int{4344, 6029, 10183}

// Cataloger is the discovery slice of the catalog client.
type Cataloger interface {
	Discover(ctx context.Context, kind tmdb.Kind, q tmdb.DiscoverQuery) []tmdb.Entry
}

type Aggregator struct {
	catalog Cataloger
}

func New(catalog Cataloger) *Aggregator {
	return &Aggregator{catalog: catalog}
}

// VoteFloor returns the discovery vote-count floor for the kind.
func VoteFloor(kind tmdb.Kind) int {
	if kind == tmdb.KindSeries {
		return SeriesVoteFloor
	}
	return MovieVoteFloor
}

// DiscoverMedia issues one top-rated discovery call per requested page,
// concatenates the pages in order, filters out excluded titles, then
// returns a uniformly random sample of at most SampleSize entries.
// Exclusion matches the full canonical title, case-insensitively.
func (a *Aggregator) DiscoverMedia(ctx context.Context, kind tmdb.Kind, genreIDs genres.IDSet, excludeTitles []string, pages []int, minVoteCount int) []tmdb.Entry {
	return a.run(ctx, kind, genreIDs, excludeTitles, pages, minVoteCount, nil)
}

// DiscoverSoundtracks is the cross-media variant: the same pipeline over
// movies, with the Music genre unioned in and the keyword constraint
// applied, under the lower soundtrack vote floor.
func (a *Aggregator) DiscoverSoundtracks(ctx context.Context, genreIDs genres.IDSet, excludeTitles []string, pages []int) []tmdb.Entry {
	withMusic := genreIDs.Union(genres.NewIDSet(genres.MusicGenreID))
	return a.run(ctx, tmdb.KindMovie, withMusic, excludeTitles, pages, SoundtrackVoteFloor, soundtrackKeywordIDs)
}

func (a *Aggregator) run(ctx context.Context, kind tmdb.Kind, genreIDs genres.IDSet, excludeTitles []string, pages []int, minVoteCount int, keywordIDs []int) []tmdb.Entry {
	perPage := make([][]tmdb.Entry, len(pages))

	var wg sync.WaitGroup
	for i, page := range pages {
		wg.Add(1)
		go func(i, page int) {
			defer wg.Done()
			perPage[i] = a.catalog.Discover(ctx, kind, tmdb.DiscoverQuery{
				GenreIDs:     genreIDs.Slice(),
				Page:         page,
				MinVoteCount: minVoteCount,
				KeywordIDs:   keywordIDs,
			})
		}(i, page)
	}
	wg.Wait()

	excluded := make(map[string]struct{}, len(excludeTitles))
	for _, t := range excludeTitles {
		excluded[strings.ToLower(t)] = struct{}{}
	}

	var pool []tmdb.Entry
	for _, entries := range perPage {
		for _, e := range entries {
			if _, skip := excluded[strings.ToLower(e.Title)]; skip {
				continue
			}
			pool = append(pool, e)
		}
	}

	utils.Log.Debugf("discovery pool for %s: %d entries across %d pages", kind, len(pool), len(pages))

	return sample(pool, SampleSize)
}

// sample shuffles the pool uniformly (Fisher-Yates via rand.Shuffle) and
// takes a prefix of at most n.
func sample(pool []tmdb.Entry, n int) []tmdb.Entry {
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}
