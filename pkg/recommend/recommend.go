// Package recommend runs the end-to-end recommendation pipeline: verify or
// expand the request into a genre-id set, fan discovery out per media kind,
// and format the sampled results.
package recommend

import (
	"context"
	"errors"
	"sync"

	"github.com/flickscope/flickscope/pkg/discover"
	"github.com/flickscope/flickscope/pkg/format"
	"github.com/flickscope/flickscope/pkg/genres"
	"github.com/flickscope/flickscope/pkg/resolve"
	"github.com/flickscope/flickscope/pkg/tmdb"
)

const (
	ModeNames  = "names"
	ModeGenres = "genres"
)

// discoveryPages are the catalog pages fanned out per kind.
var discoveryPages = []int{1, 2, 3}

var (
	ErrBadMode       = errors.New(`mode must be "names" or "genres"`)
	ErrEmptyGenreSet = errors.New("no catalog genres could be derived from the request")
)

type Request struct {
	Mode string      `json:"mode"`
	Data RequestData `json:"data"`
}

type RequestData struct {
	Movies      []string `json:"movies,omitempty"`
	Series      []string `json:"series,omitempty"`
	MusicGenres []string `json:"musicGenres,omitempty"`
}

type Response struct {
	Movies []format.Item `json:"movies"`
	Series []format.Item `json:"series"`
	Music  []format.Item `json:"music"`
}

type Service struct {
	resolver   *resolve.Resolver
	aggregator *discover.Aggregator
}

func New(resolver *resolve.Resolver, aggregator *discover.Aggregator) *Service {
	return &Service{resolver: resolver, aggregator: aggregator}
}

// Recommend runs the pipeline. Title verification failures and an empty
// derived genre set are user-facing errors that fail the whole request;
// upstream discovery failures only thin the output.
func (s *Service) Recommend(ctx context.Context, req Request) (Response, error) {
	genreIDs, exclude, err := s.genreSet(ctx, req)
	if err != nil {
		return Response{}, err
	}
	if len(genreIDs) == 0 {
		return Response{}, ErrEmptyGenreSet
	}

	var movies, series []tmdb.Entry

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		movies = s.aggregator.DiscoverMedia(ctx, tmdb.KindMovie, genreIDs, exclude, discoveryPages, discover.MovieVoteFloor)
	}()
	go func() {
		defer wg.Done()
		series = s.aggregator.DiscoverMedia(ctx, tmdb.KindSeries, genreIDs, exclude, discoveryPages, discover.SeriesVoteFloor)
	}()
	wg.Wait()

	music := s.aggregator.DiscoverSoundtracks(ctx, genreIDs, exclude, discoveryPages)

	return Response{
		Movies: format.Items(movies),
		Series: format.Items(series),
		Music:  format.Items(music),
	}, nil
}

// genreSet turns the request into a genre-id set plus the exclusion list of
// canonical titles the user already named. In names mode every title must
// verify; the first rejection aborts.
func (s *Service) genreSet(ctx context.Context, req Request) (genres.IDSet, []string, error) {
	switch req.Mode {
	case ModeNames:
		ids := genres.NewIDSet()
		var exclude []string

		for _, title := range req.Data.Movies {
			entry, _, err := s.resolver.Resolve(ctx, tmdb.KindMovie, title)
			if err != nil {
				return nil, nil, err
			}
			ids.Add(entry.GenreIDs...)
			exclude = append(exclude, entry.Title)
		}
		for _, title := range req.Data.Series {
			entry, _, err := s.resolver.Resolve(ctx, tmdb.KindSeries, title)
			if err != nil {
				return nil, nil, err
			}
			ids.Add(entry.GenreIDs...)
			exclude = append(exclude, entry.Title)
		}
		return ids, exclude, nil

	case ModeGenres:
		return genres.Expand(req.Data.MusicGenres), nil, nil

	default:
		return nil, nil, ErrBadMode
	}
}
