package recommend

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flickscope/flickscope/pkg/discover"
	"github.com/flickscope/flickscope/pkg/resolve"
	"github.com/flickscope/flickscope/pkg/tmdb"
)

// fakeCatalog backs both the resolver and the discovery aggregator.
type fakeCatalog struct {
	mu           sync.Mutex
	searches     map[string][]tmdb.Entry
	discovered   []tmdb.Entry
	discoverSeen []tmdb.DiscoverQuery
}

func (f *fakeCatalog) Search(ctx context.Context, kind tmdb.Kind, query string) []tmdb.Entry {
	return f.searches[query]
}

func (f *fakeCatalog) Discover(ctx context.Context, kind tmdb.Kind, q tmdb.DiscoverQuery) []tmdb.Entry {
	f.mu.Lock()
	f.discoverSeen = append(f.discoverSeen, q)
	f.mu.Unlock()
	if q.Page == 1 {
		return f.discovered
	}
	return nil
}

func newService(catalog *fakeCatalog) *Service {
	return New(resolve.New(catalog), discover.New(catalog))
}

func TestRecommendGenresModeIgnoresUnknownKeys(t *testing.T) {
	catalog := &fakeCatalog{discovered: []tmdb.Entry{{ID: 1, Title: "Whiplash", VoteAverage: 8.5}}}
	svc := newService(catalog)

	res, err := svc.Recommend(context.Background(), Request{
		Mode: ModeGenres,
		Data: RequestData{MusicGenres: []string{"jazz", "nonexistent_key"}},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Movies)
}

func TestRecommendEmptyGenreSet(t *testing.T) {
	svc := newService(&fakeCatalog{})

	_, err := svc.Recommend(context.Background(), Request{
		Mode: ModeGenres,
		Data: RequestData{MusicGenres: []string{"only_unknown_keys"}},
	})

	assert.ErrorIs(t, err, ErrEmptyGenreSet)
}

func TestRecommendNamesModeUnresolvedTitleFailsWholeBatch(t *testing.T) {
	catalog := &fakeCatalog{searches: map[string][]tmdb.Entry{
		"Heat": {{ID: 1, Title: "Heat", GenreIDs: []int{80, 18}}},
	}}
	svc := newService(catalog)

	_, err := svc.Recommend(context.Background(), Request{
		Mode: ModeNames,
		Data: RequestData{Movies: []string{"Heat", "Totally Made Up Film 77"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Totally Made Up Film 77")
	assert.Zero(t, len(catalog.discoverSeen), "discovery must not run after a verification failure")
}

func TestRecommendNamesModeExcludesNamedTitles(t *testing.T) {
	catalog := &fakeCatalog{
		searches: map[string][]tmdb.Entry{
			"heat": {{ID: 1, Title: "Heat", GenreIDs: []int{80}}},
		},
		discovered: []tmdb.Entry{
			{ID: 1, Title: "Heat"},
			{ID: 2, Title: "Collateral"},
		},
	}
	svc := newService(catalog)

	res, err := svc.Recommend(context.Background(), Request{
		Mode: ModeNames,
		Data: RequestData{Movies: []string{"heat"}},
	})

	require.NoError(t, err)
	for _, item := range res.Movies {
		assert.NotEqual(t, "Heat", item.Title, "a title the user named must not be recommended back")
	}
}

func TestRecommendBadMode(t *testing.T) {
	svc := newService(&fakeCatalog{})

	_, err := svc.Recommend(context.Background(), Request{Mode: "surprise-me"})
	assert.ErrorIs(t, err, ErrBadMode)
}

func TestRecommendFansOutAllKinds(t *testing.T) {
	catalog := &fakeCatalog{discovered: []tmdb.Entry{{ID: 7, Title: "Amadeus"}}}
	svc := newService(catalog)

	_, err := svc.Recommend(context.Background(), Request{
		Mode: ModeGenres,
		Data: RequestData{MusicGenres: []string{"classical"}},
	})
	require.NoError(t, err)

	// Three pages each for movies, series and the soundtrack pass.
	assert.Len(t, catalog.discoverSeen, 9)
}
