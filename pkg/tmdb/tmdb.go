// Package tmdb is a read-only client for the TMDB catalog API.
//
// Every call is best-effort, at-most-once: on transport errors, non-200
// statuses or payloads that don't parse, the call logs the detail and
// returns an empty slice. Callers cannot tell "no results" from "upstream
// down", which is intentional: aggregation layers degrade instead of
// aborting.
package tmdb

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/flickscope/flickscope/internal/utils"
	"github.com/flickscope/flickscope/pkg/fetch"
	"github.com/tidwall/gjson"
)

const BASE_URL = "https://api.themoviedb.org/3"

// Kind selects the media catalog to query.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

// apiPath is the upstream path segment for the kind.
func (k Kind) apiPath() string {
	if k == KindSeries {
		return "tv"
	}
	return "movie"
}

func (k Kind) titleField() string {
	if k == KindSeries {
		return "name"
	}
	return "title"
}

func (k Kind) dateField() string {
	if k == KindSeries {
		return "first_air_date"
	}
	return "release_date"
}

// Entry is one catalog record. Identity is ID; entries live only for the
// request that fetched them.
type Entry struct {
	ID          int64
	Title       string
	ReleaseDate string
	GenreIDs    []int
	Popularity  float64
	VoteAverage float64
	VoteCount   int64
	PosterPath  string
	Overview    string
}

// Year returns the four-digit release year, or "" when the date is absent.
func (e Entry) Year() string {
	if len(e.ReleaseDate) < 4 {
		return ""
	}
	return e.ReleaseDate[:4]
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return NewClientAt(apiKey, BASE_URL)
}

// NewClientAt targets a non-default API base, e.g. a mirror or a test
// server.
func NewClientAt(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Search queries the catalog's text search for the kind and returns results
// in the upstream's own relevance order.
func (c *Client) Search(ctx context.Context, kind Kind, query string) []Entry {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("query", query)

	return c.getResults(ctx, kind, "/search/"+kind.apiPath()+"?"+q.Encode())
}

// DiscoverQuery constrains a paginated discovery listing. Results come back
// sorted by vote average, best first.
type DiscoverQuery struct {
	GenreIDs     []int
	Page         int
	MinVoteCount int
	KeywordIDs   []int
}

func (c *Client) Discover(ctx context.Context, kind Kind, dq DiscoverQuery) []Entry {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("sort_by", "vote_average.desc")
	q.Set("page", strconv.Itoa(dq.Page))
	q.Set("vote_count.gte", strconv.Itoa(dq.MinVoteCount))
	if len(dq.GenreIDs) > 0 {
		q.Set("with_genres", joinInts(dq.GenreIDs, ","))
	}
	if len(dq.KeywordIDs) > 0 {
		q.Set("with_keywords", joinInts(dq.KeywordIDs, "|"))
	}

	return c.getResults(ctx, kind, "/discover/"+kind.apiPath()+"?"+q.Encode())
}

// DateRangeQuery asks for releases between From and To (inclusive ISO dates),
// sorted by popularity.
type DateRangeQuery struct {
	From string
	To   string
	Page int
}

func (c *Client) DiscoverDateRange(ctx context.Context, kind Kind, dq DateRangeQuery) []Entry {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("sort_by", "popularity.desc")
	q.Set("page", strconv.Itoa(dq.Page))
	if kind == KindSeries {
		q.Set("first_air_date.gte", dq.From)
		q.Set("first_air_date.lte", dq.To)
	} else {
		q.Set("primary_release_date.gte", dq.From)
		q.Set("primary_release_date.lte", dq.To)
	}

	return c.getResults(ctx, kind, "/discover/"+kind.apiPath()+"?"+q.Encode())
}

func (c *Client) getResults(ctx context.Context, kind Kind, pathAndQuery string) []Entry {
	res, err := fetch.Do(ctx, &fetch.Req{
		Method: "GET",
		URL:    c.baseURL + pathAndQuery,
	}, c.http)

	if err != nil {
		utils.Log.Warn("catalog request failed: ", err)
		return nil
	}

	if res.StatusCode != 200 {
		utils.Log.Warnf("catalog returned status %d for %s", res.StatusCode, pathAndQuery)
		return nil
	}

	results := gjson.Get(res.BodyString, "results")
	if !results.IsArray() {
		utils.Log.Warn("catalog payload missing results array")
		return nil
	}

	var entries []Entry
	for _, r := range results.Array() {
		e := Entry{
			ID:          gjson.Get(r.Raw, "id").Int(),
			Title:       gjson.Get(r.Raw, kind.titleField()).Str,
			ReleaseDate: gjson.Get(r.Raw, kind.dateField()).Str,
			Popularity:  gjson.Get(r.Raw, "popularity").Float(),
			VoteAverage: gjson.Get(r.Raw, "vote_average").Float(),
			VoteCount:   gjson.Get(r.Raw, "vote_count").Int(),
			PosterPath:  gjson.Get(r.Raw, "poster_path").Str,
			Overview:    gjson.Get(r.Raw, "overview").Str,
		}
		if e.ID == 0 {
			continue
		}
		for _, g := range gjson.Get(r.Raw, "genre_ids").Array() {
			e.GenreIDs = append(e.GenreIDs, int(g.Int()))
		}
		entries = append(entries, e)
	}

	return entries
}

func joinInts(ids []int, sep string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, sep)
}
