// Package format renders catalog entries into the JSON item shapes the API
// serves.
package format

import (
	"fmt"
	"net/url"

	"github.com/flickscope/flickscope/pkg/tmdb"
)

// PosterBaseURL is the catalog CDN base at the width tier we serve.
const PosterBaseURL = "https://image.tmdb.org/t/p/w500"

type Item struct {
	Title       string  `json:"title"`
	Year        string  `json:"year"`
	Rating      *string `json:"rating"`
	Poster      *string `json:"poster"`
	Description string  `json:"description"`
	GoogleLink  string  `json:"googleLink"`
}

// ArchiveItem additionally carries the raw release date.
type ArchiveItem struct {
	Item
	ReleaseDate string `json:"releaseDate"`
}

// Rating renders "★ X.X/10", or nil when the entry has no votes yet.
func Rating(voteAverage float64) *string {
	if voteAverage == 0 {
		return nil
	}
	s := fmt.Sprintf("★ %.1f/10", voteAverage)
	return &s
}

// PosterURL expands a relative catalog poster path, or nil when absent.
func PosterURL(path string) *string {
	if path == "" {
		return nil
	}
	u := PosterBaseURL + path
	return &u
}

// WatchLink builds a web-search link for watching the title online. Year
// narrows the query when given.
func WatchLink(title, year string) string {
	q := "watch " + title
	if year != "" {
		q += " " + year
	}
	q += " online"
	return "https://www.google.com/search?q=" + url.QueryEscape(q)
}

func FromEntry(e tmdb.Entry) Item {
	return Item{
		Title:       e.Title,
		Year:        e.Year(),
		Rating:      Rating(e.VoteAverage),
		Poster:      PosterURL(e.PosterPath),
		Description: e.Overview,
		GoogleLink:  WatchLink(e.Title, ""),
	}
}

func Items(entries []tmdb.Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, FromEntry(e))
	}
	return items
}

func FromArchiveEntry(e tmdb.Entry) ArchiveItem {
	item := FromEntry(e)
	item.GoogleLink = WatchLink(e.Title, e.Year())
	return ArchiveItem{
		Item:        item,
		ReleaseDate: e.ReleaseDate,
	}
}

func ArchiveItems(entries []tmdb.Entry) []ArchiveItem {
	items := make([]ArchiveItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, FromArchiveEntry(e))
	}
	return items
}
