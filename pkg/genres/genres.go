// Package genres maps the fixed music-taste taxonomy onto catalog genre ids.
package genres

import (
	"sort"
	"strings"
)

// MusicGenreID is the catalog's own "Music" genre, unioned into soundtrack
// discovery queries.
const MusicGenreID = 10402

// IDSet is a set of catalog genre ids.
type IDSet map[int]struct{}

func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	s.Add(ids...)
	return s
}

func (s IDSet) Add(ids ...int) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// Union returns a new set with the members of both. Neither input is
// modified.
func (s IDSet) Union(other IDSet) IDSet {
	out := make(IDSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Slice returns the ids in ascending order.
func (s IDSet) Slice() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// taxonomy is the closed set of music-taste keys the API accepts. Each key
// maps to the movie/series genres its listeners tend to rate highly.
var taxonomy = map[string][]int{
	"rock":       {28, 12, 53},
	"pop":        {35, 10749, 10751},
	"jazz":       {18, 36, 10402},
	"classical":  {36, 18, 14},
	"hip-hop":    {80, 18, 9648},
	"electronic": {878, 53, 27},
	"indie":      {18, 35, 10749},
	"metal":      {27, 28, 53},
	"country":    {37, 10751, 18},
	"blues":      {18, 80, 36},
}

// Expand unions the genre ids for every recognized key. Unrecognized keys
// are skipped, not errors.
func Expand(keys []string) IDSet {
	out := NewIDSet()
	for _, key := range keys {
		if ids, ok := taxonomy[strings.ToLower(key)]; ok {
			out.Add(ids...)
		}
	}
	return out
}

// genreNames covers the catalog genres the taxonomy can produce, for
// human-readable output.
var genreNames = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// Name returns the display name for a catalog genre id, or "" when unknown.
func Name(id int) string {
	return genreNames[id]
}

// AllNames returns every known genre display name, sorted.
func AllNames() []string {
	names := make([]string, 0, len(genreNames))
	for _, n := range genreNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
