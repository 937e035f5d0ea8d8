// Package resolve verifies that free-text titles correspond to real catalog
// entries.
package resolve

import (
	"context"
	"fmt"

	"github.com/flickscope/flickscope/internal/utils"
	"github.com/flickscope/flickscope/pkg/match"
	"github.com/flickscope/flickscope/pkg/tmdb"
)

// SimilarityThreshold is the minimum similarity between the input title and
// the upstream top hit. Below it the hit is treated as a miss, guarding
// against loosely related search results. Exactly the threshold is accepted.
const SimilarityThreshold = 0.5

// Searcher is the slice of the catalog the resolver needs.
type Searcher interface {
	Search(ctx context.Context, kind tmdb.Kind, query string) []tmdb.Entry
}

type Resolver struct {
	catalog Searcher
}

func New(catalog Searcher) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve searches the catalog for title, trusts the upstream's relevance
// ranking for candidate order, and accepts the top hit only when its
// similarity to the input clears the threshold. The returned error names
// the offending title; callers treat any error as fatal for the whole
// batch.
func (r *Resolver) Resolve(ctx context.Context, kind tmdb.Kind, title string) (tmdb.Entry, float64, error) {
	results := r.catalog.Search(ctx, kind, title)
	if len(results) == 0 {
		return tmdb.Entry{}, 0, fmt.Errorf("title %q not found in the catalog", title)
	}

	top := results[0]
	score := match.Similarity(title, top.Title)
	utils.Log.Debugf("resolved %q -> %q (similarity %.3f)", title, top.Title, score)

	if score < SimilarityThreshold {
		return tmdb.Entry{}, score, fmt.Errorf("title %q failed verification: closest catalog match is %q", title, top.Title)
	}

	return top, score, nil
}
