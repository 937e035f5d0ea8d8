package server

import (
	"encoding/json"
	"net/http"

	"github.com/flickscope/flickscope/pkg/format"
	"github.com/flickscope/flickscope/pkg/news"
	"github.com/flickscope/flickscope/pkg/recommend"
	"github.com/flickscope/flickscope/pkg/tmdb"
	"github.com/flickscope/flickscope/pkg/trivia"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}

type recommendationsResponse struct {
	Success bool `json:"success"`
	recommend.Response
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommend.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := s.Recommender.Recommend(r.Context(), req)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, recommendationsResponse{Success: true, Response: res})
}

type archiveResponse struct {
	Success     bool                 `json:"success"`
	DateRange   string               `json:"dateRange"`
	Movies      []format.ArchiveItem `json:"movies"`
	Series      []format.ArchiveItem `json:"series"`
	TotalMovies int                  `json:"totalMovies"`
	TotalSeries int                  `json:"totalSeries"`
}

func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	res := s.Archive.ArchiveAroundToday(r.Context())

	movies := format.ArchiveItems(res.Movies)
	series := format.ArchiveItems(res.Series)

	writeJSON(w, http.StatusOK, archiveResponse{
		Success:     true,
		DateRange:   res.Window.String(),
		Movies:      movies,
		Series:      series,
		TotalMovies: len(movies),
		TotalSeries: len(series),
	})
}

type quizResponse struct {
	Success   bool              `json:"success"`
	Title     string            `json:"title"`
	Questions []trivia.Question `json:"questions"`
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		fail(w, http.StatusBadRequest, "title query parameter is required")
		return
	}

	kind := tmdb.KindMovie
	if r.URL.Query().Get("kind") == string(tmdb.KindSeries) {
		kind = tmdb.KindSeries
	}

	canonical, questions, err := s.Trivia.Questions(r.Context(), kind, title)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, quizResponse{Success: true, Title: canonical, Questions: questions})
}

type newsResponse struct {
	Success  bool           `json:"success"`
	Articles []news.Article `json:"articles"`
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	articles := s.News.Headlines(r.Context())
	if articles == nil {
		articles = []news.Article{}
	}
	writeJSON(w, http.StatusOK, newsResponse{Success: true, Articles: articles})
}
