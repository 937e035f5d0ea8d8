package server

import (
	"net/http"

	"github.com/flickscope/flickscope/internal/utils"
	"github.com/flickscope/flickscope/pkg/archive"
	"github.com/flickscope/flickscope/pkg/news"
	"github.com/flickscope/flickscope/pkg/recommend"
	"github.com/flickscope/flickscope/pkg/trivia"
)

type Server struct {
	Recommender *recommend.Service
	Archive     *archive.Aggregator
	Trivia      *trivia.Generator
	News        *news.Client
	Username    string
	Password    string
}

func New(rec *recommend.Service, arch *archive.Aggregator, triv *trivia.Generator, nws *news.Client, user, pass string) *Server {
	return &Server{
		Recommender: rec,
		Archive:     arch,
		Trivia:      triv,
		News:        nws,
		Username:    user,
		Password:    pass,
	}
}

func (s *Server) Start(addr string) error {
	utils.Log.Infof("Starting server on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/recommendations", s.basicAuth(s.handleRecommendations))
	mux.HandleFunc("GET /api/archive", s.basicAuth(s.handleArchive))
	mux.HandleFunc("GET /api/quiz", s.basicAuth(s.handleQuiz))
	mux.HandleFunc("GET /api/news", s.basicAuth(s.handleNews))

	return mux
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
