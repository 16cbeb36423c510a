package server

import "github.com/go-chi/chi/v5"

func (s *Server) routes(r chi.Router) {
	r.Get("/", s.Index)
	r.Get("/healthz", s.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/match", s.MatchLists)
		r.Post("/match/upload", s.MatchUploads)
	})
}
