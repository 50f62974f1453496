package web

import "net/http"

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.dashboard)

	mux.HandleFunc("GET /api/posts", s.listPosts)
	mux.HandleFunc("POST /api/posts", s.createPost)
	mux.HandleFunc("GET /api/stats", s.stats)

	mux.HandleFunc("GET /api/credentials", s.credentialStatus)
	mux.HandleFunc("PUT /api/credentials/generation", s.saveGenerationKey)
	mux.HandleFunc("PUT /api/credentials/publishing", s.savePublishingCredentials)

	mux.HandleFunc("GET /api/scheduler", s.schedulerStatus)
	mux.HandleFunc("POST /api/scheduler/enable", s.enableScheduler)
	mux.HandleFunc("POST /api/scheduler/disable", s.disableScheduler)

	return mux
}
