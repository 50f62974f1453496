package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/autoblog/internal/server/models"
)

type postResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	PublishedTime *time.Time `json:"publishedTime,omitempty"`
}

func toPostResponse(p *models.Post) postResponse {
	return postResponse{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		PublishedTime: p.PublishedTime,
	}
}

type statsResponse struct {
	Total     int                `json:"total"`
	Draft     int                `json:"draft"`
	Scheduled int                `json:"scheduled"`
	Published int                `json:"published"`
	Failed    int                `json:"failed"`
	Scheduler *schedulerResponse `json:"scheduler,omitempty"`
}

type schedulerResponse struct {
	Active  bool   `json:"active"`
	NextRun string `json:"nextRun,omitempty"`
}

type credentialStatusResponse struct {
	Generation bool `json:"generation"`
	Publishing bool `json:"publishing"`
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	offset := queryInt(r, "offset")

	result, err := s.posts.List(r.Context(), limit, offset)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	response := struct {
		Posts []postResponse `json:"posts"`
	}{Posts: make([]postResponse, 0, len(result))}
	for _, p := range result {
		response.Posts = append(response.Posts, toPostResponse(p))
	}
	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Topic string `json:"topic"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	post, err := s.pipeline.GenerateAndPublish(r.Context(), request.Topic)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toPostResponse(post))
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.posts.Stats(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	scheduler := s.schedulerState()
	s.writeJSON(w, http.StatusOK, statsResponse{
		Total:     counts.Total,
		Draft:     counts.Draft,
		Scheduled: counts.Scheduled,
		Published: counts.Published,
		Failed:    counts.Failed,
		Scheduler: &scheduler,
	})
}

func (s *Server) credentialStatus(w http.ResponseWriter, r *http.Request) {
	generation, publishing := s.credentials.Configured(r.Context())
	s.writeJSON(w, http.StatusOK, credentialStatusResponse{
		Generation: generation,
		Publishing: publishing,
	})
}

func (s *Server) saveGenerationKey(w http.ResponseWriter, r *http.Request) {
	var request struct {
		APIKey string `json:"apiKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.credentials.SaveGenerationKey(r.Context(), request.APIKey); err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) savePublishingCredentials(w http.ResponseWriter, r *http.Request) {
	var request struct {
		APIKey string `json:"apiKey"`
		BlogID string `json:"blogId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.credentials.SavePublishingCredentials(r.Context(), request.APIKey, request.BlogID); err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) schedulerStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.schedulerState())
}

func (s *Server) enableScheduler(w http.ResponseWriter, r *http.Request) {
	if err := s.scheduler.Enable(r.Context()); err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.schedulerState())
}

func (s *Server) disableScheduler(w http.ResponseWriter, r *http.Request) {
	if err := s.scheduler.Disable(r.Context()); err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.schedulerState())
}

func (s *Server) schedulerState() schedulerResponse {
	response := schedulerResponse{Active: s.scheduler.Active()}
	if next := s.scheduler.NextRun(); !next.IsZero() {
		response.NextRun = next.Format(time.RFC3339)
	}
	return response
}

func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
