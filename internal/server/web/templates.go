package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var functions = template.FuncMap{
	"formatDate": func(v any) string {
		var t time.Time
		switch value := v.(type) {
		case time.Time:
			t = value
		case *time.Time:
			if value == nil {
				return ""
			}
			t = *value
		}
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
}

var dashboardTemplate = template.Must(
	template.New("dashboard.html").Funcs(functions).ParseFS(templateFS, "templates/dashboard.html"),
)

type dashboardData struct {
	Posts      []postResponse
	Stats      statsResponse
	Scheduler  schedulerResponse
	Generation bool
	Publishing bool
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := s.posts.List(ctx, 0, 0)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	counts, err := s.posts.Stats(ctx)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	generation, publishing := s.credentials.Configured(ctx)

	data := dashboardData{
		Posts: make([]postResponse, 0, len(result)),
		Stats: statsResponse{
			Total:     counts.Total,
			Draft:     counts.Draft,
			Scheduled: counts.Scheduled,
			Published: counts.Published,
			Failed:    counts.Failed,
		},
		Scheduler:  s.schedulerState(),
		Generation: generation,
		Publishing: publishing,
	}
	for _, p := range result {
		data.Posts = append(data.Posts, toPostResponse(p))
	}

	// render to a buffer first so a template error never produces a torn page
	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, data); err != nil {
		s.serviceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
