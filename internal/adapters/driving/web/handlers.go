package web

import (
	"errors"
	"net/http"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
	"github.com/marikraa/metropolia-first-year-helper/internal/logger"
)

// themeCookie stores the user's theme preference between visits.
const themeCookie = "theme"

// indexData is the template payload for the front page.
type indexData struct {
	Theme    string
	Topics   []domain.Topic
	Query    string
	Matches  []domain.Topic
	Answer   string
	Answered bool
	Asked    bool
}

// topicData is the template payload for a topic detail page.
type topicData struct {
	Theme string
	Topic *domain.Topic
}

// theme resolves the active theme: an explicit ?theme= query parameter
// wins and is persisted in a cookie; otherwise the cookie value is used,
// defaulting to light. Unknown values fall back to light rather than
// reaching the templates.
func theme(w http.ResponseWriter, r *http.Request) string {
	value := r.URL.Query().Get(themeCookie)
	if value == "" {
		if cookie, err := r.Cookie(themeCookie); err == nil {
			value = cookie.Value
		}
	} else {
		http.SetCookie(w, &http.Cookie{
			Name:     themeCookie,
			Value:    value,
			Path:     "/",
			HttpOnly: true,
		})
	}

	if value != "dark" {
		value = "light"
	}
	return value
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Theme:  theme(w, r),
		Topics: s.ask.Registry().Topics(),
	}
	s.render(w, "index.html", data)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	activeTheme := theme(w, r)
	question := r.FormValue("question")

	result, err := s.ask.Ask(r.Context(), question)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuestion) {
			// Nothing to do; back to the form.
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		// Internal detail stays in the operator log.
		logger.Warn("ask failed: %v", err)
		http.Error(w, "Something went wrong. Please try again.", http.StatusInternalServerError)
		return
	}

	data := indexData{
		Theme:    activeTheme,
		Topics:   s.ask.Registry().Topics(),
		Query:    result.Question,
		Matches:  result.Topics,
		Answer:   result.Answer,
		Answered: result.Answered,
		Asked:    true,
	}
	s.render(w, "index.html", data)
}

func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	data := topicData{Theme: theme(w, r)}

	topic, err := s.ask.Registry().TopicByID(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		s.render(w, "topic.html", data)
		return
	}

	data.Topic = &topic
	s.render(w, "topic.html", data)
}

// render executes a template, logging failures for operators. Headers
// are already written by the time execution fails, so the user simply
// gets a truncated page rather than internal error detail.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Warn("render %s: %v", name, err)
	}
}
