package server

import (
	"net/http"

	"github.com/go-pkgz/lgr"
)

// rssHandler serves RSS feed of the latest edition
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	edition, err := s.db.LatestEdition(ctx)
	if err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			lgr.Printf("[ERROR] failed to get latest edition for RSS: %v", err)
		}
		http.Error(w, "No edition available", code)
		return
	}

	articles, err := s.db.EditionArticles(ctx, edition.ID)
	if err != nil {
		lgr.Printf("[ERROR] failed to get articles for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := s.rss.GenerateRSS(edition, articles)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
