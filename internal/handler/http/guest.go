package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-personal-blog/internal/logger"
	"github.com/MKhiriev/go-personal-blog/internal/service"
	"github.com/MKhiriev/go-personal-blog/internal/store"
	"github.com/MKhiriev/go-personal-blog/models"
)

type indexView struct {
	Articles []models.Article
}

type articleView struct {
	Article models.Article
}

// index lists published articles, newest first.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	articles, err := h.services.ArticleService.ListPublished(r.Context(), service.SortByCreatedAt, true)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing published articles")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "index.html", indexView{Articles: articles})
}

// articleDetail shows a single published article. Unpublished and unknown
// slugs are indistinguishable from the outside: both 404.
func (h *Handler) articleDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article, err := h.services.ArticleService.Get(r.Context(), slug)
	switch {
	case errors.Is(err, store.ErrArticleNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		logger.FromRequest(r).Err(err).Str("slug", slug).Msg("loading article")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if !article.Published {
		http.NotFound(w, r)
		return
	}

	h.render(w, r, http.StatusOK, "article.html", articleView{Article: article})
}
