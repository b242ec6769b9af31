package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-personal-blog/internal/logger"
	"github.com/MKhiriev/go-personal-blog/internal/service"
	"github.com/MKhiriev/go-personal-blog/internal/session"
	"github.com/MKhiriev/go-personal-blog/internal/store"
	"github.com/MKhiriev/go-personal-blog/internal/validators"
	"github.com/MKhiriev/go-personal-blog/models"
)

type loginView struct {
	CSRFToken string
	Error     string
}

type dashboardView struct {
	CSRFToken string
	Articles  []models.Article
}

type createArticleView struct {
	CSRFToken string
	Error     string
	Input     service.CreateArticleInput
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	if sess.Authenticated {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}

	h.render(w, r, http.StatusOK, "login.html", loginView{CSRFToken: sess.CSRFToken})
}

// login checks the submitted password against the configured credential. A
// wrong password and a missing credential both stay generic towards the
// client; only the log tells them apart.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sess, _ := session.FromContext(r.Context())

	err := h.services.AuthService.VerifyAdminPassword(r.Context(), r.FormValue("password"))
	switch {
	case errors.Is(err, service.ErrWrongPassword):
		log.Warn().Msg("failed admin login attempt")
		h.render(w, r, http.StatusUnauthorized, "login.html", loginView{
			CSRFToken: sess.CSRFToken,
			Error:     "invalid credentials",
		})
		return
	case errors.Is(err, service.ErrNoCredentialConfigured):
		log.Err(err).Msg("admin login attempted without configured credential")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	case err != nil:
		log.Err(err).Msg("verifying admin password")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if !h.sessions.MarkAuthenticated(sess.ID) {
		// session expired between middleware and here; start over
		http.Redirect(w, r, "/admin/login", http.StatusFound)
		return
	}

	log.Info().Msg("admin logged in")
	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok {
		h.sessions.Destroy(sess.ID)
	}
	h.sessions.ClearCookie(w)

	http.Redirect(w, r, "/", http.StatusFound)
}

// dashboard lists every article, drafts included, newest first.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	articles, err := h.services.ArticleService.List(r.Context(), service.SortByCreatedAt, true)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing articles for dashboard")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "dashboard.html", dashboardView{
		CSRFToken: sess.CSRFToken,
		Articles:  articles,
	})
}

func (h *Handler) createArticleForm(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	h.render(w, r, http.StatusOK, "create_article.html", createArticleView{CSRFToken: sess.CSRFToken})
}

// createArticle persists a new draft from the submitted form. Validation
// failures re-render the form with the admin's input intact.
func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	input := service.CreateArticleInput{
		Slug:    r.FormValue("slug"),
		Title:   r.FormValue("title"),
		Excerpt: r.FormValue("excerpt"),
		Content: r.FormValue("content"),
		Tags:    r.FormValue("tags"),
	}

	_, err := h.services.ArticleService.Create(r.Context(), input)
	if err != nil {
		var message string
		switch {
		case errors.Is(err, validators.ErrInvalidSlug):
			message = "slug must be lowercase kebab-case, e.g. hello-world"
		case errors.Is(err, validators.ErrInvalidTitle):
			message = "title must be between 1 and 200 characters"
		case errors.Is(err, service.ErrSlugAlreadyExists):
			message = "an article with this slug already exists"
		default:
			logger.FromRequest(r).Err(err).Str("slug", input.Slug).Msg("creating article")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		h.render(w, r, http.StatusBadRequest, "create_article.html", createArticleView{
			CSRFToken: sess.CSRFToken,
			Error:     message,
			Input:     input,
		})
		return
	}

	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (h *Handler) publishArticle(w http.ResponseWriter, r *http.Request) {
	h.setArticlePublished(w, r, true)
}

func (h *Handler) unpublishArticle(w http.ResponseWriter, r *http.Request) {
	h.setArticlePublished(w, r, false)
}

func (h *Handler) setArticlePublished(w http.ResponseWriter, r *http.Request, published bool) {
	slug := chi.URLParam(r, "slug")

	var err error
	if published {
		_, err = h.services.ArticleService.Publish(r.Context(), slug)
	} else {
		_, err = h.services.ArticleService.Unpublish(r.Context(), slug)
	}

	switch {
	case errors.Is(err, store.ErrArticleNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		logger.FromRequest(r).Err(err).Str("slug", slug).Bool("published", published).Msg("updating publication state")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (h *Handler) deleteArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	err := h.services.ArticleService.Delete(r.Context(), slug)
	switch {
	case errors.Is(err, store.ErrArticleNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		logger.FromRequest(r).Err(err).Str("slug", slug).Msg("deleting article")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusFound)
}
