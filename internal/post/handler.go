package post

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/melvinb/postfeed/internal/apperr"
	"github.com/melvinb/postfeed/internal/httpx"
	"github.com/melvinb/postfeed/internal/middleware"
	"github.com/melvinb/postfeed/internal/models"
)

// FeedCache caches the serialized all-posts payload. May be nil.
type FeedCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, payload []byte) error
	Invalidate(ctx context.Context) error
}

// Handler holds the post HTTP handlers.
type Handler struct {
	svc   *Service
	cache FeedCache
}

func NewHandler(svc *Service, cache FeedCache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

// Create handles POST /post.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.Subject(r.Context())
	if !ok {
		httpx.Fail(w, apperr.ErrNoToken)
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.BadRequest(w, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), subject, req)
	if err != nil {
		httpx.Fail(w, err)
		return
	}

	if h.cache != nil {
		if err := h.cache.Invalidate(r.Context()); err != nil {
			log.Printf("feed cache invalidate: %v", err)
		}
	}
	httpx.OK(w, http.StatusCreated, created)
}

// List handles GET /post, serving from the feed cache when warm.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.cache != nil {
		if payload, err := h.cache.Get(r.Context()); err != nil {
			log.Printf("feed cache get: %v", err)
		} else if payload != nil {
			httpx.Raw(w, http.StatusOK, payload)
			return
		}
	}

	posts, err := h.svc.ListAll(r.Context())
	if err != nil {
		httpx.Fail(w, err)
		return
	}

	payload, err := httpx.Envelope(posts)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	if h.cache != nil {
		if err := h.cache.Set(r.Context(), payload); err != nil {
			log.Printf("feed cache set: %v", err)
		}
	}
	httpx.Raw(w, http.StatusOK, payload)
}

// ListMine handles GET /post/me.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.Subject(r.Context())
	if !ok {
		httpx.Fail(w, apperr.ErrNoToken)
		return
	}

	posts, err := h.svc.ListByOwner(r.Context(), subject)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, posts)
}

// Get handles GET /post/{id}. The path parameter is not used to fetch a
// single post: apart from rejecting the literal "undefined" the way the
// previous implementation did, the response is the caller's own post list.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "id") == "undefined" {
		httpx.Fail(w, apperr.ErrBadCredentials)
		return
	}
	h.ListMine(w, r)
}
