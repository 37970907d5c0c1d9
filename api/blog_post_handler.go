package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zulfifazhar/portfolio-backend/cache"
	"github.com/zulfifazhar/portfolio-backend/database"
	"github.com/zulfifazhar/portfolio-backend/errs"
	"github.com/zulfifazhar/portfolio-backend/models"
)

const blogPostsCollection = "blog-posts"

// wordsPerMinute is the reading-speed assumption behind the readTime field.
const wordsPerMinute = 200

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
	listCache    cache.ListCache
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo, listCache cache.ListCache) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
		listCache:    listCache,
	}
}

func estimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func (h blogPostHandler) listBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseListQuery(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		unfiltered := q == (database.ListQuery{})
		if unfiltered {
			if payload, ok := h.listCache.Get(r.Context(), blogPostsCollection); ok {
				h.responder.WriteRaw(w, payload)
				return
			}
		}

		posts, err := h.blogPostRepo.FindAll(q)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog posts", blogPostsCollection, err))
			return
		}
		if posts == nil {
			posts = []*models.BlogPost{}
		}

		payload, err := h.responder.ListPayload(posts, len(posts))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if unfiltered {
			if err := h.listCache.Set(r.Context(), blogPostsCollection, payload); err != nil {
				h.logger.Warn().Err(err).Msg("failed to cache blog post list")
			}
		}
		h.responder.WriteRaw(w, payload)
	}
}

func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID := chi.URLParam(r, "blogPostID")
		if blogPostID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogPostID"))
			return
		}

		post, err := h.blogPostRepo.FindByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog post"))
			return
		}

		h.responder.WriteData(w, post)
	}
}

func (h blogPostHandler) getBlogPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog post"))
			return
		}

		h.responder.WriteData(w, post)
	}
}

func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post models.BlogPost
		if err := decodeBody(r, "blog post", &post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if post.ID == "" {
			post.ID = "blog-" + uuid.New().String()
		}
		if post.Slug == "" {
			post.Slug = models.Slugify(post.Title)
		}
		if post.ReadTime == 0 {
			post.ReadTime = estimateReadTime(post.Content)
		}

		if err := post.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.blogPostRepo.FindBySlug(post.Slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog post", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewAlreadyExists("blog post slug"))
			return
		}

		if err := h.blogPostRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog post", "blog post", err))
			return
		}
		h.invalidateList(r)

		h.responder.WriteCreated(w, post)
	}
}

func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID := chi.URLParam(r, "blogPostID")
		if blogPostID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogPostID"))
			return
		}

		existing, err := h.blogPostRepo.FindByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog post"))
			return
		}

		var post models.BlogPost
		if err := decodeBody(r, "blog post", &post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Ensure ID matches the route
		post.ID = blogPostID
		if post.Slug == "" {
			post.Slug = models.Slugify(post.Title)
		}
		if post.ReadTime == 0 {
			post.ReadTime = estimateReadTime(post.Content)
		}

		if err := post.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if post.Slug != existing.Slug {
			other, err := h.blogPostRepo.FindBySlug(post.Slug)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog post", err))
				return
			}
			if other != nil && other.ID != blogPostID {
				h.responder.WriteError(w, errs.NewAlreadyExists("blog post slug"))
				return
			}
		}

		if err := h.blogPostRepo.Update(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog post", "blog post", err))
			return
		}
		h.invalidateList(r)

		updated, err := h.blogPostRepo.FindByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated blog post", "blog post", err))
			return
		}

		h.responder.WriteData(w, updated)
	}
}

func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID := chi.URLParam(r, "blogPostID")
		if blogPostID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogPostID"))
			return
		}

		deleted, err := h.blogPostRepo.Delete(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog post", "blog post", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFound("blog post"))
			return
		}
		h.invalidateList(r)

		h.responder.WriteMessage(w, "Blog post deleted successfully")
	}
}

func (h blogPostHandler) invalidateList(r *http.Request) {
	if err := h.listCache.Invalidate(r.Context(), blogPostsCollection); err != nil {
		h.logger.Warn().Err(err).Msg("failed to invalidate blog post list cache")
	}
}
