package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianstudio/site-backend/database"
	"github.com/meridianstudio/site-backend/errs"
	"github.com/meridianstudio/site-backend/models"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

// BlogPostCollection represents multiple blog posts
type BlogPostCollection struct {
	Posts []*models.BlogPost `json:"posts"`
	Total int                `json:"total,omitempty"`
}

// getAllBlogPosts retrieves blog posts ordered by publish date
// @Summary Get blog posts
// @Description Retrieves published blog posts newest-first by publish date; admins may request unpublished rows
// @Tags Blog
// @Accept json
// @Produce json
// @Param all query bool false "Include unpublished (requires authentication)"
// @Success 200 {object} BlogPostCollection "List of blog posts"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog posts"
// @Router /blog [get]
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeUnpublished := r.URL.Query().Get("all") == "true" && isAdminRequest(r.Context())

		posts, err := h.blogPostRepo.List(includeUnpublished)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog posts", "blog posts", err))
			return
		}

		if posts == nil {
			posts = []*models.BlogPost{}
		}

		h.responder.WriteJSON(w, BlogPostCollection{
			Posts: posts,
			Total: len(posts),
		})
	}
}

// getBlogPostBySlug retrieves a specific blog post by slug
// @Summary Get blog post
// @Description Retrieves a blog post by its slug; unpublished posts are not found for anonymous callers
// @Tags Blog
// @Accept json
// @Produce json
// @Param slug path string true "Blog post slug"
// @Success 200 {object} map[string]models.BlogPost "Blog post details"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog post"
// @Router /blog/{slug} [get]
func (h blogPostHandler) getBlogPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.blogPostRepo.FindBySlug(slug, isAdminRequest(r.Context()))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog post", err))
			return
		}

		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]*models.BlogPost{"post": post})
	}
}

func (h blogPostHandler) decodeBlogPost(w http.ResponseWriter, r *http.Request) (*models.BlogPost, bool) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
		return nil, false
	}

	var post models.BlogPost
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&post); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode blog post request body")
		h.responder.WriteError(w, errs.NewInvalidJSONError(err))
		return nil, false
	}

	return &post, true
}

func (h blogPostHandler) validateBlogPost(w http.ResponseWriter, post *models.BlogPost) bool {
	if post.Title == "" {
		h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
		return false
	}
	if post.Content == "" {
		h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
		return false
	}
	return true
}

// createBlogPost creates a new blog post
// @Summary Create blog post
// @Description Creates a new blog post; slug is derived from the title when blank
// @Tags Blog
// @Accept json
// @Produce json
// @Param post body models.BlogPost true "Blog post data"
// @Success 201 {object} map[string]models.BlogPost "Created blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog post data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating blog post"
// @Router /blog [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := h.decodeBlogPost(w, r)
		if !ok {
			return
		}
		if !h.validateBlogPost(w, post) {
			return
		}

		if post.Slug == "" {
			post.Slug = models.Slugify(post.Title)
		}

		if err := h.blogPostRepo.Add(post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog post", "blog post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]*models.BlogPost{"post": post})
	}
}

// updateBlogPost updates an existing blog post
// @Summary Update blog post
// @Description Updates an existing blog post by ID
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Blog post ID" format(uuid)
// @Param post body models.BlogPost true "Updated blog post data"
// @Success 200 {object} map[string]models.BlogPost "Updated blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog post data"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating blog post"
// @Router /blog/{id} [put]
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Path position shared with the slug detail route; here it holds the ID.
		postIDStr := chi.URLParam(r, "slug")
		postID, err := uuid.Parse(postIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogPostID"))
			return
		}

		existing, err := h.blogPostRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		post, ok := h.decodeBlogPost(w, r)
		if !ok {
			return
		}
		if !h.validateBlogPost(w, post) {
			return
		}

		post.ID = postID
		post.CreatedAt = existing.CreatedAt
		if post.Slug == "" {
			post.Slug = existing.Slug
		}

		if err := h.blogPostRepo.Update(post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog post", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]*models.BlogPost{"post": post})
	}
}

// deleteBlogPost deletes a blog post by ID
// @Summary Delete blog post
// @Description Deletes a blog post from the database by ID
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Blog post ID" format(uuid)
// @Success 200 {object} map[string]bool "Success flag"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogPostID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting blog post"
// @Router /blog/{id} [delete]
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postIDStr := chi.URLParam(r, "slug")
		postID, err := uuid.Parse(postIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogPostID"))
			return
		}

		existing, err := h.blogPostRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		if err := h.blogPostRepo.Delete(postID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog post", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}
