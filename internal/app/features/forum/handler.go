package forum

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	commentstore "github.com/younifirst/younifirst/internal/app/store/comments"
	forumpoststore "github.com/younifirst/younifirst/internal/app/store/forumposts"
	"github.com/younifirst/younifirst/internal/app/system/htmlsanitize"
	"github.com/younifirst/younifirst/internal/app/system/httpjson"
	"github.com/younifirst/younifirst/internal/app/system/normalize"
	"github.com/younifirst/younifirst/internal/app/system/timeouts"
	"github.com/younifirst/younifirst/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves forum posts and their comments.
// Both stores are nil when the persistence backend was unreachable at startup.
type Handler struct {
	Posts    *forumpoststore.Store
	Comments *commentstore.Store
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	h := &Handler{Log: logger}
	if db != nil {
		h.Posts = forumpoststore.New(db)
		h.Comments = commentstore.New(db)
	}
	return h
}

// ServeListPosts handles GET /forum/posts.
func (h *Handler) ServeListPosts(w http.ResponseWriter, r *http.Request) {
	if h.Posts == nil {
		httpjson.OK(w, []models.ForumPost{})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	posts, err := h.Posts.All(ctx)
	if err != nil {
		h.Log.Warn("forumpost list failed", zap.Error(err))
		httpjson.OK(w, []models.ForumPost{})
		return
	}
	httpjson.OK(w, posts)
}

// ServeCreatePost handles POST /forum/posts. Content is sanitized against
// stored XSS before it is persisted.
func (h *Handler) ServeCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Unprocessable(w, err.Error())
		return
	}

	req.Title = normalize.Text(req.Title)
	req.Content = normalize.Text(req.Content)
	switch {
	case req.Title == "":
		httpjson.Unprocessable(w, "title is required")
		return
	case req.Content == "":
		httpjson.Unprocessable(w, "content is required")
		return
	}

	if h.Posts == nil {
		httpjson.ServiceUnavailable(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := h.Posts.Create(ctx, models.ForumPost{
		Title:   req.Title,
		Content: htmlsanitize.Sanitize(req.Content),
		Author:  normalize.Name(req.Author),
		Tags:    normalize.Tags(req.Tags),
	})
	if err != nil {
		httpjson.Internal(w, h.Log, "forumpost create failed", err)
		return
	}

	httpjson.OK(w, createResponse{ID: post.ID.Hex()})
}

// ServeListComments handles GET /forum/posts/{post_id}/comments. Only
// comments whose post_id equals the path parameter are returned.
func (h *Handler) ServeListComments(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "post_id")

	if h.Comments == nil {
		httpjson.OK(w, []models.Comment{})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	comments, err := h.Comments.ByPost(ctx, postID)
	if err != nil {
		h.Log.Warn("comment list failed",
			zap.String("post_id", postID),
			zap.Error(err))
		httpjson.OK(w, []models.Comment{})
		return
	}
	httpjson.OK(w, comments)
}

// ServeCreateComment handles POST /forum/comments.
func (h *Handler) ServeCreateComment(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Unprocessable(w, err.Error())
		return
	}

	req.PostID = normalize.Text(req.PostID)
	req.Content = normalize.Text(req.Content)
	switch {
	case req.PostID == "":
		httpjson.Unprocessable(w, "post_id is required")
		return
	case req.Content == "":
		httpjson.Unprocessable(w, "content is required")
		return
	}

	if h.Comments == nil {
		httpjson.ServiceUnavailable(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cm, err := h.Comments.Create(ctx, models.Comment{
		PostID:  req.PostID,
		Content: htmlsanitize.Sanitize(req.Content),
		Author:  normalize.Name(req.Author),
	})
	if err != nil {
		httpjson.Internal(w, h.Log, "comment create failed", err)
		return
	}

	httpjson.OK(w, createResponse{ID: cm.ID.Hex()})
}
