package blog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"novita/internal/application/blog/usecases"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
	"novita/internal/shared/utils"

	"novita/internal/interfaces/http/middleware"
)

type PostHandler struct {
	createPostUC usecases.CreatePostExecutor
	updatePostUC usecases.UpdatePostExecutor
	deletePostUC usecases.DeletePostExecutor
	viewPostUC   usecases.ViewPostExecutor
	toggleLikeUC usecases.ToggleLikeExecutor
	addCommentUC usecases.AddCommentExecutor
	listPostsUC  usecases.ListPostsExecutor
	logger       logger.Interface
}

func NewPostHandler(
	createPostUC usecases.CreatePostExecutor,
	updatePostUC usecases.UpdatePostExecutor,
	deletePostUC usecases.DeletePostExecutor,
	viewPostUC usecases.ViewPostExecutor,
	toggleLikeUC usecases.ToggleLikeExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listPostsUC usecases.ListPostsExecutor,
) *PostHandler {
	return &PostHandler{
		createPostUC: createPostUC,
		updatePostUC: updatePostUC,
		deletePostUC: deletePostUC,
		viewPostUC:   viewPostUC,
		toggleLikeUC: toggleLikeUC,
		addCommentUC: addCommentUC,
		listPostsUC:  listPostsUC,
		logger:       logger.NewLogger(),
	}
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create post", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	authorID := middleware.UserIDFromContext(c)

	result, err := h.createPostUC.Execute(c.Request.Context(), req.ToCommand(authorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Post created successfully")
}

// UpdatePost handles PUT /posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	actorID := middleware.UserIDFromContext(c)

	result, err := h.updatePostUC.Execute(c.Request.Context(), req.ToCommand(postID, actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Post updated successfully", NewPostSummary(result.Post))
}

// DeletePost handles DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID := middleware.UserIDFromContext(c)

	if err := h.deletePostUC.Execute(c.Request.Context(), usecases.DeletePostCommand{
		PostID:  postID,
		ActorID: actorID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Post deleted successfully", nil)
}

// ViewPost handles GET /posts/:slug
func (h *PostHandler) ViewPost(c *gin.Context) {
	slug := c.Param("slug")

	result, err := h.viewPostUC.Execute(c.Request.Context(), usecases.ViewPostCommand{
		Slug:     slug,
		ViewerID: middleware.UserIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewPostDetailResponse(result))
}

// ListPosts handles GET /posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	req := parseListPostsRequest(c)
	viewerID := middleware.UserIDFromContext(c)

	if req.Mine && viewerID == 0 {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required to list own posts"))
		return
	}

	result, err := h.listPostsUC.Execute(c.Request.Context(), usecases.ListPostsCommand{
		Search:     req.Search,
		CategoryID: req.CategoryID,
		Page:       req.Page,
		PageSize:   req.PageSize,
		AuthorID:   viewerID,
		Mine:       req.Mine,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	summaries := make([]PostSummary, 0, len(result.Posts))
	for _, p := range result.Posts {
		summaries = append(summaries, NewPostSummary(p))
	}

	utils.ListSuccessResponse(c, summaries, result.Total, result.Page, req.PageSize)
}

// ToggleLike handles POST /posts/:id/like
func (h *PostHandler) ToggleLike(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleLikeUC.Execute(c.Request.Context(), usecases.ToggleLikeCommand{
		PostID: postID,
		UserID: middleware.UserIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddComment handles POST /posts/:id/comments
func (h *PostHandler) AddComment(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		PostID:   postID,
		AuthorID: middleware.UserIDFromContext(c),
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

func parsePostID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid post ID")
	}
	return uint(id), nil
}

func parseUint(raw string) uint {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
