package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogs-api/apperr"
	"blogs-api/services"
)

type likeStatusRequest struct {
	LikeStatus string `json:"likeStatus"`
}

// SetPostLikeStatusHandler godoc
// @Summary      Set the acting user's reaction on a post
// @Description  likeStatus is Like, Dislike or None; None clears the reaction
// @Tags         posts
// @Accept       json
// @Param        id   path   string  true  "Post id"
// @Success      204
// @Router       /posts/{id}/like-status [put]
func SetPostLikeStatusHandler(svc *services.LikesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := viewerID(c)
		if userID == "" {
			writeError(c, apperr.NewFieldError("userId", "missing acting user"))
			return
		}
		var req likeStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.SetPostReaction(c.Request.Context(), req.LikeStatus, userID, c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// SetCommentLikeStatusHandler godoc
// @Summary      Set the acting user's reaction on a comment
// @Tags         comments
// @Accept       json
// @Param        id   path   string  true  "Comment id"
// @Success      204
// @Router       /comments/{id}/like-status [put]
func SetCommentLikeStatusHandler(svc *services.LikesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := viewerID(c)
		if userID == "" {
			writeError(c, apperr.NewFieldError("userId", "missing acting user"))
			return
		}
		var req likeStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.SetCommentReaction(c.Request.Context(), req.LikeStatus, userID, c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// GetCommentHandler godoc
// @Summary      Get comment by id
// @Tags         comments
// @Param        id   path   string  true  "Comment id"
// @Produce      json
// @Success      200  {object}  dto.CommentDTO
// @Router       /comments/{id} [get]
func GetCommentHandler(svc *services.CommentsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		comment, err := svc.GetByID(c.Request.Context(), c.Param("id"), viewerID(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, comment)
	}
}

type createCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateCommentHandler godoc
// @Summary      Create a comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id   path   string  true  "Post id"
// @Success      201  {object}  dto.CommentDTO
// @Router       /posts/{id}/comments [post]
func CreateCommentHandler(svc *services.CommentsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := viewerID(c)
		if userID == "" {
			writeError(c, apperr.NewFieldError("userId", "missing acting user"))
			return
		}
		var req createCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		comment, err := svc.Create(c.Request.Context(), c.Param("id"), req.Content, userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, comment)
	}
}
