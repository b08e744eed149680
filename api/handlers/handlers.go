package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogs-api/apperr"
	"blogs-api/services"
)

// viewerID extracts the optional viewer identity used for myStatus. The
// surrounding platform normally resolves this from the session; here it is
// a plain header so anonymous reads stay possible.
func viewerID(c *gin.Context) string {
	return c.GetHeader("X-User-Id")
}

// writeError maps the service error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var fieldErr *apperr.FieldError
	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"errorsMessages": []gin.H{{"field": fieldErr.Field, "message": fieldErr.Message}},
		})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List posts with title search, blog filter and pagination
// @Tags         posts
// @Param        page              query  int     false  "Page number (1-based)"
// @Param        pageSize          query  int     false  "Page size"
// @Param        searchNameTerm    query  string  false  "Title substring, case-insensitive"
// @Param        blogId            query  string  false  "Exact blog id"
// @Produce      json
// @Success      200  {object}  pagination.Page[dto.PostDTO]
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListPostsInput
		in.Page, _ = strconv.Atoi(c.Query("page"))
		in.PageSize, _ = strconv.Atoi(c.Query("pageSize"))
		in.SearchNameTerm = c.Query("searchNameTerm")
		in.BlogID = c.Query("blogId")
		in.UserID = viewerID(c)

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetPostHandler godoc
// @Summary      Get post by id
// @Tags         posts
// @Param        id   path   string  true  "Post id"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Router       /posts/{id} [get]
func GetPostHandler(svc *services.PostsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetByID(c.Request.Context(), c.Param("id"), viewerID(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

type createPostRequest struct {
	Title            string `json:"title" binding:"required"`
	ShortDescription string `json:"shortDescription"`
	Content          string `json:"content"`
	BlogID           string `json:"blogId" binding:"required"`
}

// CreatePostHandler godoc
// @Summary      Create post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.PostDTO
// @Router       /posts [post]
func CreatePostHandler(svc *services.PostsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		post, err := svc.Create(c.Request.Context(), services.CreatePostInput{
			Title:            req.Title,
			ShortDescription: req.ShortDescription,
			Content:          req.Content,
			BlogID:           req.BlogID,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

type updatePostRequest struct {
	Title            string `json:"title" binding:"required"`
	ShortDescription string `json:"shortDescription"`
	Content          string `json:"content"`
}

// UpdatePostHandler godoc
// @Summary      Update post
// @Tags         posts
// @Accept       json
// @Param        id   path   string  true  "Post id"
// @Success      204
// @Router       /posts/{id} [put]
func UpdatePostHandler(svc *services.PostsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		err := svc.UpdateByID(c.Request.Context(), c.Param("id"), services.UpdatePostInput{
			Title:            req.Title,
			ShortDescription: req.ShortDescription,
			Content:          req.Content,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DeletePostHandler godoc
// @Summary      Delete post
// @Tags         posts
// @Param        id   path   string  true  "Post id"
// @Success      204
// @Router       /posts/{id} [delete]
func DeletePostHandler(svc *services.PostsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
