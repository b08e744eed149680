package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogs-api/services"
)

// ListBlogsHandler godoc
// @Summary      List blogs
// @Tags         blogs
// @Param        page            query  int     false  "Page number (1-based)"
// @Param        pageSize        query  int     false  "Page size"
// @Param        searchNameTerm  query  string  false  "Name substring, case-insensitive"
// @Produce      json
// @Success      200  {object}  pagination.Page[dto.BlogDTO]
// @Router       /blogs [get]
func ListBlogsHandler(svc *services.BlogsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListBlogsInput
		in.Page, _ = strconv.Atoi(c.Query("page"))
		in.PageSize, _ = strconv.Atoi(c.Query("pageSize"))
		in.SearchNameTerm = c.Query("searchNameTerm")

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetBlogHandler godoc
// @Summary      Get blog by id
// @Tags         blogs
// @Param        id   path   string  true  "Blog id"
// @Produce      json
// @Success      200  {object}  dto.BlogDTO
// @Router       /blogs/{id} [get]
func GetBlogHandler(svc *services.BlogsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

type createBlogRequest struct {
	Name       string `json:"name" binding:"required"`
	YoutubeURL string `json:"youtubeUrl"`
}

// CreateBlogHandler godoc
// @Summary      Create blog
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.BlogDTO
// @Router       /blogs [post]
func CreateBlogHandler(svc *services.BlogsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		blog, err := svc.Create(c.Request.Context(), services.CreateBlogInput{
			Name:       req.Name,
			YoutubeURL: req.YoutubeURL,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, blog)
	}
}
