package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medconnect/medconnect-api/internal/models"
	"github.com/medconnect/medconnect-api/internal/repo"
)

// CreateBlog stores a post. The route is behind the session middleware, so a
// valid cookie has already been verified by the time this runs.
func (h *Handler) CreateBlog(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	post.ID = primitive.NilObjectID

	id, err := h.Blogs.Insert(c.Request.Context(), &post)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error submitting form", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post added successfully", "insertedId": id.Hex()})
}

func (h *Handler) ListBlogs(c *gin.Context) {
	posts, err := h.Blogs.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch blog posts"})
		return
	}
	if posts == nil {
		posts = make([]models.BlogPost, 0)
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetBlog(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid blog ID"})
		return
	}

	post, err := h.Blogs.FindByID(c.Request.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch blog post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) DeleteBlog(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid blog ID"})
		return
	}

	deleted, err := h.Blogs.DeleteByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while deleting the blog post."})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully", "deletedCount": deleted})
}
