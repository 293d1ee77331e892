package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkravets/libshelf/internal/common"
	"github.com/dkravets/libshelf/internal/server/models"
)

const dateLayout = "2006-01-02"

type createBookRequest struct {
	Title         string `json:"title" binding:"required"`
	Author        string `json:"author" binding:"required"`
	Publisher     string `json:"publisher" binding:"required"`
	Edition       string `json:"edition" binding:"required"`
	Pages         int    `json:"pages" binding:"required,gt=0"`
	PublishedDate string `json:"published_date" binding:"required"`
}

type createNoticeRequest struct {
	Title      string `json:"title" binding:"required"`
	Details    string `json:"details" binding:"required"`
	PostedDate string `json:"posted_date"`
}

type leaveMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (s *Server) handleListBooks(c *gin.Context) {
	items, err := s.content.ListBooks(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"details": items})
}

func (s *Server) handleCreateBook(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	published, err := time.Parse(dateLayout, req.PublishedDate)
	if err != nil {
		s.writeError(c, common.ErrValidation)
		return
	}

	book, err := s.content.CreateBook(c.Request.Context(), &models.Book{
		Title:         req.Title,
		Author:        req.Author,
		Publisher:     req.Publisher,
		Edition:       req.Edition,
		Pages:         req.Pages,
		PublishedDate: published,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

func (s *Server) handleListNotices(c *gin.Context) {
	items, err := s.content.ListNotices(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"details": items})
}

func (s *Server) handleCreateNotice(c *gin.Context) {
	var req createNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posted := time.Now()
	if req.PostedDate != "" {
		parsed, err := time.Parse(dateLayout, req.PostedDate)
		if err != nil {
			s.writeError(c, common.ErrValidation)
			return
		}
		posted = parsed
	}

	notice, err := s.content.CreateNotice(c.Request.Context(), &models.Notice{
		Title:      req.Title,
		Details:    req.Details,
		PostedDate: posted,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notice)
}

func (s *Server) handleListMessages(c *gin.Context) {
	items, err := s.content.ListMessages(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"details": items})
}

func (s *Server) handleLeaveMessage(c *gin.Context) {
	var req leaveMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := s.content.LeaveMessage(c.Request.Context(), &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}
