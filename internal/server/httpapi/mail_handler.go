package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleSendTestEmail(c *gin.Context) {
	id, err := s.mail.SendTestMail(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "test email sent", "mail_id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Email Sent Successfully!"})
}
