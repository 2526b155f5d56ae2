package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) listJobs(c *gin.Context) {
	jobs, err := s.jobs.ListByUser(c.Request.Context(), currentUserID(c), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list jobs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (s *Server) showJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad job id"})
		return
	}
	job, err := s.jobs.GetByID(c.Request.Context(), id)
	if err != nil || job.UserID != currentUserID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}
