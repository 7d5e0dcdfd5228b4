package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-master/internal/task"
	"task-master/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Reorder(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Toggle(c *gin.Context)
	Share(c *gin.Context)

	Day(c *gin.Context)
	Progress(c *gin.Context)
	Weekly(c *gin.Context)
	Calendar(c *gin.Context)

	GetDraft(c *gin.Context)
	ApplyTranscript(c *gin.Context)
	DiscardDraft(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  task.UseCase
	loc *time.Location
}

// New creates a new HTTP handler for the task domain. Query-string dates are
// read in loc.
func New(l log.Logger, uc task.UseCase, loc *time.Location) Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
	}
}
