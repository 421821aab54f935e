package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"mom-planner/internal/plan"
	"mom-planner/pkg/log"
)

// Handler is the public interface for the plan HTTP delivery layer.
type Handler interface {
	CreateSession(c *gin.Context)
	GetSession(c *gin.Context)
	SetInput(c *gin.Context)
	UploadPDF(c *gin.Context)
	Generate(c *gin.Context)
	CancelGeneration(c *gin.Context)
	UpdateDueDate(c *gin.Context)
	UpdateStatus(c *gin.Context)
	NotifyItem(c *gin.Context)
	SetReminders(c *gin.Context)
	GetPermission(c *gin.Context)
	RequestPermission(c *gin.Context)
}

type handler struct {
	l         log.Logger
	uc        plan.UseCase
	maxUpload int64
	now       func() time.Time
}

// New creates a new HTTP handler for the plan domain.
func New(l log.Logger, uc plan.UseCase, maxUpload int64) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		maxUpload: maxUpload,
		now:       time.Now,
	}
}
