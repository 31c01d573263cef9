package endpoints

import (
	"freightflow"
	"freightflow/internal/api/handler/middleware"
	"freightflow/internal/api/handler/request"
	"freightflow/internal/api/handler/response"
	"freightflow/internal/api/service"
	"freightflow/pkg"
	"net/http"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type taskHandler struct {
	taskService *service.TaskService
	config      freightflow.AppConfig
	logger      zerolog.Logger
}

func newTaskHandler() *taskHandler {
	return &taskHandler{
		taskService: service.NewTaskService(),
		config:      freightflow.GetConfig(),
		logger:      freightflow.Logger,
	}
}

func TaskHandler(router *graceful.Graceful) {
	h := newTaskHandler()

	routes := router.Group("/api/v1/tasks")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.list)
		routes.GET("/:id", h.getByID)
		routes.POST("", h.create)
		routes.PUT("/:id/status", h.updateStatus)
		routes.DELETE("/:id", h.remove)
	}
}

func (slf *taskHandler) list(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	tasks, err := slf.taskService.FindForUser(actor)
	if err != nil {
		slf.logger.Error().Err(err).Uint("userId", actor.ID).Msg("Failed to list tasks")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (slf *taskHandler) getByID(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := slf.taskService.GetByID(id, actor)
	if err != nil {
		slf.logger.Warn().Err(err).Uint("taskId", id).Msg("Failed to get task")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (slf *taskHandler) create(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req request.CreateTask
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse create task request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	task, err := slf.taskService.Create(req.JobID, req.Description, req.Priority, req.Deadline, req.AssigneeIDs, actor)
	if err != nil {
		slf.logger.Error().Err(err).Str("jobId", req.JobID).Msg("Failed to create task")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (slf *taskHandler) updateStatus(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request.UpdateTaskStatus
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse task status request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	task, err := slf.taskService.UpdateStatus(id, req.Status, req.Comment, actor)
	if err != nil {
		slf.logger.Warn().Err(err).Uint("taskId", id).Msg("Failed to update task status")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (slf *taskHandler) remove(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := slf.taskService.Delete(id, actor); err != nil {
		slf.logger.Warn().Err(err).Uint("taskId", id).Msg("Failed to delete task")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}
