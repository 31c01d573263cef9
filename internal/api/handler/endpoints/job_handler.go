package endpoints

import (
	"freightflow"
	"freightflow/internal/api/handler/mapper"
	"freightflow/internal/api/handler/middleware"
	"freightflow/internal/api/handler/request"
	"freightflow/internal/api/handler/response"
	"freightflow/internal/api/models"
	"freightflow/internal/api/service"
	"freightflow/pkg"
	"net/http"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type jobHandler struct {
	jobService   *service.JobService
	stageService *service.StageService
	dispatcher   *service.Dispatcher
	config       freightflow.AppConfig
	logger       zerolog.Logger
}

func newJobHandler(dispatcher *service.Dispatcher) *jobHandler {
	return &jobHandler{
		jobService:   service.NewJobService(),
		stageService: service.NewStageService(),
		dispatcher:   dispatcher,
		config:       freightflow.GetConfig(),
		logger:       freightflow.Logger,
	}
}

func JobHandler(router *graceful.Graceful, dispatcher *service.Dispatcher) {
	h := newJobHandler(dispatcher)

	routes := router.Group("/api/v1/jobs")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAll)
		routes.GET("/my", h.getMine)
		routes.GET("/next-number", h.nextNumber)
		routes.GET("/check-number", h.checkNumber)
		routes.GET("/:id", h.getByID)
		routes.POST("", h.create)
		routes.PUT("/:id", h.update)

		routes.PUT("/:id/stage2", h.updateStage(models.StageTwo, mapperStage2))
		routes.PUT("/:id/stage3", h.updateStage(models.StageThree, mapperStage3))
		routes.PUT("/:id/stage4", h.updateStage(models.StageFour, mapperStage4))

		routes.GET("/:id/updates", h.updates)
		routes.GET("/:id/stage-history", h.stageHistory)
	}
}

// getAll returns every job; managers only.
func (slf *jobHandler) getAll(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if !actor.Role.IsManager() {
		c.JSON(http.StatusForbidden, response.APIError{Message: "Insufficient permissions"})
		return
	}

	jobs, err := slf.jobService.FindAll()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to list jobs")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToJobResponses(jobs))
}

// getMine returns the role-scoped listing: own jobs for intake staff, the
// jobs sitting in their stage for everyone else.
func (slf *jobHandler) getMine(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	jobs, err := slf.jobService.FindForRole(actor)
	if err != nil {
		slf.logger.Error().Err(err).Uint("userId", actor.ID).Msg("Failed to list jobs for role")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToJobResponses(jobs))
}

func (slf *jobHandler) getByID(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := slf.jobService.FindForUser(id, actor)
	if err != nil {
		slf.logger.Warn().Err(err).Uint("jobId", id).Msg("Failed to get job")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (slf *jobHandler) create(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req request.CreateJob
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse create job request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	job, stage1, containers := mapper.CreateJob(req)
	created, err := slf.jobService.Create(job, stage1, containers, actor)
	if err != nil {
		slf.logger.Error().Err(err).Str("jobNo", req.JobNo).Msg("Failed to create job")
		writeServiceError(c, err)
		return
	}

	slf.dispatcher.NotifyJobCreation(created.ID, actor.ID)
	c.JSON(http.StatusCreated, created)
}

func (slf *jobHandler) update(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request.UpdateJob
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse update job request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	var containers []models.Stage1Container
	if req.Containers != nil {
		containers = mapper.ToStage1Containers(req.Containers)
	}

	updated, err := slf.jobService.Update(id, mapper.PatchJob(req), mapper.PatchStage1(req), containers, actor)
	if err != nil {
		slf.logger.Error().Err(err).Uint("jobId", id).Msg("Failed to update job")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// stagePatch parses the stage-specific body and returns the patch map plus
// the stage-3 replacement container set.
type stagePatch func(c *gin.Context) (map[string]any, []models.Stage3Container, error)

func mapperStage2(c *gin.Context) (map[string]any, []models.Stage3Container, error) {
	var req request.UpdateStage2
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		return nil, nil, err
	}
	return mapper.PatchStage2(req), nil, nil
}

func mapperStage3(c *gin.Context) (map[string]any, []models.Stage3Container, error) {
	var req request.UpdateStage3
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		return nil, nil, err
	}
	return mapper.PatchStage3(req), mapper.ToStage3Containers(req.Containers), nil
}

func mapperStage4(c *gin.Context) (map[string]any, []models.Stage3Container, error) {
	var req request.UpdateStage4
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		return nil, nil, err
	}
	return mapper.PatchStage4(req), nil, nil
}

func (slf *jobHandler) updateStage(stage models.Stage, parse stagePatch) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := parseID(c)
		if !ok {
			return
		}

		patch, containers, err := parse(c)
		if err != nil {
			slf.logger.Error().Err(err).Str("stage", string(stage)).Msg("Failed to parse stage update request")
			c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
			return
		}

		job, err := slf.stageService.ApplyStageUpdate(id, stage, patch, containers, actor)
		if err != nil {
			slf.logger.Error().Err(err).Uint("jobId", id).Str("stage", string(stage)).Msg("Failed to apply stage update")
			writeServiceError(c, err)
			return
		}

		slf.dispatcher.NotifyStageCompletion(id, stage, actor.ID)
		c.JSON(http.StatusOK, job)
	}
}

func (slf *jobHandler) updates(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	updates, err := slf.jobService.Updates(id, actor)
	if err != nil {
		slf.logger.Warn().Err(err).Uint("jobId", id).Msg("Failed to list job updates")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updates)
}

func (slf *jobHandler) stageHistory(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	history, err := slf.jobService.StageHistory(id, actor)
	if err != nil {
		slf.logger.Warn().Err(err).Uint("jobId", id).Msg("Failed to get stage history")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (slf *jobHandler) nextNumber(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	jobNo, err := slf.jobService.NextJobNumber()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to compute next job number")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.JobNumber{JobNo: jobNo})
}

func (slf *jobHandler) checkNumber(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	jobNo := c.Query("job_no")
	if jobNo == "" {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Query parameter 'job_no' is required"})
		return
	}

	exists, err := slf.jobService.JobNumberExists(jobNo)
	if err != nil {
		slf.logger.Error().Err(err).Str("jobNo", jobNo).Msg("Failed to check job number")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.JobNumber{JobNo: jobNo, Exists: exists})
}
