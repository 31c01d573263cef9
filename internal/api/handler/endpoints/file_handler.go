package endpoints

import (
	"freightflow"
	"freightflow/internal/api/handler/middleware"
	"freightflow/internal/api/handler/response"
	"freightflow/internal/api/models"
	"freightflow/internal/api/service"
	"net/http"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type fileHandler struct {
	fileService *service.FileService
	config      freightflow.AppConfig
	logger      zerolog.Logger
}

func newFileHandler() *fileHandler {
	return &fileHandler{
		fileService: service.NewFileService(),
		config:      freightflow.GetConfig(),
		logger:      freightflow.Logger,
	}
}

func FileHandler(router *graceful.Graceful) {
	h := newFileHandler()

	routes := router.Group("/api/v1/jobs/:id/files")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.POST("", h.upload)
		routes.GET("", h.list)
	}

	files := router.Group("/api/v1/files")
	files.Use(middleware.AuthMiddleware(h.config))
	{
		files.GET("/:id/download", h.download)
		files.DELETE("/:id", h.remove)
	}
}

// upload accepts a multipart form with a "file" part plus stage and
// description fields.
func (slf *fileHandler) upload(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := parseID(c)
	if !ok {
		return
	}

	stage := models.Stage(c.PostForm("stage"))
	description := c.PostForm("description")

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Form field 'file' is required"})
		return
	}

	src, err := header.Open()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to open uploaded file")
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Unreadable upload"})
		return
	}
	defer src.Close()

	file, err := slf.fileService.Upload(jobID, stage, src, header.Filename, header.Header.Get("Content-Type"), description, actor)
	if err != nil {
		slf.logger.Error().Err(err).Uint("jobId", jobID).Msg("Failed to upload file")
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, file)
}

func (slf *fileHandler) list(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := parseID(c)
	if !ok {
		return
	}

	stage := models.Stage(c.Query("stage"))
	if !stage.Valid() {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Query parameter 'stage' is required"})
		return
	}

	files, err := slf.fileService.List(jobID, stage, actor)
	if err != nil {
		slf.logger.Warn().Err(err).Uint("jobId", jobID).Msg("Failed to list files")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

func (slf *fileHandler) download(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	fileID, ok := parseID(c)
	if !ok {
		return
	}

	file, err := slf.fileService.Download(fileID, actor)
	if err != nil {
		slf.logger.Warn().Err(err).Uint("fileId", fileID).Msg("Failed to download file")
		writeServiceError(c, err)
		return
	}

	c.FileAttachment(file.FilePath, file.OriginalName)
}

func (slf *fileHandler) remove(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	fileID, ok := parseID(c)
	if !ok {
		return
	}

	if err := slf.fileService.Delete(fileID, actor); err != nil {
		slf.logger.Warn().Err(err).Uint("fileId", fileID).Msg("Failed to delete file")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": fileID, "deleted": true})
}
