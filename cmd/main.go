package main

import (
	"context"
	"errors"
	"freightflow"
	"freightflow/internal/api/handler/endpoints"
	"freightflow/internal/api/models"
	"freightflow/internal/api/service"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	freightflow.InitConfig(".env")
	freightflow.Connect()
	gin.SetMode(gin.ReleaseMode)

	if freightflow.GetConfig().Mode == "dev" {
		if err := freightflow.DB.AutoMigrate(
			&models.User{},
			&models.Job{},
			&models.Stage1Data{},
			&models.Stage1Container{},
			&models.Stage2Data{},
			&models.Stage3Data{},
			&models.Stage3Container{},
			&models.Stage4Data{},
			&models.JobUpdate{},
			&models.JobFile{},
			&models.Task{},
			&models.TaskAssignment{},
			&models.TaskUpdate{},
			&models.Shipper{},
			&models.Consignee{},
		); err != nil {
			freightflow.Logger.Fatal().Err(err).Msg("Failed to migrate database")
		}
		freightflow.Logger.Info().Msg("Database migrated successfully")
		seedAdmin()
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	router, err := graceful.Default(graceful.WithAddr(freightflow.GetConfig().ApiPort))
	if err != nil {
		panic(err)
	}
	defer stop()
	defer router.Close()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	dispatcher := service.NewDispatcher()
	go dispatcher.Run(ctx)
	freightflow.Logger.Info().Msg("Notification dispatcher started")

	initAPI(router, dispatcher)

	freightflow.Logger.Debug().Msgf("Starting API on port %s", freightflow.GetConfig().ApiPort)
	if err = router.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		freightflow.Logger.Fatal().Msg(err.Error())
		panic(err)
	}
}

func initAPI(router *graceful.Graceful, dispatcher *service.Dispatcher) {
	endpoints.AuthHandler(router)
	endpoints.JobHandler(router, dispatcher)
	endpoints.FileHandler(router)
	endpoints.TaskHandler(router)
	endpoints.PartyHandler(router)
}

// seedAdmin creates the initial admin account when the users table is empty.
func seedAdmin() {
	var count int64
	if err := freightflow.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		freightflow.Logger.Error().Err(err).Msg("Failed to count users")
		return
	}
	if count > 0 {
		return
	}

	password := freightflow.GetEnv("SEED_ADMIN_PASSWORD", "admin123")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		freightflow.Logger.Error().Err(err).Msg("Failed to hash seed admin password")
		return
	}

	admin := models.User{
		Username:     "admin",
		PasswordHash: string(hashed),
		Designation:  "Administrator",
		Role:         models.RoleAdmin,
		Email:        freightflow.GetConfig().NotifyConfig.AdminEmail,
	}
	if err := freightflow.DB.Create(&admin).Error; err != nil {
		freightflow.Logger.Error().Err(err).Msg("Failed to seed admin user")
		return
	}
	freightflow.Logger.Info().Msg("Seeded initial admin user")
}
