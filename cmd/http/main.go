package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/delivery/http/middlewares"
	"dentalclinic-service/internal/app/delivery/http/routers"
	"dentalclinic-service/internal/app/drivers/database"
	"dentalclinic-service/internal/app/drivers/logger"
	"dentalclinic-service/internal/app/drivers/messaging"
	driverstorage "dentalclinic-service/internal/app/drivers/storage"
	"dentalclinic-service/internal/app/services/appointments"
	"dentalclinic-service/internal/app/services/attachments"
	"dentalclinic-service/internal/app/services/auth"
	"dentalclinic-service/internal/app/services/patients"
	"dentalclinic-service/internal/app/services/shared/notifications"
	"dentalclinic-service/internal/app/services/shared/session"
	"dentalclinic-service/internal/app/services/shared/storage"
	"dentalclinic-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := driverstorage.NewMinio(driverConfig, internalConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	if bootstrap.InternalConfig.Upload.Mode != constvars.StorageModeReference &&
		bootstrap.InternalConfig.Upload.Mode != constvars.StorageModeInline {
		log.Fatalf("Unknown upload storage mode: %s", bootstrap.InternalConfig.Upload.Mode)
	}

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	sessionService := session.NewSessionService(bootstrap.Redis, bootstrap.InternalConfig.App.SessionExpiredTimeInHours)
	objectStorage := storage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig.Upload.BucketName)
	notificationService, err := notifications.NewRabbitMQNotificationService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.NotificationQueue)
	if err != nil {
		log.Fatalf("Failed to initialize notification service: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Auth
	userMongoRepository := auth.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	patientUsecase := patients.NewPatientUsecase(bootstrap.Logger, patientMongoRepository, objectStorage, bootstrap.InternalConfig.Upload)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Attachment
	attachmentUsecase := attachments.NewAttachmentUsecase(bootstrap.Logger, patientMongoRepository, objectStorage, bootstrap.InternalConfig.Upload)
	attachmentController := attachments.NewAttachmentController(bootstrap.Logger, attachmentUsecase, bootstrap.InternalConfig.Upload.MaxUploadSizeInMB)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(bootstrap.Logger, appointmentMongoRepository, patientMongoRepository, notificationService)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	bootstrap.Logger.Info("Application bootstrapped",
		zap.String("storage_mode", bootstrap.InternalConfig.Upload.Mode),
		zap.String("db_name", dbName),
	)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		patientController,
		attachmentController,
		appointmentController,
	)
}
