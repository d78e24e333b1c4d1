package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sehatnama-service/internal/app/config"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/delivery/http/controllers"
	"sehatnama-service/internal/app/delivery/http/middlewares"
	"sehatnama-service/internal/app/delivery/http/routers"
	"sehatnama-service/internal/app/drivers/database"
	"sehatnama-service/internal/app/drivers/logger"
	"sehatnama-service/internal/app/drivers/messaging"
	"sehatnama-service/internal/app/drivers/storage"
	"sehatnama-service/internal/app/services/core/appointments"
	"sehatnama-service/internal/app/services/core/auth"
	"sehatnama-service/internal/app/services/core/documents"
	"sehatnama-service/internal/app/services/core/hospitals"
	labReports "sehatnama-service/internal/app/services/core/lab_reports"
	"sehatnama-service/internal/app/services/core/medicines"
	"sehatnama-service/internal/app/services/core/patients"
	"sehatnama-service/internal/app/services/core/prescriptions"
	"sehatnama-service/internal/app/services/core/session"
	"sehatnama-service/internal/app/services/core/timeline"
	"sehatnama-service/internal/app/services/core/users"
	"sehatnama-service/internal/app/services/shared/access"
	"sehatnama-service/internal/app/services/shared/blobstore"
	"sehatnama-service/internal/app/services/shared/cache"
	"sehatnama-service/internal/app/services/shared/events"
	"sehatnama-service/internal/app/services/shared/extraction"
	"sehatnama-service/internal/app/services/shared/identifier"
	"sehatnama-service/internal/app/services/shared/locker"
	"sehatnama-service/internal/app/services/shared/ratelimiter"
	"sehatnama-service/internal/app/services/shared/redis"
	"sehatnama-service/internal/pkg/constvars"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig, zapLogger)
	redisClient := database.NewRedisClient(driverConfig, zapLogger)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", server.Addr), zap.String("env", internalConfig.App.Env))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
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
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Failed to release drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	ctx := context.Background()
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionRepository := session.NewSessionRepository(redisRepository)
	lockService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	catalogCache := cache.NewCatalogCache(redisRepository, time.Duration(cfg.Catalog.CacheTTLInMinutes)*time.Minute, log)
	patientIDGenerator := identifier.NewPatientIDGenerator(bootstrap.MongoDB, log)

	permissionChecker, err := access.NewPermissionChecker(log)
	if err != nil {
		return err
	}

	blobStore, err := setupBlobStore(ctx, bootstrap)
	if err != nil {
		return err
	}

	eventPublisher, err := setupEventPublisher(bootstrap)
	if err != nil {
		return err
	}

	extractionEngine := setupExtractionEngine(cfg, log)

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB)
	prescriptionRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoDB)
	labReportRepository := labReports.NewLabReportMongoRepository(bootstrap.MongoDB)
	documentRepository := documents.NewDocumentMongoRepository(bootstrap.MongoDB)
	medicineRepository := medicines.NewMedicineMongoRepository(bootstrap.MongoDB)
	hospitalRepository := hospitals.NewHospitalMongoRepository(bootstrap.MongoDB)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, sessionRepository, permissionChecker, cfg, log)
	patientUsecase := patients.NewPatientUsecase(
		patientRepository,
		userRepository,
		appointmentRepository,
		prescriptionRepository,
		labReportRepository,
		documentRepository,
		blobStore,
		patientIDGenerator,
		permissionChecker,
		eventPublisher,
		cfg,
		log,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, patientUsecase, permissionChecker, log)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionRepository, patientUsecase, permissionChecker, log)
	labReportUsecase := labReports.NewLabReportUsecase(labReportRepository, patientUsecase, permissionChecker, log)
	documentUsecase := documents.NewDocumentUsecase(
		documentRepository,
		patientUsecase,
		prescriptionUsecase,
		labReportUsecase,
		blobStore,
		extractionEngine,
		lockService,
		resourceLimiter,
		eventPublisher,
		permissionChecker,
		cfg,
		log,
	)
	timelineUsecase := timeline.NewTimelineUsecase(
		patientUsecase,
		appointmentRepository,
		prescriptionRepository,
		labReportRepository,
		documentRepository,
		log,
	)
	medicineUsecase := medicines.NewMedicineUsecase(medicineRepository, catalogCache, permissionChecker, log)
	hospitalUsecase := hospitals.NewHospitalUsecase(hospitalRepository, catalogCache, permissionChecker, log)

	// Middlewares
	middleware := middlewares.NewMiddlewares(log, authUsecase, cfg)
	uploadRateLimiter := middlewares.NewUploadRateLimiter(cfg.Upload.RatePerMinute, cfg.Upload.Burst, log)

	routers.SetupRoutes(
		bootstrap.Router,
		cfg,
		middleware,
		uploadRateLimiter,
		controllers.NewAuthController(log, authUsecase),
		controllers.NewUserController(log, authUsecase),
		controllers.NewPatientController(log, patientUsecase, timelineUsecase),
		controllers.NewAppointmentController(log, appointmentUsecase),
		controllers.NewPrescriptionController(log, prescriptionUsecase),
		controllers.NewLabReportController(log, labReportUsecase),
		controllers.NewDocumentController(log, documentUsecase, cfg),
		controllers.NewMedicineController(log, medicineUsecase),
		controllers.NewHospitalController(log, hospitalUsecase),
	)
	return nil
}

func setupBlobStore(ctx context.Context, bootstrap *config.Bootstrap) (contracts.BlobStore, error) {
	cfg := bootstrap.InternalConfig.BlobStore
	switch cfg.Driver {
	case constvars.BlobStoreDriverMinio:
		minioClient := storage.NewMinio(bootstrap.DriverConfig, bootstrap.InternalConfig, bootstrap.Logger)
		err := blobstore.EnsureMinioBucket(ctx, minioClient, cfg.Bucket)
		if err != nil {
			return nil, err
		}
		return blobstore.NewMinioBlobStore(minioClient, cfg.Bucket), nil
	case constvars.BlobStoreDriverS3:
		s3Client := storage.NewS3(ctx, bootstrap.DriverConfig, bootstrap.Logger)
		return blobstore.NewS3BlobStore(s3Client, cfg.Bucket), nil
	default:
		bootstrap.Logger.Warn("Using in-memory blob store, uploaded files will not survive a restart")
		return blobstore.NewMemoryBlobStore(), nil
	}
}

func setupEventPublisher(bootstrap *config.Bootstrap) (contracts.EventPublisher, error) {
	cfg := bootstrap.InternalConfig.Event
	switch cfg.Broker {
	case constvars.EventBrokerRabbitMQ:
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(bootstrap.DriverConfig, bootstrap.Logger)
		return events.NewRabbitMQPublisher(bootstrap.RabbitMQ, cfg.Queue)
	case constvars.EventBrokerKafka:
		bootstrap.KafkaWriter = messaging.NewKafkaWriter(bootstrap.DriverConfig, cfg.Topic, bootstrap.Logger)
		return events.NewKafkaPublisher(bootstrap.KafkaWriter), nil
	default:
		return events.NewNoopPublisher(), nil
	}
}

func setupExtractionEngine(cfg *config.InternalConfig, log *zap.Logger) contracts.ExtractionEngine {
	if cfg.Extraction.Engine == constvars.ExtractionEngineHTTP {
		return extraction.NewHTTPEngine(
			cfg.Extraction.URL,
			time.Duration(cfg.Extraction.TimeoutInSeconds)*time.Second,
			cfg.Extraction.RequestsPerSecond,
			log,
		)
	}
	return extraction.NewPlaceholderEngine()
}
