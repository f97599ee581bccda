package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"smileworks-service/internal/app/config"
	"smileworks-service/internal/app/delivery/http/middlewares"
	"smileworks-service/internal/app/delivery/http/routers"
	"smileworks-service/internal/app/drivers/database"
	"smileworks-service/internal/app/drivers/logger"
	"smileworks-service/internal/app/drivers/messaging"
	storagedriver "smileworks-service/internal/app/drivers/storage"
	"smileworks-service/internal/app/services/core/appointments"
	"smileworks-service/internal/app/services/core/assignments"
	"smileworks-service/internal/app/services/core/holidays"
	"smileworks-service/internal/app/services/core/locations"
	"smileworks-service/internal/app/services/core/occurrences"
	"smileworks-service/internal/app/services/core/providers"
	"smileworks-service/internal/app/services/core/pto"
	"smileworks-service/internal/app/services/core/scheduling"
	"smileworks-service/internal/app/services/core/shiftplans"
	"smileworks-service/internal/app/services/core/shifttemplates"
	"smileworks-service/internal/app/services/shared/locker"
	"smileworks-service/internal/app/services/shared/mailqueue"
	sharedredis "smileworks-service/internal/app/services/shared/redis"
	"smileworks-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("error loading timezone", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storagedriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		AccessLogger:   accessLog,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("waiting for pending requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("error closing drivers", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	storageService := storage.NewMinioStorage(bootstrap.Minio)
	mailQueueService, err := mailqueue.NewMailQueueService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.MailerQueue, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("error initializing mail queue", zap.Error(err))
	}

	// Middlewares
	mws := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.AccessLogger, bootstrap.InternalConfig)

	// Repositories
	locationRepository := locations.NewLocationMongoRepository(bootstrap.MongoDB, dbName)
	providerRepository := providers.NewProviderMongoRepository(bootstrap.MongoDB, dbName)
	holidayCalendarRepository := holidays.NewHolidayCalendarMongoRepository(bootstrap.MongoDB, dbName)
	holidayDateRepository := holidays.NewHolidayDateMongoRepository(bootstrap.MongoDB, dbName)
	ptoCalendarRepository := pto.NewPtoCalendarMongoRepository(bootstrap.MongoDB, dbName)
	ptoEntryRepository := pto.NewPtoEntryMongoRepository(bootstrap.MongoDB, dbName)
	shiftTemplateRepository := shifttemplates.NewShiftTemplateMongoRepository(bootstrap.MongoDB, dbName)
	shiftPlanRepository := shiftplans.NewShiftPlanMongoRepository(bootstrap.MongoDB, dbName)
	shiftPlanSlotRepository := shiftplans.NewShiftPlanSlotMongoRepository(bootstrap.MongoDB, dbName)
	assignmentRepository := assignments.NewProviderAssignmentMongoRepository(bootstrap.MongoDB, dbName)
	occurrenceRepository := occurrences.NewShiftOccurrenceMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	locationUsecase := locations.NewLocationUsecase(locationRepository, bootstrap.Logger)
	providerUsecase := providers.NewProviderUsecase(providerRepository, storageService, bootstrap.DriverConfig, bootstrap.Logger)
	holidayUsecase := holidays.NewHolidayUsecase(holidayCalendarRepository, holidayDateRepository, bootstrap.Logger)
	ptoUsecase := pto.NewPtoUsecase(ptoCalendarRepository, ptoEntryRepository, bootstrap.Logger)
	shiftTemplateUsecase := shifttemplates.NewShiftTemplateUsecase(shiftTemplateRepository, bootstrap.Logger)
	shiftPlanUsecase := shiftplans.NewShiftPlanUsecase(shiftPlanRepository, shiftPlanSlotRepository, shiftTemplateRepository, bootstrap.Logger)
	assignmentUsecase := assignments.NewAssignmentUsecase(assignmentRepository, providerRepository, shiftPlanSlotRepository, bootstrap.Logger)
	schedulingUsecase := scheduling.NewSchedulingUsecase(
		providerRepository,
		shiftPlanRepository,
		shiftPlanSlotRepository,
		shiftTemplateRepository,
		assignmentRepository,
		holidayDateRepository,
		ptoEntryRepository,
		appointmentRepository,
		occurrenceRepository,
		redisRepository,
		lockerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		providerRepository,
		locationRepository,
		schedulingUsecase,
		mailQueueService,
		bootstrap.Logger,
	)

	// Controllers
	locationController := locations.NewLocationController(bootstrap.Logger, locationUsecase)
	providerController := providers.NewProviderController(bootstrap.Logger, providerUsecase, bootstrap.InternalConfig)
	holidayController := holidays.NewHolidayController(bootstrap.Logger, holidayUsecase)
	ptoController := pto.NewPtoController(bootstrap.Logger, ptoUsecase)
	shiftTemplateController := shifttemplates.NewShiftTemplateController(bootstrap.Logger, shiftTemplateUsecase)
	shiftPlanController := shiftplans.NewShiftPlanController(bootstrap.Logger, shiftPlanUsecase)
	assignmentController := assignments.NewAssignmentController(bootstrap.Logger, assignmentUsecase)
	schedulingController := scheduling.NewSchedulingController(bootstrap.Logger, schedulingUsecase)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mws,
		locationController,
		providerController,
		holidayController,
		ptoController,
		shiftTemplateController,
		shiftPlanController,
		assignmentController,
		schedulingController,
		appointmentController,
	)
}
