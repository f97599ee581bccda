package config

import (
	"smileworks-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:                  utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:                  utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:                utils.GetEnvString("MONGODB_DB_NAME", "smileworks"),
			Username:              utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password:              utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			ConnectTimeoutSeconds: utils.GetEnvInt("MONGODB_CONNECT_TIMEOUT_SECONDS", 10),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "provider-photos"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/New_York"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AdminAPIKey:                utils.GetEnvString("APP_ADMIN_API_KEY", ""),
			MailerQueue:                utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "booking_mailer_queue"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			DefaultSlotDurationMinutes: utils.GetEnvInt("APP_DEFAULT_SLOT_DURATION_MINUTES", 30),
			PhotoMaxUploadSizeInMB:     utils.GetEnvInt("APP_PHOTO_UPLOAD_MAX_SIZE_IN_MB", 2),
		},
	}
}
