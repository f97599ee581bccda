package config

type DriverConfig struct {
	MongoDB  MongoDB
	Redis    Redis
	RabbitMQ RabbitMQ
	Minio    Minio
	Logger   Logger
}

type MongoDB struct {
	Port                  string
	Host                  string
	DbName                string
	Username              string
	Password              string
	ConnectTimeoutSeconds int
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type RabbitMQ struct {
	Port     string
	Host     string
	Username string
	Password string
}

type Minio struct {
	Port       string
	Host       string
	Username   string
	Password   string
	BucketName string
	UseSSL     bool
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App App
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	AdminAPIKey                string
	MailerQueue                string
	MaxRequests                int
	ShutdownTimeout            int
	DefaultSlotDurationMinutes int
	PhotoMaxUploadSizeInMB     int
}
