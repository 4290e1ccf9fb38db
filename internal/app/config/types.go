package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Minio    Minio
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App    App
		JWT    JWT
		Upload Upload
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		NotificationQueue         string
		MaxRequests               int
		ShutdownTimeoutInSeconds  int
		SessionExpiredTimeInHours int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	// Upload selects the attachment storage strategy. Mode is either
	// "reference" (bytes in object storage, patient document keeps the
	// object name) or "inline" (bytes inside the attachment sub-document).
	// The mode is fixed per deployment.
	Upload struct {
		Mode              string
		BucketName        string
		MaxUploadSizeInMB int64
	}
)
