package config

type InternalConfig struct {
	App        App           `mapstructure:"app"`
	JWT        AppJWT        `mapstructure:"jwt"`
	Session    AppSession    `mapstructure:"session"`
	BlobStore  AppBlobStore  `mapstructure:"blob_store"`
	Patient    AppPatient    `mapstructure:"patient"`
	Document   AppDocument   `mapstructure:"document"`
	Upload     AppUpload     `mapstructure:"upload"`
	Extraction AppExtraction `mapstructure:"extraction"`
	Event      AppEvent      `mapstructure:"event"`
	Catalog    AppCatalog    `mapstructure:"catalog"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppSession struct {
	ExpiredTimeInHours int `mapstructure:"expired_time_in_hours"`
}

type AppBlobStore struct {
	// Driver is one of minio, s3 or memory.
	Driver string `mapstructure:"driver"`
	Bucket string `mapstructure:"bucket"`
}

type AppDocument struct {
	MaxUploadSizeInMB          int64 `mapstructure:"max_upload_size_in_mb"`
	ProcessLockTTLInSeconds    int   `mapstructure:"process_lock_ttl_in_seconds"`
	ProcessRateLimit           int   `mapstructure:"process_rate_limit"`
	ProcessRateWindowInSeconds int   `mapstructure:"process_rate_window_in_seconds"`
	RequestTimeoutInSeconds    int   `mapstructure:"request_timeout_in_seconds"`
}

// AppPatient controls accounts created when staff register a patient by email.
type AppPatient struct {
	GeneratedPasswordLength int `mapstructure:"generated_password_length"`
}

// AppUpload throttles multipart uploads per client IP.
type AppUpload struct {
	RatePerMinute int `mapstructure:"rate_per_minute"`
	Burst         int `mapstructure:"burst"`
}

type AppExtraction struct {
	Engine            string  `mapstructure:"engine"`
	URL               string  `mapstructure:"url"`
	TimeoutInSeconds  int     `mapstructure:"timeout_in_seconds"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

type AppEvent struct {
	Broker string `mapstructure:"broker"`
	Queue  string `mapstructure:"queue"`
	Topic  string `mapstructure:"topic"`
}

type AppCatalog struct {
	CacheTTLInMinutes int `mapstructure:"cache_ttl_in_minutes"`
}
