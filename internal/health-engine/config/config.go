package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Postgres      PostgresConfig
	Elasticsearch ElasticsearchConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Mail          MailConfig
	Probe         ProbeConfig
	Scheduler     SchedulerConfig
	Monitor       MonitorConfig
	Remediation   RemediationConfig
	Report        ReportConfig
}

type ServerConfig struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
}

type RedisConfig struct {
	Host string `envconfig:"REDIS_HOST" required:"true"`
	Port int    `envconfig:"REDIS_PORT" default:"6379"`
}

type KafkaConfig struct {
	Brokers           []string `envconfig:"KAFKA_BROKERS" required:"true"`
	CommandTopic      string   `envconfig:"KAFKA_COMMAND_TOPIC" default:"service-commands"`
	NotificationTopic string   `envconfig:"KAFKA_NOTIFICATION_TOPIC" default:"notifications"`
	ConsumerGroupID   string   `envconfig:"KAFKA_CONSUMER_GROUP_ID" default:"notification-worker"`
	ConsumerCnt       int      `envconfig:"KAFKA_CONSUMER_CNT" default:"1"`
}

type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL"`
	Password         string `envconfig:"MAIL_PASSWORD"`
	Host             string `envconfig:"MAIL_HOST"`
	Port             int    `envconfig:"MAIL_PORT" default:"587"`
	AdminMailAddress string `envconfig:"ADMIN_MAIL_ADDRESS"`
}

type ProbeConfig struct {
	// Endpoints maps module name to its health endpoint URL,
	// e.g. "auth-system:http://auth:8081/health,database-health:http://db-proxy:8085/health".
	Endpoints      map[string]string `envconfig:"PROBE_ENDPOINTS" required:"true"`
	MaxRetries     int               `envconfig:"PROBE_MAX_RETRIES" default:"3"`
	InitialBackoff time.Duration     `envconfig:"PROBE_INITIAL_BACKOFF" default:"500ms"`
	RequestTimeout time.Duration     `envconfig:"PROBE_REQUEST_TIMEOUT" default:"5s"`
}

type SchedulerConfig struct {
	// Intervals maps module name to probe interval; modules missing here run
	// at DefaultInterval.
	Intervals       map[string]time.Duration `envconfig:"SCHEDULER_INTERVALS"`
	DefaultInterval time.Duration            `envconfig:"SCHEDULER_DEFAULT_INTERVAL" default:"5m"`
}

type MonitorConfig struct {
	Interval             time.Duration `envconfig:"MONITOR_INTERVAL" default:"60s"`
	HistoryLimit         int           `envconfig:"MONITOR_HISTORY_LIMIT" default:"60"`
	CPUThreshold         float64       `envconfig:"MONITOR_CPU_THRESHOLD" default:"80"`
	MemoryThreshold      float64       `envconfig:"MONITOR_MEMORY_THRESHOLD" default:"85"`
	ResponseTimeMsLimit  float64       `envconfig:"MONITOR_RESPONSE_TIME_MS_LIMIT" default:"1000"`
	ErrorRateThreshold   float64       `envconfig:"MONITOR_ERROR_RATE_THRESHOLD" default:"0.05"`
	SlowQueryThresholdMs float64       `envconfig:"MONITOR_SLOW_QUERY_THRESHOLD_MS" default:"500"`
}

type RemediationConfig struct {
	SettleDelay     time.Duration `envconfig:"REMEDIATION_SETTLE_DELAY" default:"10s"`
	ScriptsDir      string        `envconfig:"REMEDIATION_SCRIPTS_DIR" default:"./scripts"`
	ScriptTimeout   time.Duration `envconfig:"REMEDIATION_SCRIPT_TIMEOUT" default:"60s"`
	KnownServices   []string      `envconfig:"REMEDIATION_KNOWN_SERVICES" default:"auth,api,worker,whatsapp-bridge"`
	CacheNamespaces []string      `envconfig:"REMEDIATION_CACHE_NAMESPACES" default:"jwt_keys,sessions,quotes"`
	RuleCacheTTL    time.Duration `envconfig:"REMEDIATION_RULE_CACHE_TTL" default:"5m"`
}

type ReportConfig struct {
	Dir string `envconfig:"REPORT_DIR" default:"./reports"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
