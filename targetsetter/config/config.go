package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/cloud"
	"github.com/ecs-queue-autoscaler/autoscaler/configutil"
	"github.com/ecs-queue-autoscaler/autoscaler/db"
	"github.com/ecs-queue-autoscaler/autoscaler/helpers"
	"github.com/ecs-queue-autoscaler/autoscaler/models"
	"github.com/ecs-queue-autoscaler/autoscaler/operator"
	"github.com/ecs-queue-autoscaler/autoscaler/ratelimiter"
)

const (
	DefaultWindow          = 24 * time.Hour
	DefaultPeriod          = time.Second
	DefaultRunTimeout      = 2 * time.Minute
	DefaultLockTTL         = 5 * time.Minute
	DefaultHistoryCutoff   = 30 * 24 * time.Hour
	DefaultPruneInterval   = 24 * time.Hour
	DefaultBacklogInterval = time.Minute

	targetMetricSuffix = "Target"
)

var ErrInvalidConfig = errors.New("invalid target setter configuration")

type MetricsConfig struct {
	Namespace          string `yaml:"namespace" json:"namespace"`
	DurationMetricName string `yaml:"duration_metric_name" json:"duration_metric_name"`
	BPIMetricName      string `yaml:"bpi_metric_name" json:"bpi_metric_name"`
	// TargetMetricName defaults to BPIMetricName + "Target".
	TargetMetricName string        `yaml:"target_metric_name" json:"target_metric_name"`
	MetricType       string        `yaml:"metric_type" json:"metric_type"`
	Window           time.Duration `yaml:"window" json:"window"`
	Period           time.Duration `yaml:"period" json:"period"`
}

type PolicyConfig struct {
	Name             string `yaml:"name" json:"name"`
	ServiceNamespace string `yaml:"service_namespace" json:"service_namespace"`
	OverrideMetric   bool   `yaml:"override_metric" json:"override_metric"`
	// Cooldowns in seconds; 0 keeps the value of the policy.
	ScaleInCooldown  int64 `yaml:"scale_in_cooldown" json:"scale_in_cooldown"`
	ScaleOutCooldown int64 `yaml:"scale_out_cooldown" json:"scale_out_cooldown"`
}

type LockConfig struct {
	RedisURL string        `yaml:"redis_url" json:"redis_url"`
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
	Owner    string        `yaml:"owner" json:"owner"`
}

func (c LockConfig) Enabled() bool {
	return c.RedisURL != ""
}

type HistoryConfig struct {
	DB            db.DatabaseConfig `yaml:"db" json:"db"`
	Cutoff        time.Duration     `yaml:"cutoff" json:"cutoff"`
	PruneInterval time.Duration     `yaml:"prune_interval" json:"prune_interval"`
}

func (c HistoryConfig) Enabled() bool {
	return c.DB.URL != ""
}

type BacklogConfig struct {
	Cluster  string        `yaml:"cluster" json:"cluster"`
	Service  string        `yaml:"service" json:"service"`
	Interval time.Duration `yaml:"interval" json:"interval"`
}

func (c BacklogConfig) Enabled() bool {
	return c.Cluster != "" && c.Service != ""
}

type Config struct {
	Logging helpers.LoggingConfig `yaml:"logging" json:"logging"`
	Health  helpers.HealthConfig  `yaml:"health" json:"health"`
	// Server serves the target history API; port 0 disables it.
	Server helpers.ServerConfig `yaml:"server" json:"server"`
	// TriggerRateLimit limits manual runs per policy.
	TriggerRateLimit ratelimiter.Config `yaml:"trigger_rate_limit" json:"trigger_rate_limit"`
	AWS              cloud.AWSConfig    `yaml:"aws" json:"aws"`
	QueueName        string             `yaml:"queue_name" json:"queue_name"`
	DesiredLatency   *float64           `yaml:"desired_latency" json:"desired_latency"`
	DefaultDuration  *float64           `yaml:"default_duration" json:"default_duration"`
	Metrics          MetricsConfig      `yaml:"metrics" json:"metrics"`
	Policy           PolicyConfig       `yaml:"policy" json:"policy"`
	// Schedule is a cron expression; empty runs once and exits.
	Schedule   string        `yaml:"schedule" json:"schedule"`
	RunTimeout time.Duration `yaml:"run_timeout" json:"run_timeout"`
	Lock       LockConfig    `yaml:"lock" json:"lock"`
	History    HistoryConfig `yaml:"history" json:"history"`
	Backlog    BacklogConfig `yaml:"backlog" json:"backlog"`
}

func defaultConfig() Config {
	return Config{
		Logging: helpers.LoggingConfig{Level: "info"},
		Health: helpers.HealthConfig{
			ServerConfig: helpers.ServerConfig{Port: 8081},
		},
		AWS: cloud.AWSConfig{MaxRetries: cloud.DefaultMaxRetries},
		TriggerRateLimit: ratelimiter.Config{
			MaxAmount:     ratelimiter.DefaultMaxAmount,
			ValidDuration: ratelimiter.DefaultValidDuration,
		},
		Metrics: MetricsConfig{
			Window: DefaultWindow,
			Period: DefaultPeriod,
		},
		Policy: PolicyConfig{
			ServiceNamespace: models.ServiceNamespaceECS,
			OverrideMetric:   true,
		},
		RunTimeout: DefaultRunTimeout,
		Lock:       LockConfig{TTL: DefaultLockTTL},
		History: HistoryConfig{
			Cutoff:        DefaultHistoryCutoff,
			PruneInterval: DefaultPruneInterval,
		},
		Backlog: BacklogConfig{Interval: DefaultBacklogInterval},
	}
}

func LoadConfig(path string, env configutil.EnvReader) (*Config, error) {
	conf := defaultConfig()
	if err := helpers.LoadYamlFile(path, &conf); err != nil {
		return nil, err
	}

	overlay := configutil.NewEnvOverlay(env)
	overlay.String("LOG_LEVEL", &conf.Logging.Level)
	overlay.Int("HEALTH_PORT", &conf.Health.ServerConfig.Port)
	overlay.Int("SERVER_PORT", &conf.Server.Port)
	overlay.String("AWS_REGION", &conf.AWS.Region)
	overlay.String("AWS_ENDPOINT_URL", &conf.AWS.Endpoint)
	overlay.String("QUEUE_NAME", &conf.QueueName)
	overlay.FloatPtr("DESIRED_LATENCY", &conf.DesiredLatency)
	overlay.FloatPtr("DEFAULT_MSG_PROC_DURATION", &conf.DefaultDuration)
	overlay.String("METRIC_NAMESPACE", &conf.Metrics.Namespace)
	overlay.String("APP_METRIC_NAME", &conf.Metrics.DurationMetricName)
	overlay.String("BPI_METRIC_NAME", &conf.Metrics.BPIMetricName)
	overlay.String("TARGET_METRIC_NAME", &conf.Metrics.TargetMetricName)
	overlay.String("METRIC_TYPE", &conf.Metrics.MetricType)
	overlay.String("SCALING_POLICY_NAME", &conf.Policy.Name)
	overlay.String("SERVICE_NAMESPACE", &conf.Policy.ServiceNamespace)
	overlay.String("SCHEDULE", &conf.Schedule)
	overlay.String("REDIS_URL", &conf.Lock.RedisURL)
	overlay.String("HISTORY_DB_URL", &conf.History.DB.URL)
	overlay.String("ECS_CLUSTER", &conf.Backlog.Cluster)
	overlay.String("ECS_SERVICE", &conf.Backlog.Service)
	if err := overlay.Err(); err != nil {
		return nil, err
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)
	if conf.Metrics.TargetMetricName == "" && conf.Metrics.BPIMetricName != "" {
		conf.Metrics.TargetMetricName = conf.Metrics.BPIMetricName + targetMetricSuffix
	}
	return &conf, nil
}

func (c *Config) GetLogging() *helpers.LoggingConfig {
	return &c.Logging
}

func (c *Config) Validate() error {
	if err := configutil.CheckRequired(
		configutil.Required("queue_name", "QUEUE_NAME", c.QueueName != ""),
		configutil.Required("desired_latency", "DESIRED_LATENCY", c.DesiredLatency != nil),
		configutil.Required("default_duration", "DEFAULT_MSG_PROC_DURATION", c.DefaultDuration != nil),
		configutil.Required("metrics.namespace", "METRIC_NAMESPACE", c.Metrics.Namespace != ""),
		configutil.Required("metrics.duration_metric_name", "APP_METRIC_NAME", c.Metrics.DurationMetricName != ""),
		configutil.Required("metrics.bpi_metric_name", "BPI_METRIC_NAME", c.Metrics.BPIMetricName != ""),
		configutil.Required("metrics.metric_type", "METRIC_TYPE", c.Metrics.MetricType != ""),
		configutil.Required("policy.name", "SCALING_POLICY_NAME", c.Policy.Name != ""),
	); err != nil {
		return err
	}

	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	var errs []error
	if !positiveFinite(*c.DesiredLatency) {
		errs = append(errs, invalid("desired_latency must be a positive finite number"))
	}
	if !positiveFinite(*c.DefaultDuration) {
		errs = append(errs, invalid("default_duration must be a positive finite number"))
	}
	if c.Metrics.Window <= 0 {
		errs = append(errs, invalid("metrics.window must be positive"))
	}
	if c.Metrics.Period < time.Second || c.Metrics.Period%time.Second != 0 {
		errs = append(errs, invalid("metrics.period must be a whole number of seconds"))
	}
	if c.Policy.ServiceNamespace == "" {
		errs = append(errs, invalid("policy.service_namespace must not be empty"))
	}
	if c.Policy.ScaleInCooldown < 0 || c.Policy.ScaleOutCooldown < 0 {
		errs = append(errs, invalid("policy cooldowns must not be negative"))
	}
	if c.Schedule != "" {
		if _, err := operator.ParseSchedule(c.Schedule); err != nil {
			errs = append(errs, invalid("schedule: %s", err.Error()))
		}
	}
	if c.RunTimeout <= 0 {
		errs = append(errs, invalid("run_timeout must be positive"))
	}
	if c.Lock.Enabled() && c.Lock.TTL < c.RunTimeout {
		errs = append(errs, invalid("lock.ttl must be at least run_timeout"))
	}
	if c.History.Enabled() {
		if _, err := db.GetConnection(c.History.DB.URL); err != nil {
			errs = append(errs, invalid("history.db.url: %s", err.Error()))
		}
		if c.History.Cutoff <= 0 || c.History.PruneInterval <= 0 {
			errs = append(errs, invalid("history.cutoff and history.prune_interval must be positive"))
		}
	}
	if (c.Backlog.Cluster == "") != (c.Backlog.Service == "") {
		errs = append(errs, invalid("backlog.cluster and backlog.service must be set together"))
	}
	if c.Backlog.Enabled() && c.Backlog.Interval <= 0 {
		errs = append(errs, invalid("backlog.interval must be positive"))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, invalid("server port %d is out of range", c.Server.Port))
	}
	if c.TriggerRateLimit.MaxAmount < 0 || (c.TriggerRateLimit.Enabled() && c.TriggerRateLimit.ValidDuration <= 0) {
		errs = append(errs, invalid("trigger_rate_limit needs a positive valid_duration and a non-negative max_amount"))
	}
	if c.Server.Port != 0 && c.Server.Port == c.Health.ServerConfig.Port {
		errs = append(errs, invalid("server and health server cannot share port %d", c.Server.Port))
	}

	errs = append(errs, c.Logging.Validate(), c.AWS.Validate(), c.Health.Validate())
	return errors.Join(errs...)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
