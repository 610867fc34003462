package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/cloud"
	"github.com/ecs-queue-autoscaler/autoscaler/configutil"
	"github.com/ecs-queue-autoscaler/autoscaler/helpers"
)

const (
	MalformedActionDelete = "delete"
	MalformedActionRetain = "retain"

	DefaultMaxMessages       int64 = 1
	DefaultWaitTime                = 5 * time.Second
	DefaultVisibilityTimeout       = 0
	DefaultDuplicateTTL            = 10 * time.Minute

	DefaultPollBackOffInitialInterval = 1 * time.Second
	DefaultPollBackOffMaxInterval     = 30 * time.Second

	DefaultBackOffInitialInterval         = 30 * time.Second
	DefaultBackOffMaxInterval             = 5 * time.Minute
	DefaultBreakerConsecutiveFailureCount = 3

	maxReceiveMessages = 10
	maxWaitTime        = 20 * time.Second
)

var ErrInvalidConfig = errors.New("invalid worker configuration")

type CircuitBreakerConfig struct {
	BackOffInitialInterval  time.Duration `yaml:"back_off_initial_interval" json:"back_off_initial_interval"`
	BackOffMaxInterval      time.Duration `yaml:"back_off_max_interval" json:"back_off_max_interval"`
	ConsecutiveFailureCount int64         `yaml:"consecutive_failure_count" json:"consecutive_failure_count"`
}

type MetricsConfig struct {
	Namespace          string               `yaml:"namespace" json:"namespace"`
	DurationMetricName string               `yaml:"duration_metric_name" json:"duration_metric_name"`
	MetricType         string               `yaml:"metric_type" json:"metric_type"`
	CircuitBreaker     CircuitBreakerConfig `yaml:"circuit_breaker" json:"circuit_breaker"`
}

type PollConfig struct {
	MaxMessages int64         `yaml:"max_messages" json:"max_messages"`
	WaitTime    time.Duration `yaml:"wait_time" json:"wait_time"`
	// VisibilityTimeout overrides the queue default when set.
	VisibilityTimeout      time.Duration `yaml:"visibility_timeout" json:"visibility_timeout"`
	BackOffInitialInterval time.Duration `yaml:"back_off_initial_interval" json:"back_off_initial_interval"`
	BackOffMaxInterval     time.Duration `yaml:"back_off_max_interval" json:"back_off_max_interval"`
}

type Config struct {
	Logging                helpers.LoggingConfig `yaml:"logging" json:"logging"`
	Health                 helpers.HealthConfig  `yaml:"health" json:"health"`
	AWS                    cloud.AWSConfig       `yaml:"aws" json:"aws"`
	QueueName              string                `yaml:"queue_name" json:"queue_name"`
	Metrics                MetricsConfig         `yaml:"metrics" json:"metrics"`
	Poll                   PollConfig            `yaml:"poll" json:"poll"`
	MalformedMessageAction string                `yaml:"malformed_message_action" json:"malformed_message_action"`
	// DuplicateTTL is how long the id of a message whose delete failed is remembered.
	DuplicateTTL time.Duration `yaml:"duplicate_ttl" json:"duplicate_ttl"`
}

func defaultConfig() Config {
	return Config{
		Logging: helpers.LoggingConfig{Level: "info"},
		Health: helpers.HealthConfig{
			ServerConfig: helpers.ServerConfig{Port: 8081},
		},
		AWS: cloud.AWSConfig{MaxRetries: cloud.DefaultMaxRetries},
		Metrics: MetricsConfig{
			CircuitBreaker: CircuitBreakerConfig{
				BackOffInitialInterval:  DefaultBackOffInitialInterval,
				BackOffMaxInterval:      DefaultBackOffMaxInterval,
				ConsecutiveFailureCount: DefaultBreakerConsecutiveFailureCount,
			},
		},
		Poll: PollConfig{
			MaxMessages:            DefaultMaxMessages,
			WaitTime:               DefaultWaitTime,
			VisibilityTimeout:      DefaultVisibilityTimeout,
			BackOffInitialInterval: DefaultPollBackOffInitialInterval,
			BackOffMaxInterval:     DefaultPollBackOffMaxInterval,
		},
		MalformedMessageAction: MalformedActionDelete,
		DuplicateTTL:           DefaultDuplicateTTL,
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
	overlay.String("AWS_REGION", &conf.AWS.Region)
	overlay.String("AWS_ENDPOINT_URL", &conf.AWS.Endpoint)
	overlay.String("QUEUE_NAME", &conf.QueueName)
	overlay.String("METRIC_NAMESPACE", &conf.Metrics.Namespace)
	overlay.String("APP_METRIC_NAME", &conf.Metrics.DurationMetricName)
	overlay.String("METRIC_TYPE", &conf.Metrics.MetricType)
	overlay.String("MALFORMED_MESSAGE_ACTION", &conf.MalformedMessageAction)
	if err := overlay.Err(); err != nil {
		return nil, err
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)
	conf.MalformedMessageAction = strings.ToLower(conf.MalformedMessageAction)
	return &conf, nil
}

func (c *Config) GetLogging() *helpers.LoggingConfig {
	return &c.Logging
}

func (c *Config) Validate() error {
	if err := configutil.CheckRequired(
		configutil.Required("queue_name", "QUEUE_NAME", c.QueueName != ""),
		configutil.Required("metrics.namespace", "METRIC_NAMESPACE", c.Metrics.Namespace != ""),
		configutil.Required("metrics.duration_metric_name", "APP_METRIC_NAME", c.Metrics.DurationMetricName != ""),
		configutil.Required("metrics.metric_type", "METRIC_TYPE", c.Metrics.MetricType != ""),
	); err != nil {
		return err
	}

	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	var errs []error
	if c.Poll.MaxMessages < 1 || c.Poll.MaxMessages > maxReceiveMessages {
		errs = append(errs, invalid("poll.max_messages must be between 1 and %d", maxReceiveMessages))
	}
	if c.Poll.WaitTime < 0 || c.Poll.WaitTime > maxWaitTime {
		errs = append(errs, invalid("poll.wait_time must be between 0s and %s", maxWaitTime))
	}
	if c.Poll.VisibilityTimeout < 0 {
		errs = append(errs, invalid("poll.visibility_timeout must not be negative"))
	}
	if c.Poll.BackOffInitialInterval <= 0 || c.Poll.BackOffMaxInterval < c.Poll.BackOffInitialInterval {
		errs = append(errs, invalid("poll back off intervals must be positive with max >= initial"))
	}
	if c.MalformedMessageAction != MalformedActionDelete && c.MalformedMessageAction != MalformedActionRetain {
		errs = append(errs, invalid("malformed_message_action %q must be %q or %q", c.MalformedMessageAction, MalformedActionDelete, MalformedActionRetain))
	}
	if c.DuplicateTTL <= 0 {
		errs = append(errs, invalid("duplicate_ttl must be positive"))
	}
	breaker := c.Metrics.CircuitBreaker
	if breaker.ConsecutiveFailureCount <= 0 {
		errs = append(errs, invalid("metrics.circuit_breaker.consecutive_failure_count must be positive"))
	}
	if breaker.BackOffInitialInterval <= 0 || breaker.BackOffMaxInterval < breaker.BackOffInitialInterval {
		errs = append(errs, invalid("metrics.circuit_breaker back off intervals must be positive with max >= initial"))
	}

	errs = append(errs, c.Logging.Validate(), c.AWS.Validate(), c.Health.Validate())
	return errors.Join(errs...)
}
