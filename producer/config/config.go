package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ecs-queue-autoscaler/autoscaler/cloud"
	"github.com/ecs-queue-autoscaler/autoscaler/configutil"
	"github.com/ecs-queue-autoscaler/autoscaler/helpers"
	"github.com/ecs-queue-autoscaler/autoscaler/models"
)

var ErrInvalidConfig = errors.New("invalid producer configuration")

var defaultLoggingConfig = helpers.LoggingConfig{
	Level: "info",
}

type Config struct {
	Logging          helpers.LoggingConfig `yaml:"logging"`
	AWS              cloud.AWSConfig       `yaml:"aws"`
	QueueName        string                `yaml:"queue_name"`
	NumberOfMessages *int                  `yaml:"number_of_messages"`
	MessageDuration  *float64              `yaml:"message_duration"`
	// SendRate limits sends per second; 0 means unlimited.
	SendRate float64 `yaml:"send_rate"`
}

func defaultConfig() Config {
	return Config{
		Logging: defaultLoggingConfig,
		AWS:     cloud.AWSConfig{MaxRetries: cloud.DefaultMaxRetries},
	}
}

func LoadConfig(path string, env configutil.EnvReader) (*Config, error) {
	conf := defaultConfig()
	if err := helpers.LoadYamlFile(path, &conf); err != nil {
		return nil, err
	}

	overlay := configutil.NewEnvOverlay(env)
	overlay.String("LOG_LEVEL", &conf.Logging.Level)
	overlay.String("AWS_REGION", &conf.AWS.Region)
	overlay.String("AWS_ENDPOINT_URL", &conf.AWS.Endpoint)
	overlay.String("QUEUE_NAME", &conf.QueueName)
	overlay.IntPtr("NUMBER_OF_MESSAGES", &conf.NumberOfMessages)
	overlay.FloatPtr("DEFAULT_MSG_PROC_DURATION", &conf.MessageDuration)
	overlay.Float("PRODUCER_SEND_RATE", &conf.SendRate)
	if err := overlay.Err(); err != nil {
		return nil, err
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)
	return &conf, nil
}

func (c *Config) GetLogging() *helpers.LoggingConfig {
	return &c.Logging
}

func (c *Config) Validate() error {
	if err := configutil.CheckRequired(
		configutil.Required("queue_name", "QUEUE_NAME", c.QueueName != ""),
		configutil.Required("number_of_messages", "NUMBER_OF_MESSAGES", c.NumberOfMessages != nil),
		configutil.Required("message_duration", "DEFAULT_MSG_PROC_DURATION", c.MessageDuration != nil),
	); err != nil {
		return err
	}

	var errs []error
	if *c.NumberOfMessages < 0 {
		errs = append(errs, fmt.Errorf("%w: number_of_messages must not be negative", ErrInvalidConfig))
	}
	if !(*c.MessageDuration >= 0 && *c.MessageDuration <= models.MaxWorkItemDuration) {
		errs = append(errs, fmt.Errorf("%w: message_duration must be between 0 and %d seconds", ErrInvalidConfig, models.MaxWorkItemDuration))
	}
	if !(c.SendRate >= 0) || math.IsInf(c.SendRate, 0) {
		errs = append(errs, fmt.Errorf("%w: send_rate must be a non-negative finite number", ErrInvalidConfig))
	}
	errs = append(errs, c.Logging.Validate(), c.AWS.Validate())
	return errors.Join(errs...)
}
