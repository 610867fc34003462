package startup

import (
	"flag"
	"fmt"
	"os"

	"github.com/ecs-queue-autoscaler/autoscaler/configutil"
	"github.com/ecs-queue-autoscaler/autoscaler/helpers"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"
)

type ConfigValidator interface {
	Validate() error
}

type ConfigWithLogging interface {
	ConfigValidator
	GetLogging() *helpers.LoggingConfig
}

// ConfigLoader reads the optional yaml file at path and overlays env.
type ConfigLoader[T ConfigWithLogging] func(path string, env configutil.EnvReader) (T, error)

func ParseFlags() string {
	var path string
	flag.StringVar(&path, "c", "", "config file")
	flag.Parse()
	return path
}

func LoadAndValidateConfig[T ConfigWithLogging](path string, env configutil.EnvReader, loader ConfigLoader[T]) (T, error) {
	var zero T
	conf, err := loader(path, env)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stdout, "failed to read configuration (file '%s') : %s\n", path, err.Error())
		return zero, err
	}

	err = conf.Validate()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stdout, "failed to validate configuration : %s\n", err.Error())
		return zero, err
	}

	return conf, nil
}

func InitLogger(loggingConfig *helpers.LoggingConfig, serviceName string) lager.Logger {
	return helpers.InitLoggerFromConfig(loggingConfig, serviceName)
}

func StartServices(logger lager.Logger, members grouper.Members) error {
	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))
	logger.Info("started")
	err := <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		return err
	}
	logger.Info("exited")
	return nil
}

func ExitOnError(err error, logger lager.Logger, message string, data ...lager.Data) {
	if err != nil {
		if len(data) > 0 {
			logger.Error(message, err, data[0])
		} else {
			logger.Error(message, err)
		}
		os.Exit(1)
	}
}

// Bootstrap parses -c, loads the file and the process environment, validates, and builds the logger.
// Any configuration error exits 1.
func Bootstrap[T ConfigWithLogging](serviceName string, configLoader ConfigLoader[T]) (T, lager.Logger) {
	path := ParseFlags()

	conf, err := LoadAndValidateConfig[T](path, configutil.OSEnv{}, configLoader)
	if err != nil {
		os.Exit(1)
	}

	logger := InitLogger(conf.GetLogging(), serviceName)

	return conf, logger
}
