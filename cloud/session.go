package cloud

import (
	"errors"
	"fmt"
	"net/url"

	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
)

const DefaultMaxRetries = 10

var ErrInvalidAWSConfig = errors.New("invalid aws configuration")

type AWSConfig struct {
	Region string `yaml:"region" json:"region"`
	// Endpoint overrides every service endpoint, e.g. a localstack URL.
	Endpoint   string `yaml:"endpoint" json:"endpoint"`
	MaxRetries int    `yaml:"max_retries" json:"max_retries"`
}

func (c AWSConfig) Validate() error {
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: max_retries must not be negative", ErrInvalidAWSConfig)
	}
	if c.Endpoint != "" {
		u, err := url.Parse(c.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: endpoint %q is not an absolute url", ErrInvalidAWSConfig, c.Endpoint)
		}
	}
	return nil
}

// NewSession builds the session shared by every client of one process.
// Region and credentials fall back to the SDK default chain.
func NewSession(conf AWSConfig) (*session.Session, error) {
	awsConfig := aws.NewConfig().WithMaxRetries(conf.MaxRetries)
	if conf.Region != "" {
		awsConfig = awsConfig.WithRegion(conf.Region)
	}
	if conf.Endpoint != "" {
		awsConfig = awsConfig.WithEndpoint(conf.Endpoint).WithS3ForcePathStyle(true)
	}
	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *awsConfig,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}
	return sess, nil
}

// ErrorData describes an AWS service error for logging.
func ErrorData(err error) lager.Data {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return lager.Data{}
	}
	data := lager.Data{"code": aerr.Code(), "message": aerr.Message()}
	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) {
		data["status_code"] = reqErr.StatusCode()
		data["request_id"] = reqErr.RequestID()
	}
	return data
}

// IsErrorCode reports whether err is an AWS error with the given code.
func IsErrorCode(err error, code string) bool {
	var aerr awserr.Error
	return errors.As(err, &aerr) && aerr.Code() == code
}
