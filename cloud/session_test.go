package cloud_test

import (
	"errors"
	"fmt"

	"github.com/ecs-queue-autoscaler/autoscaler/cloud"

	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Session", func() {
	Describe("NewSession", func() {
		It("applies region, endpoint and retries", func() {
			sess, err := cloud.NewSession(cloud.AWSConfig{
				Region:     "eu-west-1",
				Endpoint:   "http://localhost:4566",
				MaxRetries: cloud.DefaultMaxRetries,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(aws.StringValue(sess.Config.Region)).To(Equal("eu-west-1"))
			Expect(aws.StringValue(sess.Config.Endpoint)).To(Equal("http://localhost:4566"))
			Expect(aws.IntValue(sess.Config.MaxRetries)).To(Equal(10))
		})

		It("builds every client from the session", func() {
			sess, err := cloud.NewSession(cloud.AWSConfig{Region: "us-east-1", MaxRetries: 3})
			Expect(err).NotTo(HaveOccurred())
			clients := cloud.NewClients(sess)
			Expect(clients.SQS).NotTo(BeNil())
			Expect(clients.CloudWatch).NotTo(BeNil())
			Expect(clients.AutoScaling).NotTo(BeNil())
			Expect(clients.ECS).NotTo(BeNil())
		})
	})

	DescribeTable("AWSConfig.Validate",
		func(conf cloud.AWSConfig, valid bool) {
			err := conf.Validate()
			if valid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(MatchError(cloud.ErrInvalidAWSConfig))
			}
		},
		Entry("defaults", cloud.AWSConfig{MaxRetries: 10}, true),
		Entry("localstack endpoint", cloud.AWSConfig{Endpoint: "http://localhost:4566"}, true),
		Entry("negative retries", cloud.AWSConfig{MaxRetries: -1}, false),
		Entry("relative endpoint", cloud.AWSConfig{Endpoint: "localhost"}, false),
	)

	Describe("ErrorData", func() {
		It("extracts the code and message of an aws error", func() {
			err := fmt.Errorf("wrapped: %w", awserr.New("AWS.SimpleQueueService.NonExistentQueue", "queue does not exist", nil))
			Expect(cloud.ErrorData(err)).To(Equal(lager.Data{
				"code":    "AWS.SimpleQueueService.NonExistentQueue",
				"message": "queue does not exist",
			}))
			Expect(cloud.IsErrorCode(err, "AWS.SimpleQueueService.NonExistentQueue")).To(BeTrue())
		})

		It("adds request details for request failures", func() {
			err := awserr.NewRequestFailure(awserr.New("Throttling", "rate exceeded", nil), 400, "req-1")
			Expect(cloud.ErrorData(err)).To(HaveKeyWithValue("status_code", 400))
			Expect(cloud.ErrorData(err)).To(HaveKeyWithValue("request_id", "req-1"))
		})

		It("is empty for other errors", func() {
			Expect(cloud.ErrorData(errors.New("boom"))).To(BeEmpty())
			Expect(cloud.IsErrorCode(errors.New("boom"), "Throttling")).To(BeFalse())
		})
	})
})
