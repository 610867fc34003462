package main_test

import (
	"os"
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Worker command", func() {
	var (
		env     []string
		session *gexec.Session
	)

	BeforeEach(func() {
		env = []string{"PATH=" + os.Getenv("PATH")}
	})

	JustBeforeEach(func() {
		cmd := exec.Command(workerPath)
		cmd.Env = env
		var err error
		session, err = gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		session.Kill().Wait()
	})

	When("required settings are missing", func() {
		It("names all of them and exits 1", func() {
			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Out).To(gbytes.Say(`missing required settings: queue_name \(QUEUE_NAME\), metrics.namespace \(METRIC_NAMESPACE\), metrics.duration_metric_name \(APP_METRIC_NAME\), metrics.metric_type \(METRIC_TYPE\)`))
		})
	})

	When("the malformed message action is unknown", func() {
		BeforeEach(func() {
			env = append(env, "queue_name=work.fifo", "metric_namespace=ECS/BPI", "app_metric_name=msgProcessingDuration",
				"metric_type=bpi-demo", "MALFORMED_MESSAGE_ACTION=dead-letter")
		})

		It("fails validation and exits 1", func() {
			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Out).To(gbytes.Say("failed to validate configuration"))
			Expect(session.Out).To(gbytes.Say("malformed_message_action"))
		})
	})
})
