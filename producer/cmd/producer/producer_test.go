package main_test

import (
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Producer command", func() {
	var (
		args    []string
		env     []string
		session *gexec.Session
	)

	BeforeEach(func() {
		args = nil
		env = []string{"PATH=" + os.Getenv("PATH")}
	})

	JustBeforeEach(func() {
		cmd := exec.Command(producerPath, args...)
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
			Expect(session.Out).To(gbytes.Say(`missing required settings: queue_name \(QUEUE_NAME\), number_of_messages \(NUMBER_OF_MESSAGES\), message_duration \(DEFAULT_MSG_PROC_DURATION\)`))
		})
	})

	When("the config file does not exist", func() {
		BeforeEach(func() {
			args = []string{"-c", filepath.Join(GinkgoT().TempDir(), "missing.yml")}
		})

		It("exits 1", func() {
			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Out).To(gbytes.Say("failed to read configuration"))
		})
	})

	When("the message count is negative", func() {
		BeforeEach(func() {
			env = append(env, "QUEUE_NAME=work.fifo", "NUMBER_OF_MESSAGES=-3", "DEFAULT_MSG_PROC_DURATION=5")
		})

		It("fails validation and exits 1", func() {
			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Out).To(gbytes.Say("failed to validate configuration"))
		})
	})
})
