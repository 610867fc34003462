package operator_test

import (
	"context"
	"time"

	"github.com/ecs-queue-autoscaler/autoscaler/fakes"
	"github.com/ecs-queue-autoscaler/autoscaler/operator"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/ginkgomon_v2"
)

var _ = Describe("OperatorRunner", func() {
	var (
		proc           ifrit.Process
		fclock         *fakeclock.FakeClock
		buffer         *gbytes.Buffer
		fakeOperator   *fakes.FakeOperator
		operatorRunner *operator.OperatorRunner
	)

	BeforeEach(func() {
		logger := lagertest.NewTestLogger("operator-runner-test")
		buffer = logger.Buffer()
		fclock = fakeclock.NewFakeClock(time.Now())

		fakeOperator = &fakes.FakeOperator{}
		operatorRunner = operator.NewOperatorRunner(fakeOperator, TestRefreshInterval, time.Minute, fclock, logger)
	})

	JustBeforeEach(func() {
		proc = ifrit.Invoke(operatorRunner)
		Eventually(buffer).Should(gbytes.Say("started"))
	})

	AfterEach(func() {
		ginkgomon_v2.Kill(proc)
		Eventually(proc.Wait()).Should(Receive(BeNil()))
	})

	It("operates immediately and then after each interval", func() {
		Eventually(fakeOperator.OperateCallCount).Should(Equal(1))

		fclock.Increment(TestRefreshInterval)
		Eventually(fakeOperator.OperateCallCount).Should(Equal(2))

		fclock.Increment(TestRefreshInterval)
		Eventually(fakeOperator.OperateCallCount).Should(Equal(3))
	})

	It("bounds each run with the timeout", func() {
		Eventually(fakeOperator.OperateCallCount).Should(Equal(1))
		_, hasDeadline := fakeOperator.OperateArgsForCall(0).Deadline()
		Expect(hasDeadline).To(BeTrue())
	})

	Context("when an interrupt is sent", func() {
		It("stops operating", func() {
			fclock.Increment(TestRefreshInterval)
			Eventually(fakeOperator.OperateCallCount).Should(Equal(2))

			ginkgomon_v2.Interrupt(proc)
			Eventually(proc.Wait()).Should(Receive(BeNil()))
			Eventually(buffer).Should(gbytes.Say("stopped"))

			fclock.Increment(TestRefreshInterval)
			Consistently(fakeOperator.OperateCallCount).Should(Equal(2))
		})

		It("cancels a run in progress", func() {
			blocked := make(chan context.Context, 1)
			fakeOperator.OperateStub = func(ctx context.Context) {
				blocked <- ctx
				<-ctx.Done()
			}

			var ctx context.Context
			Eventually(blocked).Should(Receive(&ctx))
			ginkgomon_v2.Interrupt(proc)
			Eventually(ctx.Done()).Should(BeClosed())
			Eventually(proc.Wait()).Should(Receive(BeNil()))
		})
	})
})
