package operator_test

import (
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

var _ = Describe("ParseSchedule", func() {
	start := time.Date(2026, 3, 1, 10, 2, 30, 0, time.UTC)

	DescribeTable("next activation",
		func(expr string, expected time.Time) {
			schedule, err := operator.ParseSchedule(expr)
			Expect(err).NotTo(HaveOccurred())
			Expect(schedule.Next(start)).To(Equal(expected))
		},
		Entry("six fields with seconds", "0 */5 * * * *", time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC)),
		Entry("five fields", "*/10 * * * *", time.Date(2026, 3, 1, 10, 10, 0, 0, time.UTC)),
		Entry("descriptor", "@hourly", time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)),
		Entry("interval", "@every 5m", time.Date(2026, 3, 1, 10, 7, 30, 0, time.UTC)),
	)

	It("rejects malformed expressions", func() {
		_, err := operator.ParseSchedule("every five minutes")
		Expect(err).To(MatchError(ContainSubstring(`invalid schedule "every five minutes"`)))
	})
})

var _ = Describe("ScheduleRunner", func() {
	var (
		proc         ifrit.Process
		fclock       *fakeclock.FakeClock
		buffer       *gbytes.Buffer
		fakeOperator *fakes.FakeOperator
		runner       *operator.ScheduleRunner
	)

	BeforeEach(func() {
		logger := lagertest.NewTestLogger("schedule-runner-test")
		buffer = logger.Buffer()
		fclock = fakeclock.NewFakeClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
		fakeOperator = &fakes.FakeOperator{}

		schedule, err := operator.ParseSchedule("@every 5m")
		Expect(err).NotTo(HaveOccurred())
		runner = operator.NewScheduleRunner(fakeOperator, schedule, time.Minute, fclock, logger)
	})

	JustBeforeEach(func() {
		proc = ifrit.Invoke(runner)
		Eventually(buffer).Should(gbytes.Say("started"))
	})

	AfterEach(func() {
		ginkgomon_v2.Kill(proc)
		Eventually(proc.Wait()).Should(Receive(BeNil()))
	})

	It("waits for the first activation before operating", func() {
		Consistently(fakeOperator.OperateCallCount).Should(Equal(0))

		fclock.WaitForWatcherAndIncrement(4 * time.Minute)
		Consistently(fakeOperator.OperateCallCount).Should(Equal(0))

		fclock.Increment(time.Minute)
		Eventually(fakeOperator.OperateCallCount).Should(Equal(1))
	})

	It("operates at every activation with a bounded context", func() {
		fclock.WaitForWatcherAndIncrement(5 * time.Minute)
		Eventually(fakeOperator.OperateCallCount).Should(Equal(1))

		fclock.WaitForWatcherAndIncrement(5 * time.Minute)
		Eventually(fakeOperator.OperateCallCount).Should(Equal(2))

		_, hasDeadline := fakeOperator.OperateArgsForCall(1).Deadline()
		Expect(hasDeadline).To(BeTrue())
	})

	It("stops on interrupt", func() {
		fclock.WaitForWatcherAndIncrement(time.Second)
		ginkgomon_v2.Interrupt(proc)
		Eventually(proc.Wait()).Should(Receive(BeNil()))
		Eventually(buffer).Should(gbytes.Say("stopped"))

		fclock.Increment(10 * time.Minute)
		Consistently(fakeOperator.OperateCallCount).Should(Equal(0))
	})
})
