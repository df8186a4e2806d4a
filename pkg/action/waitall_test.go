package action_test

import (
	"github.com/playloop/action/pkg/action"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WaitAll", func() {
	It("waits for the slowest child", func() {
		fast := action.NewDelay(5)
		medium := action.NewDelay(10)
		slow := action.NewDelay(15)
		group := action.NewWaitAll(fast, medium, slow)

		group.Start()

		group.Update(5) // accumulated 5: only the fast child is done
		Expect(fast.IsFinished()).To(BeTrue())
		Expect(group.IsRunning()).To(BeTrue())

		group.Update(5) // accumulated 10
		Expect(medium.IsFinished()).To(BeTrue())
		Expect(group.IsRunning()).To(BeTrue())

		group.Update(5) // accumulated 15
		Expect(slow.IsFinished()).To(BeTrue())
		Expect(group.IsFinished()).To(BeTrue())
	})

	It("is done immediately when empty", func() {
		group := action.NewWaitAll()
		group.Start()
		group.Update(1)
		Expect(group.IsFinished()).To(BeTrue())
	})

	It("reports zero leftover even when every child finished early", func() {
		group := action.NewWaitAll(action.NewDelay(1))

		group.Start()
		// The lone child leaves 4 behind, but the group's aggregate never
		// rises above zero.
		Expect(group.Update(5)).To(BeZero())
		Expect(group.IsFinished()).To(BeTrue())
	})

	It("does not cancel slower children when one finishes", func() {
		fast := action.NewDelay(1)
		slow := action.NewDelay(10)
		group := action.NewWaitAll(fast, slow)

		group.Start()
		group.Update(2)

		Expect(fast.IsFinished()).To(BeTrue())
		Expect(slow.IsRunning()).To(BeTrue())
	})

	It("forwards Pause, Resume and Stop to every child", func() {
		first := action.NewDelay(5)
		second := action.NewDelay(5)
		group := action.NewWaitAll(first, second)

		group.Start()
		group.Update(1)

		group.Pause()
		Expect(first.IsPaused()).To(BeTrue())
		Expect(second.IsPaused()).To(BeTrue())

		group.Resume()
		Expect(first.IsRunning()).To(BeTrue())
		Expect(second.IsRunning()).To(BeTrue())

		group.Stop()
		Expect(first.IsCanceled()).To(BeTrue())
		Expect(second.IsCanceled()).To(BeTrue())
		Expect(group.IsCanceled()).To(BeTrue())
	})
})
