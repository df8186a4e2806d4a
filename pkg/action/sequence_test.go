package action_test

import (
	"github.com/playloop/action/pkg/action"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sequence", func() {
	It("carries leftover time across children within one tick", func() {
		first := action.NewDelay(1)
		second := action.NewDelay(2)
		third := action.NewDelay(3)
		seq := action.NewSequence(first, second, third)

		seq.Start()
		leftover := seq.Update(10)

		Expect(leftover).To(BeNumerically("~", 4, 1e-9))
		Expect(seq.IsFinished()).To(BeTrue())
		Expect(first.IsFinished()).To(BeTrue())
		Expect(second.IsFinished()).To(BeTrue())
		Expect(third.IsFinished()).To(BeTrue())
	})

	It("advances one child at a time across ticks", func() {
		calls := []string{}
		seq := action.NewSequence(
			action.NewDelay(1),
			action.NewCall(func() { calls = append(calls, "a") }),
			action.NewDelay(1),
			action.NewCall(func() { calls = append(calls, "b") }),
		)

		seq.Start()
		seq.Update(0.5)
		Expect(calls).To(BeEmpty())

		// The first delay finishes with 0.5 leftover, which starts and runs
		// the first call and feeds the second delay in the same tick.
		seq.Update(1)
		Expect(calls).To(Equal([]string{"a"}))
		Expect(seq.IsFinished()).To(BeFalse())

		seq.Update(1)
		Expect(calls).To(Equal([]string{"a", "b"}))
		Expect(seq.IsFinished()).To(BeTrue())
	})

	It("is done immediately when empty", func() {
		seq := action.NewSequence()
		seq.Start()
		Expect(seq.Update(1)).To(Equal(1.0))
		Expect(seq.IsFinished()).To(BeTrue())
	})

	It("forwards Pause and Resume to the current child only", func() {
		done := action.NewDelay(0.5)
		current := action.NewDelay(5)
		upcoming := action.NewDelay(5)
		seq := action.NewSequence(done, current, upcoming)

		seq.Start()
		seq.Update(1) // finishes the first child, starts the second

		seq.Pause()
		Expect(current.IsPaused()).To(BeTrue())
		Expect(upcoming.IsInit()).To(BeTrue())

		seq.Resume()
		Expect(current.IsRunning()).To(BeTrue())
		Expect(upcoming.IsInit()).To(BeTrue())
	})

	It("pauses a mid-tick started child on the next update", func() {
		child := action.NewDelay(5)
		seq := action.NewSequence(child)

		seq.Start()
		seq.Pause() // child not started yet, so only the sequence pauses
		Expect(child.IsInit()).To(BeTrue())

		seq.Update(1)
		Expect(child.IsPaused()).To(BeTrue())
		Expect(seq.IsPaused()).To(BeTrue())
	})

	It("cancels the current child on Stop", func() {
		current := action.NewDelay(5)
		seq := action.NewSequence(current)

		seq.Start()
		seq.Update(1)
		seq.Stop()

		Expect(seq.IsCanceled()).To(BeTrue())
		Expect(current.IsCanceled()).To(BeTrue())
	})

	It("makes no progress while paused", func() {
		delay := action.NewDelay(1)
		seq := action.NewSequence(delay)

		seq.Start()
		seq.Update(0.5)
		seq.Pause()
		seq.Update(10)

		Expect(seq.IsFinished()).To(BeFalse())
		Expect(delay.Elapsed()).To(BeNumerically("~", 0.5, 1e-9))
	})
})
