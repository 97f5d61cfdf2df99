package effects

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fractalfx/internal/surface"
)

var _ = Describe("Ripple", func() {
	var rec *surface.Recorder

	BeforeEach(func() {
		rec = surface.NewRecorder(300, 300)
	})

	It("starts at radius 0 and full opacity", func() {
		r := NewRipple(10, 20)
		Expect(r.Radius).To(BeZero())
		Expect(r.Opacity()).To(Equal(1.0))
		Expect(r.Done()).To(BeFalse())
	})

	It("completes after exactly 50 steps", func() {
		r := NewRipple(10, 20)
		steps := 0
		for r.Step(rec) {
			steps++
			Expect(steps).To(BeNumerically("<", 100), "ripple never finished")
		}
		steps++

		Expect(steps).To(Equal(50))
		Expect(r.Done()).To(BeTrue())
		Expect(r.Opacity()).To(BeNumerically("<=", 0))
		Expect(rec.Count(surface.OpCircle)).To(Equal(50))
	})

	It("grows and fades by fixed steps", func() {
		r := NewRipple(0, 0)
		r.Step(rec)
		r.Step(rec)
		r.Step(rec)

		circles := rec.Filter(surface.OpCircle)
		Expect(circles).To(HaveLen(3))
		for i, c := range circles {
			Expect(c.R).To(Equal(float64(i) * RippleGrowth))
			Expect(c.Stroke.Width).To(Equal(RippleWidth))
			Expect(c.Stroke.Color.A).To(BeNumerically("~", 1-0.02*float64(i), 1e-9))
		}
	})

	It("draws nothing once finished", func() {
		r := NewRipple(5, 5)
		for r.Step(rec) {
		}
		drawn := len(rec.Ops)

		Expect(r.Step(rec)).To(BeFalse())
		Expect(rec.Ops).To(HaveLen(drawn))
	})
})

var _ = Describe("Ripples", func() {
	It("discards finished ripples", func() {
		rec := surface.NewRecorder(100, 100)
		rs := NewRipples(0)
		Expect(rs.Spawn(1, 1)).To(BeTrue())

		for i := 0; i < 25; i++ {
			rs.Step(rec)
		}
		Expect(rs.Spawn(2, 2)).To(BeTrue())
		Expect(rs.Len()).To(Equal(2))

		for i := 0; i < 25; i++ {
			rs.Step(rec)
		}
		Expect(rs.Len()).To(Equal(1))

		for i := 0; i < 25; i++ {
			rs.Step(rec)
		}
		Expect(rs.Len()).To(BeZero())
		Expect(rec.Count(surface.OpCircle)).To(Equal(100))
	})

	It("drops spawns beyond the cap", func() {
		rs := NewRipples(2)
		Expect(rs.Spawn(0, 0)).To(BeTrue())
		Expect(rs.Spawn(0, 0)).To(BeTrue())
		Expect(rs.Spawn(0, 0)).To(BeFalse())
		Expect(rs.Len()).To(Equal(2))

		rs.Reset()
		Expect(rs.Len()).To(BeZero())
	})

	It("releases ripples on reset", func() {
		rs := NewRipples(0)
		rs.Spawn(1, 1)
		rs.Spawn(2, 2)
		backing := rs.live[:2]

		rs.Reset()
		Expect(rs.Len()).To(BeZero())
		Expect(backing).To(HaveEach(BeNil()))
	})
})
