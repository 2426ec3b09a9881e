package dynarray_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/quicksort"
)

var _ = Describe("Array", func() {
	var a *dynarray.Array[int]

	BeforeEach(func() {
		var err error
		a, err = dynarray.New[int](5)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a negative capacity", func() {
		b, err := dynarray.New[int](-5)
		Expect(err).To(MatchError(dynarray.ErrInvalidCapacity))
		Expect(b).To(BeNil())
	})

	It("walks the demo scenario", func() {
		for _, v := range []int{10, 20, 30, 40, 50} {
			Expect(a.Append(v)).To(Succeed())
		}
		Expect(a.String()).To(Equal("[10, 20, 30, 40, 50]"))

		Expect(a.Insert(2, 25)).To(Succeed())
		Expect(a.String()).To(Equal("[10, 20, 25, 30, 40, 50]"))
		Expect(a.Cap()).To(Equal(10))

		removed, err := a.Remove(3)
		Expect(err).NotTo(HaveOccurred())
		Expect(removed).To(Equal(30))
		Expect(a.String()).To(Equal("[10, 20, 25, 40, 50]"))

		Expect(a.Set(1, 15)).To(Succeed())
		Expect(a.String()).To(Equal("[10, 15, 25, 40, 50]"))

		quicksort.Sort[int](a, quicksort.Ascending[int])
		Expect(a.String()).To(Equal("[10, 15, 25, 40, 50]"))

		a.Clear()
		Expect(a.Len()).To(BeZero())
		Expect(a.String()).To(Equal("[]"))
	})

	Context("when the index is out of range", func() {
		BeforeEach(func() {
			Expect(a.Append(1)).To(Succeed())
			Expect(a.Append(2)).To(Succeed())
		})

		DescribeTable("fails without mutating",
			func(op func() error) {
				Expect(op()).To(MatchError(dynarray.ErrIndexOutOfRange))
				Expect(a.Values()).To(Equal([]int{1, 2}))
			},
			Entry("get", func() error { _, err := a.Get(2); return err }),
			Entry("set", func() error { return a.Set(-1, 9) }),
			Entry("insert", func() error { return a.Insert(3, 9) }),
			Entry("remove", func() error { _, err := a.Remove(2); return err }),
		)
	})

	Context("when growing past the initial capacity", func() {
		It("keeps every element in order", func() {
			want := make([]int, 0, 64)
			for i := 0; i < 64; i++ {
				Expect(a.Append(i)).To(Succeed())
				want = append(want, i)
			}
			Expect(a.Values()).To(Equal(want))
			Expect(a.Cap()).To(BeNumerically(">=", 64))
		})

		It("grows a zero-capacity array", func() {
			z, err := dynarray.New[int](0)
			Expect(err).NotTo(HaveOccurred())
			Expect(z.Grow()).To(Succeed())
			Expect(z.Cap()).To(Equal(1))
			Expect(z.Grow()).To(Succeed())
			Expect(z.Cap()).To(Equal(2))
		})
	})

	Context("sorting", func() {
		It("is a no-op on empty and single-element arrays", func() {
			quicksort.Sort[int](a, quicksort.Ascending[int])
			Expect(a.String()).To(Equal("[]"))

			Expect(a.Append(7)).To(Succeed())
			quicksort.Sort[int](a, quicksort.Ascending[int])
			Expect(a.String()).To(Equal("[7]"))
		})

		It("is idempotent", func() {
			for _, v := range []int{5, 3, 9, 1, 3, 7} {
				Expect(a.Append(v)).To(Succeed())
			}
			quicksort.Sort[int](a, quicksort.Ascending[int])
			once := a.Values()
			quicksort.Sort[int](a, quicksort.Ascending[int])
			Expect(a.Values()).To(Equal(once))
			Expect(once).To(Equal([]int{1, 3, 3, 5, 7, 9}))
		})
	})
})
