package restrict_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/restrict"
)

var _ = Describe("Set", Label("set"), func() {
	DescribeTable("BitmapOf()",
		// region
		func(chars string, c byte, want bool) {
			Expect(restrict.BitmapOf(chars).Contains(c)).To(Equal(want))
		},
		EntryDescription(`bitmap of %q should contain %q == %v`),
		// region entries
		Entry(nil, "", byte(0), false),
		Entry(nil, "\x00", byte(0), true),
		Entry(nil, "abc", byte('b'), true),
		Entry(nil, "abc", byte('d'), false),
		Entry(nil, "\xff", byte(0xff), true),
		Entry(nil, "\x80", byte(0x80), true),
		// endregion
		// endregion
	)

	DescribeTable("BitmapRange()",
		// region
		func(lo, hi, c byte, want bool) {
			Expect(restrict.BitmapRange(lo, hi).Contains(c)).To(Equal(want))
		},
		EntryDescription(`range [%d, %d] should contain %d == %v`),
		// region entries
		Entry(nil, byte(0), byte(0x1f), byte(0), true),
		Entry(nil, byte(0), byte(0x1f), byte(0x1f), true),
		Entry(nil, byte(0), byte(0x1f), byte(0x20), false),
		Entry(nil, byte('a'), byte('z'), byte('m'), true),
		Entry(nil, byte(0), byte(0xff), byte(0xff), true),
		// endregion
		// endregion
	)

	It("unions bitmaps", func() {
		b := restrict.BitmapOf("ab").Union(restrict.BitmapOf("cd"))
		for _, c := range []byte("abcd") {
			Expect(b.Contains(c)).To(BeTrue())
		}
		Expect(b.Contains('e')).To(BeFalse())
	})

	Describe("Nul", func() {
		It("contains only NUL", func() {
			var set restrict.Nul
			Expect(set.Contains(0)).To(BeTrue())
			for c := 1; c < 256; c++ {
				Expect(set.Contains(byte(c))).To(BeFalse())
			}
			Expect(set.String()).To(Equal("NUL"))
		})
	})

	Describe("Controls", func() {
		It("contains C0 controls and DEL", func() {
			var set restrict.Controls
			for c := 0; c <= 0x1f; c++ {
				Expect(set.Contains(byte(c))).To(BeTrue())
			}
			Expect(set.Contains(0x7f)).To(BeTrue())
			Expect(set.Contains(' ')).To(BeFalse())
			Expect(set.Contains('A')).To(BeFalse())
			Expect(set.Contains(0x80)).To(BeFalse())
		})

		It("sanitizes display text through Filter", func() {
			s := restrict.Filter[restrict.Controls]("one\ttwo\r\nthree\x7f")
			Expect(s.String()).To(Equal("onetwothree"))
		})
	})
})
