package restrict_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/restrict"
)

var _ = Describe("Path", Label("path"), func() {
	It("accepts a clean path", func() {
		p, err := restrict.NewPath("/usr/bin")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Len()).To(Equal(8))
		Expect(p.String()).To(Equal("/usr/bin"))
	})

	It("rejects an embedded NUL with its position", func() {
		_, err := restrict.NewPath("/usr\x00bin")
		Expect(err).To(MatchError(restrict.ErrForbiddenByte))

		var cerr *restrict.ContentError
		Expect(errors.As(err, &cerr)).To(BeTrue())
		Expect(cerr.Byte).To(Equal(byte(0)))
		Expect(cerr.Pos).To(Equal(4))
		Expect(cerr.Set).To(Equal("NUL"))
	})

	It("filters NUL bytes", func() {
		p := restrict.FilterPath("ab\x00c\x00d")
		Expect(p.String()).To(Equal("abcd"))
	})

	It("keeps prior content on a rejected append", func() {
		p, err := restrict.NewPath("abc")
		Expect(err).NotTo(HaveOccurred())

		Expect(p.AppendByte(0)).To(MatchError(restrict.ErrForbiddenByte))
		Expect(p.Len()).To(Equal(3))
		Expect(p.String()).To(Equal("abc"))
	})

	It("interoperates with the generic NUL-excluding form", func() {
		p, err := restrict.NewPath("/tmp")
		Expect(err).NotTo(HaveOccurred())
		s, err := restrict.New[restrict.Nul]("/file")
		Expect(err).NotTo(HaveOccurred())

		p.Append(s)
		Expect(p.String()).To(Equal("/tmp/file"))
	})

	It("accepts []byte input", func() {
		p, err := restrict.NewPath([]byte("/usr/bin"))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Equal("/usr/bin")).To(BeTrue())
	})
})
