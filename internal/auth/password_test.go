package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = ginkgo.Describe("Password verification", func() {
	ginkgo.Describe("IsHashed", func() {
		ginkgo.It("should recognize bcrypt variant prefixes", func() {
			gomega.Expect(IsHashed("$2a$10$abcdefghij")).To(gomega.BeTrue())
			gomega.Expect(IsHashed("$2b$12$abcdefghij")).To(gomega.BeTrue())
			gomega.Expect(IsHashed("$2y$10$abcdefghij")).To(gomega.BeTrue())
		})

		ginkgo.It("should treat anything else as plaintext", func() {
			gomega.Expect(IsHashed("password123")).To(gomega.BeFalse())
			gomega.Expect(IsHashed("$1$md5crypt")).To(gomega.BeFalse())
			gomega.Expect(IsHashed("")).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("VerifyPassword", func() {
		ginkgo.Context("against a bcrypt hash", func() {
			var hash string

			ginkgo.BeforeEach(func() {
				h, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				hash = string(h)
			})

			ginkgo.It("should accept the matching password", func() {
				gomega.Expect(VerifyPassword(hash, "hunter2")).To(gomega.Succeed())
			})

			ginkgo.It("should reject a wrong password", func() {
				gomega.Expect(VerifyPassword(hash, "hunter3")).ToNot(gomega.Succeed())
			})
		})

		ginkgo.Context("against a legacy plaintext value", func() {
			ginkgo.It("should accept only an exact match", func() {
				gomega.Expect(VerifyPassword("hunter2", "hunter2")).To(gomega.Succeed())
				gomega.Expect(VerifyPassword("hunter2", "Hunter2")).ToNot(gomega.Succeed())
				gomega.Expect(VerifyPassword("hunter2", "hunter2 ")).ToNot(gomega.Succeed())
			})

			ginkgo.It("should never interpret the candidate as a hash", func() {
				// The stored value decides the strategy, not the input.
				gomega.Expect(VerifyPassword("hunter2", "$2a$10$something")).ToNot(gomega.Succeed())
			})
		})
	})

	ginkgo.Describe("HashPassword", func() {
		ginkgo.It("should produce a hash that verifies against the source password", func() {
			hash, err := HashPassword("newpassword", bcrypt.MinCost)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(IsHashed(hash)).To(gomega.BeTrue())
			gomega.Expect(VerifyPassword(hash, "newpassword")).To(gomega.Succeed())
		})
	})
})
