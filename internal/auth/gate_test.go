package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("PermissionSet", func() {
	ginkgo.Describe("NewPermissionSet", func() {
		ginkgo.It("should lower-case, trim and de-duplicate codes", func() {
			set := NewPermissionSet([]string{" Dashboard ", "dashboard", "ACCESS", ""})

			gomega.Expect([]string(set)).To(gomega.ConsistOf("dashboard", "access"))
		})

		ginkgo.It("should produce an empty set from nil", func() {
			gomega.Expect(NewPermissionSet(nil)).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("Can", func() {
		var set PermissionSet

		ginkgo.BeforeEach(func() {
			set = NewPermissionSet([]string{"dashboard", "order_management"})
		})

		ginkgo.It("should match case-insensitively", func() {
			gomega.Expect(set.Can("dashboard")).To(gomega.BeTrue())
			gomega.Expect(set.Can("Order_Management")).To(gomega.BeTrue())
		})

		ginkgo.It("should deny codes outside the set", func() {
			gomega.Expect(set.Can("access")).To(gomega.BeFalse())
		})

		ginkgo.It("should allow an empty requirement", func() {
			gomega.Expect(set.Can("")).To(gomega.BeTrue())
			gomega.Expect(NewPermissionSet(nil).Can("")).To(gomega.BeTrue())
		})

		ginkgo.It("should deny everything on an empty set", func() {
			gomega.Expect(NewPermissionSet(nil).Can("dashboard")).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("CanAny", func() {
		ginkgo.It("should pass when at least one code is held", func() {
			set := NewPermissionSet([]string{"help"})

			gomega.Expect(set.CanAny("dashboard", "help")).To(gomega.BeTrue())
			gomega.Expect(set.CanAny("dashboard", "access")).To(gomega.BeFalse())
		})
	})
})
