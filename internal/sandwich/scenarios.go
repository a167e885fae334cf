package sandwich

import (
	. "github.com/onsi/gomega"

	"github.com/locktopus-project/sandwich/internal/scenario"
)

const GroupName = "An ideal sandwich"

// Scenarios returns the sandwich scenarios in declaration order.
func Scenarios() []scenario.Scenario {
	return []scenario.Scenario{
		{
			Name: scenario.FullName(GroupName, "is delicious"),
			Run: func(g Gomega) {
				s := Ideal()

				taste := s.Taste

				g.Expect(taste).To(Equal("delicious"))
			},
		},
		{
			Name: scenario.FullName(GroupName, "lets me add toppings"),
			Run: func(g Gomega) {
				s := Ideal()
				s.AddTopping("cheese")

				toppings := s.Toppings

				g.Expect(toppings).NotTo(BeEmpty())
			},
		},
	}
}
