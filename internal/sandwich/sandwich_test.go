package sandwich

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestSandwich_IsDelicious(t *testing.T) {
	g := NewWithT(t)

	sandwich := Ideal()

	taste := sandwich.Taste

	g.Expect(taste).To(Equal("delicious"))
}

func TestSandwich_LetsMeAddToppings(t *testing.T) {
	g := NewWithT(t)

	sandwich := Ideal()
	sandwich.AddTopping("cheese")

	toppings := sandwich.Toppings

	g.Expect(toppings).NotTo(BeEmpty())
	g.Expect(toppings).To(Equal([]string{"cheese"}))
}

func TestNew(t *testing.T) {
	g := NewWithT(t)

	for _, taste := range []string{"delicious", "bland", ""} {
		s := New(taste, []string{})

		g.Expect(s.Taste).To(Equal(taste))
		g.Expect(s.Toppings).To(BeEmpty())
	}
}

func TestAddTopping(t *testing.T) {
	t.Run("single topping", func(t *testing.T) {
		g := NewWithT(t)

		s := New("delicious", []string{})
		s.AddTopping("pickles")

		g.Expect(s.Toppings).To(HaveLen(1))
		g.Expect(s.Toppings[0]).To(Equal("pickles"))
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		g := NewWithT(t)

		s := New("delicious", []string{})
		s.AddTopping("cheese")
		s.AddTopping("ham")
		s.AddTopping("tomato", "lettuce")

		g.Expect(s.Toppings).To(Equal([]string{"cheese", "ham", "tomato", "lettuce"}))
	})

	t.Run("nil toppings", func(t *testing.T) {
		g := NewWithT(t)

		s := New("delicious", nil)
		s.AddTopping("cheese")

		g.Expect(s.Toppings).To(Equal([]string{"cheese"}))
	})
}

func TestIdeal_ReturnsFreshInstance(t *testing.T) {
	g := NewWithT(t)

	first := Ideal()
	second := Ideal()

	first.AddTopping("cheese")
	first.Taste = "soggy"

	g.Expect(second.Taste).To(Equal("delicious"))
	g.Expect(second.Toppings).To(BeEmpty())
}
