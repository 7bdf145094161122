package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFieldFromAny(t *testing.T) {
	t.Run("single string", func(t *testing.T) {
		f := NameFieldFromAny("Nutella")
		assert.Equal(t, NameSingle, f.Kind())
		assert.Equal(t, []string{"Nutella"}, f.Names())
	})

	t.Run("string slice", func(t *testing.T) {
		f := NameFieldFromAny([]string{"Nutella", "Hazelnut Spread"})
		assert.Equal(t, NameMultiple, f.Kind())
		assert.Equal(t, []string{"Nutella", "Hazelnut Spread"}, f.Names())
	})

	t.Run("any slice with non-strings", func(t *testing.T) {
		f := NameFieldFromAny([]any{"Nutella", 42, "Spread"})
		assert.Equal(t, NameMultiple, f.Kind())
		assert.Equal(t, []string{"Nutella", "Spread"}, f.Names())
	})

	t.Run("nil is absent", func(t *testing.T) {
		f := NameFieldFromAny(nil)
		assert.Equal(t, NameAbsent, f.Kind())
		assert.Empty(t, f.Names())
	})

	t.Run("unexpected type is absent", func(t *testing.T) {
		f := NameFieldFromAny(3.14)
		assert.Equal(t, NameAbsent, f.Kind())
		assert.Empty(t, f.Names())
	})
}

func TestNameFieldNames_Dedup(t *testing.T) {
	// Dedup is by exact string equality, not case-insensitive: "Milk" and
	// "milk" are distinct entries, repeated "Milk" is not.
	f := MultipleNames([]string{"Milk", "milk", "Milk"})
	assert.Equal(t, []string{"Milk", "milk"}, f.Names())
}

func TestNameFieldNames_TrimAndDropEmpty(t *testing.T) {
	f := MultipleNames([]string{"  Chocolate Spread ", "", "   ", "Chocolate Spread"})
	assert.Equal(t, []string{"Chocolate Spread"}, f.Names())
}

func TestNameFieldNames_PreservesFirstSeenOrder(t *testing.T) {
	f := MultipleNames([]string{"B", "A", "B", "C", "A"})
	assert.Equal(t, []string{"B", "A", "C"}, f.Names())
}

func TestComputeGivenName(t *testing.T) {
	t.Run("first name wins", func(t *testing.T) {
		p := &Product{Name: MultipleNames([]string{"Pâte à tartiner", "Chocolate Spread"})}
		assert.Equal(t, "Pâte à tartiner", p.ComputeGivenName())
	})

	t.Run("single name", func(t *testing.T) {
		p := &Product{Name: SingleName("Nutella")}
		assert.Equal(t, "Nutella", p.ComputeGivenName())
	})

	t.Run("absent name yields sentinel", func(t *testing.T) {
		p := &Product{Name: NoName()}
		assert.Equal(t, UnknownName, p.ComputeGivenName())
	})

	t.Run("empty variants yield sentinel", func(t *testing.T) {
		p := &Product{Name: MultipleNames([]string{"", "  "})}
		assert.Equal(t, UnknownName, p.ComputeGivenName())
	})

	t.Run("zero value product never fails", func(t *testing.T) {
		var p Product
		assert.Equal(t, UnknownName, p.ComputeGivenName())
	})
}

func TestIDFromContent_Deterministic(t *testing.T) {
	a := IDFromContent("en:chocolate-spreads")
	b := IDFromContent("en:chocolate-spreads")
	c := IDFromContent("en:sweet-spreads")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestProductClone(t *testing.T) {
	p := &Product{
		ID:         "123",
		Name:       SingleName("Nutella"),
		Categories: []string{"Spreads"},
		TextScore:  9.1,
	}

	cp := p.Clone()
	cp.FuzzyScore = 88
	cp.Categories[0] = "Spreads" // same content, distinct backing array
	cp.Categories = append(cp.Categories, "Sweet Spreads")

	assert.Zero(t, p.FuzzyScore)
	assert.Equal(t, []string{"Spreads"}, p.Categories)
	assert.Equal(t, 9.1, cp.TextScore)
}
