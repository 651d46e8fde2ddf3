// internal/defs/elements_test.go
package defs

import "testing"

func TestElementalDamageTablePairs(t *testing.T) {
	tests := []struct {
		name     string
		base     int
		attacker ElementType
		defender ElementType
		want     int
	}{
		{"fire strong vs nature", 100, ElementFire, ElementNature, 150},
		{"fire weak vs water", 100, ElementFire, ElementWater, 50},
		{"light double vs darkness", 100, ElementLight, ElementDarkness, 200},
		{"darkness double vs light", 100, ElementDarkness, ElementLight, 200},
		{"unlisted pair defaults to 1.0", 40, ElementLight, ElementFire, 40},
		{"water strong vs fire", 80, ElementWater, ElementFire, 120},
		{"floor applied", 33, ElementFire, ElementWater, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ElementalDamage(tt.base, tt.attacker, tt.defender)
			if got != tt.want {
				t.Errorf("ElementalDamage(%d, %s, %s) = %d, want %d",
					tt.base, tt.attacker, tt.defender, got, tt.want)
			}
		})
	}
}

func TestElementalDamageAbsentElement(t *testing.T) {
	if got := ElementalDamage(77, ElementNone, ElementFire); got != 77 {
		t.Errorf("Expected base damage 77 with no attacker element, got %d", got)
	}
	if got := ElementalDamage(77, ElementFire, ElementNone); got != 77 {
		t.Errorf("Expected base damage 77 with no defender element, got %d", got)
	}
	if got := ElementalDamage(77, ElementNone, ElementNone); got != 77 {
		t.Errorf("Expected base damage 77 with no elements at all, got %d", got)
	}
}

func TestElementalDamageIsPure(t *testing.T) {
	first := ElementalDamage(100, ElementFire, ElementNature)
	for i := 0; i < 10; i++ {
		if got := ElementalDamage(100, ElementFire, ElementNature); got != first {
			t.Fatalf("Repeated call %d returned %d, want %d", i, got, first)
		}
	}
}

func TestEveryElementHasDefinition(t *testing.T) {
	for _, el := range AllElements {
		def, ok := ElementLibrary[el]
		if !ok {
			t.Errorf("Element %s has no definition", el)
			continue
		}
		if def.Effect == "" {
			t.Errorf("Element %s has no status effect", el)
		}
	}
}
