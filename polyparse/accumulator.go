package polyparse

import "github.com/mpspoly/polyparse/polyrat"

// coeffTable is spec component 6, the sparse-update dense-storage
// coefficient array keyed by degree. A Go slice, grown by make/copy and
// shrunk by reslicing, is the natural realization of "the container representation free" (spec
// §9 design note 3, open question 3) — no manual reallocation tracking
// needed the way the original C implementation required.
type coeffTable struct {
	slots []polyrat.Complex
}

// top returns the current top degree, or -1 when the table is empty.
func (t *coeffTable) top() int { return len(t.slots) - 1 }

// add implements spec §4.6's add_term(k, z): grow to hold degree k if
// needed, add z into slot k, then trim any now-zero top slots.
func (t *coeffTable) add(degree int, z polyrat.Complex) {
	if degree > t.top() {
		grown := make([]polyrat.Complex, degree+1)
		copy(grown, t.slots)
		for i := len(t.slots); i < len(grown); i++ {
			grown[i] = polyrat.ZeroComplex()
		}
		t.slots = grown
	}
	t.slots[degree] = t.slots[degree].Add(z)

	for t.top() >= 0 && t.slots[t.top()].IsZero() {
		t.slots = t.slots[:t.top()]
	}
}
