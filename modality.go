package flatvec

import (
	"fmt"

	"github.com/hupe1980/flatvec/internal/kernel"
)

// ModalityKind classifies how many values share the highest occurrence count.
type ModalityKind = kernel.Kind

const (
	// Nullimodal means no value occurs more than once.
	Nullimodal = kernel.Nullimodal
	// Unimodal means exactly one value has the highest count.
	Unimodal = kernel.Unimodal
	// Bimodal means two values tie at the highest count.
	Bimodal = kernel.Bimodal
	// Multimodal means three or more values tie at the highest count.
	Multimodal = kernel.Multimodal
)

// Modality is the result of Vector.Modality. Values holds the modes in order
// of first occurrence and is empty for Nullimodal.
type Modality struct {
	Kind   ModalityKind
	Values []float64
}

func (m Modality) String() string {
	if m.Kind == Nullimodal {
		return m.Kind.String()
	}
	return fmt.Sprintf("%s%v", m.Kind, m.Values)
}
