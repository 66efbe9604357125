package kernel

import (
	"github.com/hupe1980/flatvec/internal/buffer"
)

// Kind classifies the mode of a value distribution.
type Kind uint8

const (
	// Nullimodal means no value repeats.
	Nullimodal Kind = iota
	// Unimodal means one value has the highest count.
	Unimodal
	// Bimodal means two values tie at the highest count.
	Bimodal
	// Multimodal means three or more values tie at the highest count.
	Multimodal
)

func (k Kind) String() string {
	switch k {
	case Nullimodal:
		return "nullimodal"
	case Unimodal:
		return "unimodal"
	case Bimodal:
		return "bimodal"
	case Multimodal:
		return "multimodal"
	default:
		return "unknown"
	}
}

// Modality counts every distinct element and returns the values sharing the
// highest count, ordered by their first occurrence in b. The values slice is
// nil for Nullimodal.
//
// +0 and -0 count as the same value. NaN never equals itself, so each NaN
// element counts once.
func Modality(b *buffer.Buffer) (Kind, []float64) {
	n := b.Dimensions()
	slot := make(map[float64]int, n)
	values := make([]float64, 0, n)
	counts := make([]int, 0, n)

	for i := range n {
		v := b.At(i)
		if j, ok := slot[v]; ok {
			counts[j]++
			continue
		}
		slot[v] = len(values)
		values = append(values, v)
		counts = append(counts, 1)
	}

	maxCount := 0
	for _, c := range counts {
		maxCount = max(maxCount, c)
	}
	if maxCount == 1 {
		return Nullimodal, nil
	}

	var modes []float64
	for j, c := range counts {
		if c == maxCount {
			modes = append(modes, values[j])
		}
	}

	switch len(modes) {
	case 1:
		return Unimodal, modes
	case 2:
		return Bimodal, modes
	default:
		return Multimodal, modes
	}
}
