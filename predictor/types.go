package predictor

import (
	"github.com/katalvlaran/lfsrcrack/bm"
)

// Model is the recovered linear structure of a generator, one recurrence
// per cracked bit position.
//
// Fields (parallel slices, indexed like Positions):
//   - Positions   — bit positions that were cracked.
//   - Samples     — number of samples the recurrences were recovered from.
//   - Recurrences — shortest recurrence of each position's bit stream.
//   - Tails       — last Recurrences[i].Degree observed bits of position i,
//     oldest first; the seed for prediction.
type Model struct {
	Positions   []int
	Samples     int
	Recurrences []bm.Recurrence
	Tails       [][]uint8

	cfg config
}

// MaxDegree returns the largest recovered degree.
func (m *Model) MaxDegree() int {
	maxL := 0
	for _, r := range m.Recurrences {
		if r.Degree > maxL {
			maxL = r.Degree
		}
	}

	return maxL
}

// Suspect returns the positions whose recovered degree exceeds half the
// sample count. For those the data cannot distinguish the generator's
// recurrence from one that merely memorizes the observed bits, so their
// predictions should not be trusted.
func (m *Model) Suspect() []int {
	var out []int
	for i, r := range m.Recurrences {
		if 2*r.Degree > m.Samples {
			out = append(out, m.Positions[i])
		}
	}

	return out
}
