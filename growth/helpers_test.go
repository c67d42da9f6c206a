package growth_test

import "math/rand"

// fixedRand returns the same draw every time.
type fixedRand struct{ u float64 }

func (f fixedRand) Float64() float64 { return f.u }
func (f fixedRand) Intn(int) int     { return 0 }

// recordingRand records every Intn bound it is asked for.
type recordingRand struct {
	*rand.Rand
	intn []int
}

func (r *recordingRand) Intn(n int) int {
	r.intn = append(r.intn, n)
	return r.Rand.Intn(n)
}
