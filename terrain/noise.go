package terrain

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseOptions shapes a noise heightfield.
type NoiseOptions struct {
	Resolution  int     // samples per axis
	Amplitude   float64 // height of a full-scale noise value
	Frequency   float64 // base frequency in cycles per world unit
	Persistence float64 // amplitude falloff per octave
	Octaves     int
}

// DefaultNoiseOptions returns gentle rolling hills.
func DefaultNoiseOptions() NoiseOptions {
	return NoiseOptions{
		Resolution:  65,
		Amplitude:   8,
		Frequency:   0.01,
		Persistence: 0.5,
		Octaves:     4,
	}
}

// NewNoise builds a heightfield from octave OpenSimplex noise. The same seed
// and options always give the same terrain.
func NewNoise(width, depth float64, seed int64, opts NoiseOptions) (*Heightfield, error) {
	res := opts.Resolution
	if res < 2 {
		res = 2
	}
	if opts.Octaves < 1 {
		opts.Octaves = 1
	}
	noise := opensimplex.NewNormalized(seed)
	heights := make([]float64, res*res)
	for z := 0; z < res; z++ {
		wz := depth * float64(z) / float64(res-1)
		for x := 0; x < res; x++ {
			wx := width * float64(x) / float64(res-1)
			heights[z*res+x] = opts.Amplitude * octaveNoise(noise, wx, wz, opts.Octaves, opts.Frequency, opts.Persistence)
		}
	}
	return NewHeightfield(width, depth, res, heights)
}

// octaveNoise layers several frequencies of noise, normalised back to [0, 1).
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
