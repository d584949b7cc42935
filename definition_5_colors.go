package gantt

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultSeed keeps repeated runs over the same jobs visually identical.
const DefaultSeed int64 = 19680801

const _SeedStream = 0x9e3779b97f4a7c15

// ColorSource is a seeded generator owned by a single visualization run.
// Two sources built from the same seed yield the same color sequence.
type ColorSource struct {
	rng  *rand.Rand
	seed int64
}

func NewColorSource(seed int64) *ColorSource {
	return &ColorSource{
		rng:  rand.New(rand.NewPCG(uint64(seed), _SeedStream)),
		seed: seed,
	}
}

func (source *ColorSource) Seed() int64 {
	return source.seed
}

// Next draws one RGB triple in [0,1)^3, channels drawn in R, G, B order.
func (source *ColorSource) Next() colorful.Color {
	return colorful.Color{
		R: source.rng.Float64(),
		G: source.rng.Float64(),
		B: source.rng.Float64(),
	}
}

func (source *ColorSource) Draw(count int) []colorful.Color {
	result := make([]colorful.Color, count)

	for ix := range result {
		result[ix] = source.Next()
	}

	return result
}

// Palette maps job identity to its fill color.
type Palette struct {
	colors map[int]colorful.Color
}

// AssignColors draws one color per job in list order. A repeated job ID
// still consumes a draw, the first occurrence keeps its color.
func AssignColors(source *ColorSource, jobs []JobAllocation) *Palette {
	drawn := source.Draw(len(jobs))

	colors := make(map[int]colorful.Color, len(jobs))

	for ix, job := range jobs {
		if _, exists := colors[job.JobID]; exists {
			continue
		}

		colors[job.JobID] = drawn[ix]
	}

	return &Palette{
		colors: colors,
	}
}

func (p *Palette) ColorOf(jobID int) (colorful.Color, bool) {
	color, exists := p.colors[jobID]

	return color, exists
}

func (p *Palette) Len() int {
	return len(p.colors)
}
