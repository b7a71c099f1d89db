// File: reporter.go
// Role: Reporter, the accumulator behind spec.md §6's `-v` flag.
//
// Adapted from matrix/impl_statistics.go's two-pass accumulate-then-
// finalize shape: centerColumns accumulates a sum and finalizes a mean,
// Covariance takes a second pass over squared deviations with a (r-1)
// sample denominator. degreeMoments below does the scalar equivalent
// for the cross-graph degree sample. Every emitted graph also folds into
// a degree histogram, a face-size histogram, an automorphism-group-size
// bucket, and (when enabled) a diameter bucket, the same running-map
// idiom impl_statistics.go's callers use for categorical summaries.

package stats

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/planargen/canon"
	"github.com/katalvlaran/planargen/core"
)

// Reporter accumulates cross-graph statistics over a generation run. The
// zero value is not usable; construct with NewReporter.
type Reporter struct {
	withDiameter bool

	graphs int64

	degree    map[int]int64
	faceSize  map[int]int64
	groupSize map[int]int64
	diam      map[int]int64

	// degreeCount/degreeSum/degreeSumSq accumulate the full cross-graph
	// degree sample, mirroring impl_statistics.go's centerColumns/
	// covariance two-pass shape (accumulate a sum, finalize a mean, then
	// accumulate a sum of squared deviations with the sample (n-1)
	// denominator) but over one flat int64 sample instead of a matrix
	// column, since Reporter has no use for impl_statistics.go's general
	// r x c shape.
	degreeCount int64
	degreeSum   int64
	degreeSumSq float64
}

// NewReporter constructs an empty Reporter. withDiameter enables the
// O(n^3) Floyd-Warshall pass per recorded graph; callers pass false for
// large orders where the diameter statistic is not worth the cost.
func NewReporter(withDiameter bool) *Reporter {
	return &Reporter{
		withDiameter: withDiameter,
		degree:       make(map[int]int64),
		faceSize:     make(map[int]int64),
		groupSize:    make(map[int]int64),
		diam:         make(map[int]int64),
	}
}

// Record folds one emitted graph's statistics into the running totals.
// Never returns an error to the caller for anything but a diameter
// failure on a malformed graph - scanner treats any such error as a log
// line, never an abort (spec.md §7).
func (r *Reporter) Record(p *core.Pool, aut canon.Automorphisms) error {
	r.graphs++

	n := int(p.Order())
	for v := 0; v < n; v++ {
		d := p.Degree(core.VertexID(v))
		r.degree[d]++
		r.degreeCount++
		r.degreeSum += int64(d)
		r.degreeSumSq += float64(d) * float64(d)
	}
	for _, f := range p.Faces() {
		r.faceSize[f.Size]++
	}
	r.groupSize[aut.Size()]++

	if r.withDiameter {
		d, err := diameter(p)
		if err != nil {
			return statsErrorf("Record", "computing diameter", err)
		}
		r.diam[d]++
	}
	return nil
}

// WriteTo formats the accumulated statistics as a plain-text summary,
// satisfying io.WriterTo.
//
// Complexity: O(distinct bucket count * log(distinct bucket count)) for
// the sort, negligible next to generation itself.
func (r *Reporter) WriteTo(w io.Writer) (int64, error) {
	var total int64

	n, err := fmt.Fprintf(w, "graphs emitted: %d\n", r.graphs)
	total += int64(n)
	if err != nil {
		return total, err
	}

	mean, variance := r.degreeMoments()
	n, err = fmt.Fprintf(w, "degree mean: %.4f  variance: %.4f\n", mean, variance)
	total += int64(n)
	if err != nil {
		return total, err
	}

	for _, section := range []struct {
		title string
		hist  map[int]int64
	}{
		{"degree histogram", r.degree},
		{"face-size histogram", r.faceSize},
		{"automorphism group size", r.groupSize},
		{"diameter", r.diam},
	} {
		if section.title == "diameter" && !r.withDiameter {
			continue
		}
		n, err = fmt.Fprintf(w, "%s:\n", section.title)
		total += int64(n)
		if err != nil {
			return total, err
		}
		for _, k := range sortedKeys(section.hist) {
			n, err = fmt.Fprintf(w, "  %d: %d\n", k, section.hist[k])
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// degreeMoments returns the sample mean and variance of the degree
// sequence accumulated so far, the same centerColumns-then-Covariance
// composition impl_statistics.go uses: a mean pass followed by a
// second-moment pass divided by (n-1) rather than n. Returns (0, 0) when
// fewer than two degrees have been recorded, matching Covariance's own
// r>=2 requirement.
func (r *Reporter) degreeMoments() (mean, variance float64) {
	if r.degreeCount == 0 {
		return 0, 0
	}
	mean = float64(r.degreeSum) / float64(r.degreeCount)
	if r.degreeCount < 2 {
		return mean, 0
	}
	variance = (r.degreeSumSq - float64(r.degreeCount)*mean*mean) / float64(r.degreeCount-1)
	if variance < 0 {
		variance = 0 // guards against float round-off on near-constant sequences
	}
	return mean, variance
}

func sortedKeys(m map[int]int64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
