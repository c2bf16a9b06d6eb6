// Package extract produces candidate subsequences from a source series,
// the raw material of shapelet selection and barycenter averaging.
//
// ✨ Three extraction strategies:
//   - Random   — qty subsequences of uniformly random length within
//     [MinDist, MaxDist] at uniformly random admissible offsets;
//     overlaps allowed, fully deterministic under a seed
//   - Windowed — fixed-length sliding window with a fixed step;
//     deterministic and exhaustive within bounds
//   - PeakBounded — subsequences between consecutive prominent peaks,
//     where “prominent” means above the series quantile at Thres and
//     separated by at least MinDist samples
//
// Every Candidate is a materialized copy tagged with its origin (start
// offset and length); extraction never aliases or mutates the source.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/shapelet/extract"
//
//	cands, err := extract.Windowed(series, 80, 1)
//	cands, err = extract.Random(series, 100, extract.DefaultOptions())
//	cands, err = extract.PeakBounded(series, extract.DefaultOptions())
//
// Determinism: Random uses an explicitly seeded math/rand source; seed 0
// maps to a fixed default seed, so the zero value is reproducible too.
package extract
