package scoring

import "github.com/sossut/adp2/internal/scoring/bucket"

// Bucket and its values live in the leaf package bucket so model can
// share them without an import cycle; they are re-exported here
// unchanged.
type Bucket = bucket.Bucket

const (
	BucketPositive = bucket.BucketPositive
	BucketEven     = bucket.BucketEven
	BucketNegative = bucket.BucketNegative
)

// Classification boundaries. Strictly above PositiveAbove is positive,
// at or below NegativeAtOrBelow is negative, the rest is even. The
// boundary values themselves land on the lower bucket: 0.4 is even,
// -0.2 is negative.
const (
	PositiveAbove     = bucket.PositiveAbove
	NegativeAtOrBelow = bucket.NegativeAtOrBelow
)

// Classify maps an answer average to its bucket. Total over all finite
// inputs and monotonic in v.
func Classify(v float64) Bucket {
	return bucket.Classify(v)
}
