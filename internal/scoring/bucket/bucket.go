// Package bucket holds the qualitative bucket type and classification
// thresholds. It lives in its own leaf package so both model and
// scoring can use it without an import cycle; package scoring
// re-exports every name via aliases.
package bucket

// Bucket is the qualitative classification of a numeric average.
type Bucket string

const (
	BucketPositive Bucket = "positive"
	BucketEven     Bucket = "even"
	BucketNegative Bucket = "negative"
)

// Classification boundaries. Strictly above PositiveAbove is positive,
// at or below NegativeAtOrBelow is negative, the rest is even. The
// boundary values themselves land on the lower bucket: 0.4 is even,
// -0.2 is negative.
const (
	PositiveAbove     = 0.4
	NegativeAtOrBelow = -0.2
)

// Classify maps an answer average to its bucket. Total over all finite
// inputs and monotonic in v.
func Classify(v float64) Bucket {
	switch {
	case v > PositiveAbove:
		return BucketPositive
	case v > NegativeAtOrBelow:
		return BucketEven
	default:
		return BucketNegative
	}
}
