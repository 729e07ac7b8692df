package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want Bucket
	}{
		{"strongly positive", 2.0, BucketPositive},
		{"just above positive boundary", 0.41, BucketPositive},
		{"positive boundary lands on even", 0.4, BucketEven},
		{"zero", 0, BucketEven},
		{"just above negative boundary", -0.19, BucketEven},
		{"negative boundary lands on negative", -0.2, BucketNegative},
		{"strongly negative", -2.0, BucketNegative},
		{"one third from a mixed batch", 1.0 / 3.0, BucketEven},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.v))
		})
	}
}

func TestClassifyTotalAndMonotonic(t *testing.T) {
	// Every representable average of answers in [-2, 2] must land in
	// a bucket, and walking the range upward must never move from a
	// better bucket to a worse one.
	rank := map[Bucket]int{BucketNegative: 0, BucketEven: 1, BucketPositive: 2}

	prev := BucketNegative
	for v := -2.0; v <= 2.0; v += 0.01 {
		b := Classify(v)
		if assert.Contains(t, rank, b, "Classify(%f) returned unknown bucket %q", v, b) {
			assert.GreaterOrEqual(t, rank[b], rank[prev], "bucket regressed at %f", v)
			prev = b
		}
	}
}
