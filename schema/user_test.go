package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyRating(t *testing.T) {
	u := User{}

	u.ApplyRating(4)
	assert.Equal(t, float64(4), u.Rating)
	assert.Equal(t, int64(1), u.TotalRatings)

	u.ApplyRating(2)
	assert.Equal(t, float64(3), u.Rating)
	assert.Equal(t, int64(2), u.TotalRatings)
}

func TestApplyRatingRepeatedScore(t *testing.T) {
	u := User{}
	for i := 0; i < 10; i++ {
		u.ApplyRating(5)
	}
	assert.Equal(t, float64(5), u.Rating)
	assert.Equal(t, int64(10), u.TotalRatings)
}

func TestApplyRatingKeepsMean(t *testing.T) {
	u := User{}
	scores := []int{1, 5, 3, 4, 4, 2, 5}

	sum := 0
	for _, s := range scores {
		u.ApplyRating(s)
		sum += s
	}

	assert.Equal(t, int64(len(scores)), u.TotalRatings)
	assert.InDelta(t, float64(sum)/float64(len(scores)), u.Rating, 1e-9)
}
