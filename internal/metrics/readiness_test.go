package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadinessBand(t *testing.T) {
	tests := []struct {
		score int
		want  Band
	}{
		{score: 100, want: BandStrong},
		{score: 80, want: BandStrong},
		{score: 79, want: BandModerate},
		{score: 68, want: BandModerate},
		{score: 60, want: BandModerate},
		{score: 59, want: BandDeveloping},
		{score: 40, want: BandDeveloping},
		{score: 39, want: BandEarlyStage},
		{score: 0, want: BandEarlyStage},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ReadinessBand(tt.score), "score %d", tt.score)
	}
}
