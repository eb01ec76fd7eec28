package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelBoundaries(t *testing.T) {
	cases := []struct {
		xp      int
		level   int
		inLevel int
		toNext  int
	}{
		{0, 1, 0, 100},
		{1, 1, 1, 99},
		{99, 1, 99, 1},
		{100, 2, 0, 100},
		{150, 2, 50, 50},
		{450, 5, 50, 50},
		{600, 7, 0, 100},
		{999, 10, 99, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, Level(tc.xp), "level(%d)", tc.xp)
		assert.Equal(t, tc.inLevel, ExperienceInLevel(tc.xp), "inLevel(%d)", tc.xp)
		assert.Equal(t, tc.toNext, ExperienceToNext(tc.xp), "toNext(%d)", tc.xp)
		assert.Equal(t, tc.inLevel, Progress(tc.xp), "progress(%d)", tc.xp)
	}
}

func TestLevelProperties(t *testing.T) {
	for e := 0; e <= 1000; e += 7 {
		assert.GreaterOrEqual(t, Level(e), 1)
		for k := 0; k <= 3; k++ {
			assert.Equal(t, Level(e)+k, Level(e+LevelSpan*k))
		}
		assert.Equal(t, LevelSpan, ExperienceInLevel(e)+ExperienceToNext(e))
	}
}

func TestLevelNegativeClamped(t *testing.T) {
	assert.Equal(t, 1, Level(-5))
	assert.Equal(t, 0, ExperienceInLevel(-5))
	assert.Equal(t, 100, ExperienceToNext(-5))
}

func TestSubmissionLevelTransitions(t *testing.T) {
	// first submission from zero: 0 + 150 -> level 2
	assert.Equal(t, 2, Level(0+ExperiencePerAssessment))
	// 450 + 150 -> 600 -> level 7
	assert.Equal(t, 7, Level(450+ExperiencePerAssessment))
}
