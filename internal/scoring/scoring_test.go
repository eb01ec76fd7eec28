package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultBank(), DefaultCareerTable())
	require.NoError(t, err)
	return e
}

func responsesFor(categories ...Category) []Response {
	rs := make([]Response, len(categories))
	for i, c := range categories {
		rs[i] = Response{QuestionID: i + 1, Answer: "option", Category: c}
	}
	return rs
}

func TestScoreMajority(t *testing.T) {
	e := newTestEngine(t)

	profile, xp, err := e.Score(responsesFor(Practical, Analytical, Practical))
	require.NoError(t, err)
	assert.Equal(t, Practical, profile.DominantType)
	assert.Equal(t, ExperiencePerAssessment, xp)
}

func TestScoreTieBreakFirstSeen(t *testing.T) {
	bank := Bank{
		{ID: 1, Text: "q1", Options: []Option{{Text: "a", Category: Analytical}}},
		{ID: 2, Text: "q2", Options: []Option{{Text: "a", Category: Social}}},
		{ID: 3, Text: "q3", Options: []Option{{Text: "a", Category: Analytical}}},
		{ID: 4, Text: "q4", Options: []Option{{Text: "a", Category: Social}}},
	}
	e, err := NewEngine(bank, DefaultCareerTable())
	require.NoError(t, err)

	// analytical and social both occur twice; analytical's first supporting
	// response comes earlier, so it must win.
	profile, _, err := e.Score(responsesFor(Analytical, Social, Analytical, Social))
	require.NoError(t, err)
	assert.Equal(t, Analytical, profile.DominantType)

	// swap the order and the winner flips
	profile, _, err = e.Score(responsesFor(Social, Analytical, Social, Analytical))
	require.NoError(t, err)
	assert.Equal(t, Social, profile.DominantType)
}

func TestScoreRejectsWrongCount(t *testing.T) {
	e := newTestEngine(t)

	_, _, err := e.Score(responsesFor(Practical, Analytical))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResponseCount)

	_, _, err = e.Score(nil)
	assert.ErrorIs(t, err, ErrResponseCount)
}

func TestScoreRejectsUnknownCategory(t *testing.T) {
	e := newTestEngine(t)

	rs := responsesFor(Practical, Analytical, Practical)
	rs[1].Category = "astrological"
	_, _, err := e.Score(rs)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestScoreRejectsUnknownQuestion(t *testing.T) {
	e := newTestEngine(t)

	rs := responsesFor(Practical, Analytical, Practical)
	rs[2].QuestionID = 99
	_, _, err := e.Score(rs)
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestScoreRejectsDuplicateQuestion(t *testing.T) {
	e := newTestEngine(t)

	rs := responsesFor(Practical, Analytical, Practical)
	rs[2].QuestionID = 1
	_, _, err := e.Score(rs)
	assert.ErrorIs(t, err, ErrDuplicateResponse)
}

func TestScoreAcceptsAnyOrder(t *testing.T) {
	e := newTestEngine(t)

	rs := []Response{
		{QuestionID: 3, Answer: "a", Category: Social},
		{QuestionID: 1, Answer: "b", Category: Social},
		{QuestionID: 2, Answer: "c", Category: Creative},
	}
	profile, _, err := e.Score(rs)
	require.NoError(t, err)
	assert.Equal(t, Social, profile.DominantType)
}

func TestScoreIdempotent(t *testing.T) {
	e := newTestEngine(t)

	rs := responsesFor(Creative, Creative, Technical)
	first, xp1, err := e.Score(rs)
	require.NoError(t, err)
	second, xp2, err := e.Score(rs)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, xp1, xp2)
}

func TestCareerTableTotal(t *testing.T) {
	e := newTestEngine(t)

	for _, c := range Categories {
		// one response set per category, dominated by that category
		rs := []Response{
			{QuestionID: 1, Answer: "a", Category: c},
			{QuestionID: 2, Answer: "b", Category: c},
			{QuestionID: 3, Answer: "c", Category: c},
		}
		profile, _, err := e.Score(rs)
		require.NoError(t, err, "category %s", c)
		assert.Equal(t, c, profile.DominantType)
		assert.Len(t, profile.Strengths, 4, "category %s", c)
		assert.Len(t, profile.RecommendedCareers, 3, "category %s", c)
		assert.Len(t, profile.SuggestedStudyAreas, 4, "category %s", c)
		for _, career := range profile.RecommendedCareers {
			assert.NotEmpty(t, career.Title)
			assert.NotEmpty(t, career.Description)
			assert.GreaterOrEqual(t, career.MatchPercentage, 0)
			assert.LessOrEqual(t, career.MatchPercentage, 100)
		}
	}
}

func TestNewEngineRejectsIncompleteTable(t *testing.T) {
	table := DefaultCareerTable()
	delete(table, Leadership)
	_, err := NewEngine(DefaultBank(), table)
	require.Error(t, err)

	table = DefaultCareerTable()
	table[Social] = Recommendation{}
	_, err = NewEngine(DefaultBank(), table)
	require.Error(t, err)
}

func TestNewEngineRejectsBadBank(t *testing.T) {
	_, err := NewEngine(nil, DefaultCareerTable())
	require.Error(t, err)

	bank := Bank{
		{ID: 1, Text: "q", Options: []Option{{Text: "a", Category: "galactic"}}},
	}
	_, err = NewEngine(bank, DefaultCareerTable())
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}
