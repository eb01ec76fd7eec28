// Package scoring implements the assessment scoring engine: a pure
// transformation from a completed response set to a career profile plus an
// experience delta, and the leveling math derived from cumulative
// experience. The package performs no I/O.
package scoring

import (
	"errors"
	"fmt"
)

// ExperiencePerAssessment is the XP credited for one completed assessment.
const ExperiencePerAssessment = 150

var (
	ErrResponseCount     = errors.New("response count does not match question count")
	ErrUnknownCategory   = errors.New("unknown response category")
	ErrUnknownQuestion   = errors.New("response references unknown question")
	ErrDuplicateResponse = errors.New("duplicate response for question")
)

// Response is one answered question as submitted by the user.
type Response struct {
	QuestionID int      `json:"questionId"`
	Answer     string   `json:"answer"`
	Category   Category `json:"category"`
}

// Engine scores completed response sets against an immutable question bank
// and career table.
type Engine struct {
	bank      Bank
	questions map[int]Question
	table     map[Category]Recommendation
}

// NewEngine validates the bank and table and builds an engine. The table
// must be total over the category enum; every bank option must name a
// valid category.
func NewEngine(bank Bank, table map[Category]Recommendation) (*Engine, error) {
	if len(bank) == 0 {
		return nil, errors.New("scoring: empty question bank")
	}
	questions := make(map[int]Question, len(bank))
	for _, q := range bank {
		if _, ok := questions[q.ID]; ok {
			return nil, fmt.Errorf("scoring: duplicate question id %d", q.ID)
		}
		for _, opt := range q.Options {
			if !opt.Category.Valid() {
				return nil, fmt.Errorf("scoring: question %d option %q: %w", q.ID, opt.Text, ErrUnknownCategory)
			}
		}
		questions[q.ID] = q
	}
	for _, c := range Categories {
		rec, ok := table[c]
		if !ok {
			return nil, fmt.Errorf("scoring: career table missing category %q", c)
		}
		if len(rec.Strengths) == 0 || len(rec.Careers) == 0 || len(rec.StudyAreas) == 0 {
			return nil, fmt.Errorf("scoring: career table entry for %q is incomplete", c)
		}
	}
	return &Engine{bank: bank, questions: questions, table: table}, nil
}

// Bank returns the ordered question sequence the engine scores against.
func (e *Engine) Bank() Bank {
	return e.bank
}

// Question returns the bank question with the given id.
func (e *Engine) Question(id int) (Question, bool) {
	q, ok := e.questions[id]
	return q, ok
}

// Score tallies the response categories, selects the dominant type and
// returns the matching career profile together with the experience delta.
//
// The input must contain exactly one response per bank question, in any
// order. Ties are broken in favor of the category whose first supporting
// response appears earliest in the input; the rule is deliberate, not an
// artifact of map iteration.
func (e *Engine) Score(responses []Response) (CareerProfile, int, error) {
	if len(responses) != len(e.bank) {
		return CareerProfile{}, 0, fmt.Errorf("%w: got %d, want %d", ErrResponseCount, len(responses), len(e.bank))
	}

	counts := make(map[Category]int, len(Categories))
	answered := make(map[int]bool, len(responses))
	var seen []Category // categories in order of first occurrence

	for _, r := range responses {
		if !r.Category.Valid() {
			return CareerProfile{}, 0, fmt.Errorf("%w: %q", ErrUnknownCategory, r.Category)
		}
		if _, ok := e.questions[r.QuestionID]; !ok {
			return CareerProfile{}, 0, fmt.Errorf("%w: %d", ErrUnknownQuestion, r.QuestionID)
		}
		if answered[r.QuestionID] {
			return CareerProfile{}, 0, fmt.Errorf("%w: %d", ErrDuplicateResponse, r.QuestionID)
		}
		answered[r.QuestionID] = true
		if counts[r.Category] == 0 {
			seen = append(seen, r.Category)
		}
		counts[r.Category]++
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}
	var dominant Category
	for _, c := range seen {
		if counts[c] == max {
			dominant = c
			break
		}
	}

	rec := e.table[dominant]
	profile := CareerProfile{
		DominantType:        dominant,
		Strengths:           rec.Strengths,
		RecommendedCareers:  rec.Careers,
		SuggestedStudyAreas: rec.StudyAreas,
	}
	return profile, ExperiencePerAssessment, nil
}
