package scoring

// Category is one of the six fixed personality/skill tags that drive both
// question options and career recommendations.
type Category string

const (
	Practical  Category = "practical"
	Analytical Category = "analytical"
	Social     Category = "social"
	Creative   Category = "creative"
	Technical  Category = "technical"
	Leadership Category = "leadership"
)

// Categories lists every member of the closed enum.
var Categories = []Category{Practical, Analytical, Social, Creative, Technical, Leadership}

func (c Category) Valid() bool {
	switch c {
	case Practical, Analytical, Social, Creative, Technical, Leadership:
		return true
	}
	return false
}

type Option struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"question"`
	Options []Option `json:"options"`
}

// Bank is the ordered question sequence. It is built once at process start
// and passed to the engine; nothing mutates it afterwards.
type Bank []Question

// DefaultBank returns the built-in assessment question bank.
func DefaultBank() Bank {
	return Bank{
		{
			ID:   1,
			Text: "What type of activities do you enjoy most?",
			Options: []Option{
				{Text: "Working with your hands and building things", Category: Practical},
				{Text: "Analyzing data and solving complex problems", Category: Analytical},
				{Text: "Helping and teaching others", Category: Social},
				{Text: "Creating art, music, or writing", Category: Creative},
			},
		},
		{
			ID:   2,
			Text: "In a group project, you prefer to:",
			Options: []Option{
				{Text: "Lead the team and coordinate tasks", Category: Leadership},
				{Text: "Focus on research and technical details", Category: Technical},
				{Text: "Facilitate discussions and resolve conflicts", Category: Social},
				{Text: "Come up with innovative ideas and solutions", Category: Creative},
			},
		},
		{
			ID:   3,
			Text: "Your ideal work environment would be:",
			Options: []Option{
				{Text: "A laboratory or workshop with tools and equipment", Category: Technical},
				{Text: "An office where you can analyze data and strategies", Category: Analytical},
				{Text: "A collaborative space where you interact with many people", Category: Social},
				{Text: "A flexible space where you can express creativity", Category: Creative},
			},
		},
	}
}
