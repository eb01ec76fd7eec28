package scoring

// Career is a single recommendation inside a career profile.
type Career struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	MatchPercentage int    `json:"matchPercentage"`
}

// Recommendation bundles everything the career table associates with one
// category.
type Recommendation struct {
	Strengths  []string
	Careers    []Career
	StudyAreas []string
}

// CareerProfile is the scored outcome for one submission.
type CareerProfile struct {
	DominantType        Category `json:"dominantType"`
	Strengths           []string `json:"strengths"`
	RecommendedCareers  []Career `json:"recommendedCareers"`
	SuggestedStudyAreas []string `json:"suggestedStudyAreas"`
}

// DefaultCareerTable returns the built-in recommendation table. The table
// is total over the category enum; NewEngine verifies that.
func DefaultCareerTable() map[Category]Recommendation {
	return map[Category]Recommendation{
		Practical: {
			Careers: []Career{
				{Title: "Mechanical Engineer", Description: "Design and build mechanical systems", MatchPercentage: 95},
				{Title: "Construction Manager", Description: "Oversee building projects", MatchPercentage: 88},
				{Title: "Automotive Technician", Description: "Repair and maintain vehicles", MatchPercentage: 82},
			},
			Strengths:  []string{"Problem-solving", "Hands-on skills", "Technical aptitude", "Attention to detail"},
			StudyAreas: []string{"Engineering", "Technology", "Applied Sciences", "Trades"},
		},
		Analytical: {
			Careers: []Career{
				{Title: "Data Scientist", Description: "Analyze complex data to find insights", MatchPercentage: 96},
				{Title: "Financial Analyst", Description: "Evaluate investment opportunities", MatchPercentage: 89},
				{Title: "Research Scientist", Description: "Conduct scientific research", MatchPercentage: 85},
			},
			Strengths:  []string{"Critical thinking", "Mathematical skills", "Research abilities", "Pattern recognition"},
			StudyAreas: []string{"Mathematics", "Computer Science", "Economics", "Natural Sciences"},
		},
		Social: {
			Careers: []Career{
				{Title: "School Counselor", Description: "Guide and support students", MatchPercentage: 94},
				{Title: "Human Resources Manager", Description: "Manage employee relations", MatchPercentage: 87},
				{Title: "Social Worker", Description: "Help individuals and communities", MatchPercentage: 83},
			},
			Strengths:  []string{"Communication", "Empathy", "Interpersonal skills", "Conflict resolution"},
			StudyAreas: []string{"Psychology", "Education", "Social Work", "Human Resources"},
		},
		Creative: {
			Careers: []Career{
				{Title: "Graphic Designer", Description: "Create visual communications", MatchPercentage: 93},
				{Title: "Marketing Creative Director", Description: "Lead creative campaigns", MatchPercentage: 88},
				{Title: "User Experience Designer", Description: "Design digital experiences", MatchPercentage: 84},
			},
			Strengths:  []string{"Creativity", "Visual thinking", "Innovation", "Artistic expression"},
			StudyAreas: []string{"Design", "Fine Arts", "Marketing", "Digital Media"},
		},
		Technical: {
			Careers: []Career{
				{Title: "Software Developer", Description: "Build applications and systems", MatchPercentage: 95},
				{Title: "Cybersecurity Specialist", Description: "Protect digital systems", MatchPercentage: 90},
				{Title: "Network Administrator", Description: "Manage computer networks", MatchPercentage: 85},
			},
			Strengths:  []string{"Technical skills", "Logical thinking", "System design", "Troubleshooting"},
			StudyAreas: []string{"Computer Science", "Information Technology", "Cybersecurity", "Software Engineering"},
		},
		Leadership: {
			Careers: []Career{
				{Title: "Project Manager", Description: "Lead and coordinate projects", MatchPercentage: 92},
				{Title: "Business Consultant", Description: "Advise organizations on strategy", MatchPercentage: 88},
				{Title: "Operations Manager", Description: "Oversee business operations", MatchPercentage: 85},
			},
			Strengths:  []string{"Leadership", "Strategic thinking", "Communication", "Team management"},
			StudyAreas: []string{"Business Administration", "Management", "Leadership Studies", "Organizational Psychology"},
		},
	}
}
