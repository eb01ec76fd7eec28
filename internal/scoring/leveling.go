package scoring

// LevelSpan is the XP width of a single level.
const LevelSpan = 100

// Level maps cumulative experience to a level, starting at 1.
func Level(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return experience/LevelSpan + 1
}

// ExperienceInLevel is the XP earned inside the current level.
func ExperienceInLevel(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return experience % LevelSpan
}

// ExperienceToNext is the XP still missing to reach the next level.
func ExperienceToNext(experience int) int {
	return LevelSpan - ExperienceInLevel(experience)
}

// Progress is the progress within the current level on a 0-100 scale. The
// level span is exactly 100 XP, so this equals ExperienceInLevel.
func Progress(experience int) int {
	return ExperienceInLevel(experience)
}
