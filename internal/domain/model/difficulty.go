package model

type Difficulty string

const (
	LevelEasy   Difficulty = "easy"
	LevelMedium Difficulty = "medium"
	LevelHard   Difficulty = "hard"
)

// ResolveDifficulty accepts a caller-supplied difficulty only when it is an
// exact member of the enum. Anything else (empty, untrimmed, wrong case)
// falls back to medium.
func ResolveDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case LevelEasy, LevelMedium, LevelHard:
		return Difficulty(s)
	}
	return LevelMedium
}
