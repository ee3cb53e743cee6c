package dto

// SeedCategory is one entry of the seed file: a category and the questions filed under it.
type SeedCategory struct {
	Type      string         `json:"type"`
	Questions []SeedQuestion `json:"questions"`
}

type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}
