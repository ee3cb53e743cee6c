package models

// Category is the row shape of the categories table.
// Oracle reports unquoted column names in upper case, hence the tags.
type Category struct {
	ID   int64  `db:"ID"`
	Type string `db:"TYPE"`
}

// Question is the row shape of the questions table.
type Question struct {
	ID         int64  `db:"ID"`
	Question   string `db:"QUESTION"`
	Answer     string `db:"ANSWER"`
	Category   string `db:"CATEGORY"`
	Difficulty int    `db:"DIFFICULTY"`
}
