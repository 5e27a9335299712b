package model

// Subject is a top-level study subject. Active=false is a soft delete;
// rows are never physically removed.
type Subject struct {
	SubjectName string `json:"subject_name"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Active      bool   `json:"active"`
}

// Category is a task category, optionally attached to a subject by name.
// No referential integrity is enforced; dangling subject names are tolerated.
type Category struct {
	CategoryName string `json:"category_name"`
	SubjectName  string `json:"subject_name"`
	Difficulty   string `json:"difficulty"`
	Active       bool   `json:"active"`
}
