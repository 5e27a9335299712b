package catalog

// CreateSubjectInput carries a new subject. New subjects start active.
type CreateSubjectInput struct {
	SubjectName string
	Color       string
	Icon        string
}

// CreateCategoryInput carries a new category. SubjectName may reference a
// subject that does not exist; the link is never validated.
type CreateCategoryInput struct {
	CategoryName string
	SubjectName  string
	Difficulty   string
}
