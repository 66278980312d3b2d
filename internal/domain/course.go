package domain

type Material struct {
	Id    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Type  string `yaml:"type" json:"type"`
}

type Assignment struct {
	Id      AssignmentId `yaml:"id" json:"id"`
	Title   string       `yaml:"title" json:"title"`
	DueDate string       `yaml:"due_date" json:"due_date"`
}

// Course is immutable after seeding. Nothing in the portal mutates or
// creates courses at runtime.
type Course struct {
	Id          CourseId     `yaml:"id" json:"id"`
	Title       string       `yaml:"title" json:"title"`
	Category    string       `yaml:"category" json:"category"`
	Description string       `yaml:"description" json:"description"`
	Materials   []Material   `yaml:"materials" json:"materials"`
	Assignments []Assignment `yaml:"assignments" json:"assignments"`
}

func (c Course) Assignment(id AssignmentId) (Assignment, bool) {
	for _, a := range c.Assignments {
		if a.Id == id {
			return a, true
		}
	}
	return Assignment{}, false
}
