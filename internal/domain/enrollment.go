package domain

// Enrollment tracks one student's progress in one course. It references
// the account and course by their natural keys only, never by pointer,
// so a future account-deletion feature cannot leave it dangling.
type Enrollment struct {
	StudentEmail Email                 `json:"student_email"`
	CourseId     CourseId              `json:"course_id"`
	Completed    map[AssignmentId]bool `json:"completed"`
}

func NewEnrollment(studentEmail Email, courseId CourseId) Enrollment {
	return Enrollment{
		StudentEmail: studentEmail,
		CourseId:     courseId,
		Completed:    make(map[AssignmentId]bool),
	}
}

func (e Enrollment) IsCompleted(id AssignmentId) bool {
	return e.Completed[id]
}

func (e Enrollment) CompletedCount() int {
	return len(e.Completed)
}

// Stats aggregates assignment totals over a student's enrollments.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// AdminStats are the portal-wide aggregates shown on the admin home.
type AdminStats struct {
	CourseCount               int `json:"course_count"`
	TotalStudents             int `json:"total_students"`
	TotalCompletedAssignments int `json:"total_completed_assignments"`
}
