package service

import (
	"github.com/tealedge/portal/internal/domain"
	"github.com/tealedge/portal/internal/logger"
)

type EnrollmentStorage interface {
	Create(studentEmail domain.Email, courseId domain.CourseId) bool
	Get(studentEmail domain.Email, courseId domain.CourseId) (domain.Enrollment, bool)
	Toggle(studentEmail domain.Email, courseId domain.CourseId, assignmentId domain.AssignmentId) bool
	ByStudent(studentEmail domain.Email) []domain.Enrollment
	CountByCourse(courseId domain.CourseId) int
	TotalCompleted() int
}

type CourseCatalog interface {
	Course(id domain.CourseId) (domain.Course, bool)
	Courses() []domain.Course
	Count() int
}

// Enrollment orchestrates the enrollment ledger. Admin callers and
// anonymous callers never mutate it; every operation here is a no-op
// for them rather than an error, matching the portal's button-driven
// origin where those surfaces simply don't exist.
type Enrollment struct {
	storage EnrollmentStorage
	catalog CourseCatalog
}

func NewEnrollment(storage EnrollmentStorage, catalog CourseCatalog) *Enrollment {
	return &Enrollment{storage: storage, catalog: catalog}
}

// Enroll creates an empty enrollment for the caller. Idempotent: an
// existing (student, course) pair is left as is.
func (e *Enrollment) Enroll(caller *domain.Account, courseId domain.CourseId) {
	if caller == nil || caller.IsAdmin() {
		return
	}
	if _, ok := e.catalog.Course(courseId); !ok {
		logger.Log.Warn("enroll attempt for unknown course", "course", courseId)
		return
	}
	if e.storage.Create(caller.Email, courseId) {
		logger.Log.Info("student enrolled", "email", caller.Email, "course", courseId)
	}
}

// ToggleAssignment flips completion of one assignment. Requires an
// existing enrollment; a missing one is not auto-created.
func (e *Enrollment) ToggleAssignment(caller *domain.Account, courseId domain.CourseId, assignmentId domain.AssignmentId) {
	if caller == nil || caller.IsAdmin() {
		return
	}
	e.storage.Toggle(caller.Email, courseId, assignmentId)
}

// EnrollmentsFor returns the student's enrollments in creation order.
func (e *Enrollment) EnrollmentsFor(studentEmail domain.Email) []domain.Enrollment {
	return e.storage.ByStudent(domain.NormalizeEmail(studentEmail))
}

// StatsFor sums assignment totals and completions over the student's
// enrollments. Courses missing from the catalog are skipped.
func (e *Enrollment) StatsFor(studentEmail domain.Email) domain.Stats {
	var stats domain.Stats
	for _, enr := range e.storage.ByStudent(domain.NormalizeEmail(studentEmail)) {
		course, ok := e.catalog.Course(enr.CourseId)
		if !ok {
			continue
		}
		stats.Total += len(course.Assignments)
		stats.Completed += enr.CompletedCount()
	}
	return stats
}

// CountFor counts enrollments in the course across all students.
func (e *Enrollment) CountFor(courseId domain.CourseId) int {
	return e.storage.CountByCourse(courseId)
}

// TotalCompleted sums completed assignments across every enrollment.
func (e *Enrollment) TotalCompleted() int {
	return e.storage.TotalCompleted()
}
