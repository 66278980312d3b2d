package memory

import (
	"sync"

	"github.com/tealedge/portal/internal/domain"
)

type enrollmentKey struct {
	studentEmail domain.Email
	courseId     domain.CourseId
}

// EnrollmentLedger owns every (student, course) enrollment and its
// completed-assignment set. At most one enrollment exists per pair;
// enrollments are never deleted.
type EnrollmentLedger struct {
	mu    sync.RWMutex
	byKey map[enrollmentKey]*domain.Enrollment
	order []enrollmentKey // creation order, for stable listings
}

func NewEnrollmentLedger() *EnrollmentLedger {
	return &EnrollmentLedger{byKey: make(map[enrollmentKey]*domain.Enrollment)}
}

// Create adds an empty enrollment for the pair. Reports whether a new
// record was created; an existing pair is left untouched.
func (l *EnrollmentLedger) Create(studentEmail domain.Email, courseId domain.CourseId) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := enrollmentKey{studentEmail, courseId}
	if _, ok := l.byKey[key]; ok {
		return false
	}

	e := domain.NewEnrollment(studentEmail, courseId)
	l.byKey[key] = &e
	l.order = append(l.order, key)
	return true
}

// Get returns a copy of the enrollment for the pair, if present.
func (l *EnrollmentLedger) Get(studentEmail domain.Email, courseId domain.CourseId) (domain.Enrollment, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.byKey[enrollmentKey{studentEmail, courseId}]
	if !ok {
		return domain.Enrollment{}, false
	}
	return copyEnrollment(e), true
}

// Toggle flips membership of assignmentId in the pair's completed-set.
// Reports whether an enrollment existed; a missing pair is a no-op, the
// set is never auto-created.
func (l *EnrollmentLedger) Toggle(studentEmail domain.Email, courseId domain.CourseId, assignmentId domain.AssignmentId) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.byKey[enrollmentKey{studentEmail, courseId}]
	if !ok {
		return false
	}

	if e.Completed[assignmentId] {
		delete(e.Completed, assignmentId)
	} else {
		e.Completed[assignmentId] = true
	}
	return true
}

// ByStudent returns the student's enrollments in creation order.
func (l *EnrollmentLedger) ByStudent(studentEmail domain.Email) []domain.Enrollment {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.Enrollment
	for _, key := range l.order {
		if key.studentEmail == studentEmail {
			out = append(out, copyEnrollment(l.byKey[key]))
		}
	}
	return out
}

// CountByCourse counts enrollments for the course across all students.
func (l *EnrollmentLedger) CountByCourse(courseId domain.CourseId) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for key := range l.byKey {
		if key.courseId == courseId {
			n++
		}
	}
	return n
}

// All returns every enrollment in creation order.
func (l *EnrollmentLedger) All() []domain.Enrollment {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Enrollment, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, copyEnrollment(l.byKey[key]))
	}
	return out
}

// TotalCompleted sums completed-set sizes over every enrollment.
func (l *EnrollmentLedger) TotalCompleted() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, e := range l.byKey {
		n += len(e.Completed)
	}
	return n
}

// copies guard callers from aliasing the ledger's live completed-set
func copyEnrollment(e *domain.Enrollment) domain.Enrollment {
	out := domain.Enrollment{
		StudentEmail: e.StudentEmail,
		CourseId:     e.CourseId,
		Completed:    make(map[domain.AssignmentId]bool, len(e.Completed)),
	}
	for id := range e.Completed {
		out.Completed[id] = true
	}
	return out
}
