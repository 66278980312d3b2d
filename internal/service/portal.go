package service

import (
	"sync"
	"time"

	"github.com/tealedge/portal/internal/domain"
	"github.com/tealedge/portal/internal/errors"
)

// Snapshot is the full view-state the presentation layer renders from.
// Every command returns a fresh one; the core never holds rendering
// concerns beyond this struct.
type Snapshot struct {
	Account          *domain.Account         `json:"account,omitempty"`
	IsAdmin          bool                    `json:"is_admin"`
	Courses          []domain.Course         `json:"courses"`
	Enrollments      []domain.Enrollment     `json:"enrollments,omitempty"`
	Stats            domain.Stats            `json:"stats"`
	EnrollmentCounts map[domain.CourseId]int `json:"enrollment_counts"`
	Admin            domain.AdminStats       `json:"admin_stats"`
	InTransition     bool                    `json:"in_transition"`
	Message          string                  `json:"message,omitempty"`

	// Rejection is the structured outcome of the command that produced
	// this snapshot, nil when the command applied.
	Rejection *errors.Rejection `json:"-"`
}

// Portal routes commands to the ledgers and recomputes the snapshot on
// every state change. Each command is atomic: a rejection leaves every
// ledger untouched and only sets the user-facing message. A single
// mutex serializes mutations so the same core serves the in-process
// single-session embedding and the HTTP surface.
type Portal struct {
	mu         sync.Mutex
	auth       AuthService
	enrollment *Enrollment
	catalog    CourseCatalog
	transition *Transition

	session   *domain.Account
	message   string
	rejection *errors.Rejection
}

func NewPortal(auth AuthService, enrollment *Enrollment, catalog CourseCatalog) *Portal {
	return &Portal{
		auth:       auth,
		enrollment: enrollment,
		catalog:    catalog,
		transition: NewTransition(),
	}
}

// Signup registers an account. The session is unaffected either way.
func (p *Portal) Signup(name string, email domain.Email, password, confirmPassword domain.Password, role domain.Role, adminKey string) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	account, err := p.auth.Register(name, email, password, confirmPassword, role, adminKey)
	if err != nil {
		p.reject(err)
		return p.snapshotLocked()
	}

	if account.Role == domain.RoleAdmin {
		p.accept("Admin signup successful. Please login.")
	} else {
		p.accept("Student signup successful. Please login.")
	}
	return p.snapshotLocked()
}

// Login binds the session to the matching account. Anonymous is the
// only state it can be entered from in practice; a second login simply
// rebinds, which is the same single-session semantics.
func (p *Portal) Login(email domain.Email, password domain.Password, selectedRole domain.Role) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	account, _, err := p.auth.Login(email, password, selectedRole)
	if err != nil {
		p.reject(err)
		return p.snapshotLocked()
	}

	p.session = &account
	p.accept("")
	return p.snapshotLocked()
}

// Authenticate verifies credentials and returns the account plus an
// access token without binding the in-process session. The HTTP layer
// uses this; its session state lives in the token.
func (p *Portal) Authenticate(email domain.Email, password domain.Password, selectedRole domain.Role) (domain.Account, string, error) {
	return p.auth.Login(email, password, selectedRole)
}

// Logout clears the session unconditionally and always succeeds. Any
// in-flight transition is cancelled so a fresh login starts clean.
func (p *Portal) Logout() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.session = nil
	p.transition.Complete()
	p.accept("You have been logged out.")
	return p.snapshotLocked()
}

// Enroll enrolls the bound session's student in the course.
func (p *Portal) Enroll(courseId domain.CourseId) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enrollment.Enroll(p.session, courseId)
	p.accept("")
	return p.snapshotLocked()
}

// EnrollAs is the caller-explicit variant used by the HTTP handlers.
func (p *Portal) EnrollAs(caller *domain.Account, courseId domain.CourseId) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enrollment.Enroll(caller, courseId)
	return p.snapshotForLocked(caller)
}

// ToggleAssignment flips completion for the bound session's student.
func (p *Portal) ToggleAssignment(courseId domain.CourseId, assignmentId domain.AssignmentId) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enrollment.ToggleAssignment(p.session, courseId, assignmentId)
	p.accept("")
	return p.snapshotLocked()
}

// ToggleAssignmentAs is the caller-explicit variant for HTTP handlers.
func (p *Portal) ToggleAssignmentAs(caller *domain.Account, courseId domain.CourseId, assignmentId domain.AssignmentId) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enrollment.ToggleAssignment(caller, courseId, assignmentId)
	return p.snapshotForLocked(caller)
}

// BeginTransition flips the transient boarding flag. With delay > 0 the
// completion is scheduled here; re-triggering cancels the previous
// schedule (last write wins).
func (p *Portal) BeginTransition(delay time.Duration) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.transition.Begin(delay, nil)
	return p.snapshotLocked()
}

// CompleteTransition clears the boarding flag synchronously.
func (p *Portal) CompleteTransition() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.transition.Complete()
	return p.snapshotLocked()
}

// Queries. All pure, none of them mutates ledger state.

func (p *Portal) CurrentSession() *domain.Account {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return nil
	}
	account := *p.session
	return &account
}

func (p *Portal) Courses() []domain.Course {
	return p.catalog.Courses()
}

func (p *Portal) EnrollmentsFor(studentEmail domain.Email) []domain.Enrollment {
	return p.enrollment.EnrollmentsFor(studentEmail)
}

func (p *Portal) StatsFor(studentEmail domain.Email) domain.Stats {
	return p.enrollment.StatsFor(studentEmail)
}

func (p *Portal) EnrollmentCount(courseId domain.CourseId) int {
	return p.enrollment.CountFor(courseId)
}

func (p *Portal) AggregateAdminStats() domain.AdminStats {
	return domain.AdminStats{
		CourseCount:               p.catalog.Count(),
		TotalStudents:             p.auth.TotalByRole(domain.RoleStudent),
		TotalCompletedAssignments: p.enrollment.TotalCompleted(),
	}
}

// Snapshot recomputes the view-state for the bound session.
func (p *Portal) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// SnapshotFor recomputes the view-state for an explicit caller.
func (p *Portal) SnapshotFor(caller *domain.Account) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotForLocked(caller)
}

// reject records a failed command outcome; accept records a successful
// one with an optional informational message.
func (p *Portal) reject(err error) {
	p.message = err.Error()
	if r, ok := err.(*errors.Rejection); ok {
		p.rejection = r
	} else {
		p.rejection = &errors.Rejection{Message: err.Error()}
	}
}

func (p *Portal) accept(message string) {
	p.message = message
	p.rejection = nil
}

func (p *Portal) snapshotLocked() Snapshot {
	return p.snapshotForLocked(p.session)
}

func (p *Portal) snapshotForLocked(caller *domain.Account) Snapshot {
	snap := Snapshot{
		Courses:          p.catalog.Courses(),
		EnrollmentCounts: make(map[domain.CourseId]int, p.catalog.Count()),
		Admin:            p.AggregateAdminStats(),
		InTransition:     p.transition.Active(),
		Message:          p.message,
		Rejection:        p.rejection,
	}
	for _, course := range snap.Courses {
		snap.EnrollmentCounts[course.Id] = p.enrollment.CountFor(course.Id)
	}

	if caller != nil {
		account := *caller
		snap.Account = &account
		snap.IsAdmin = account.IsAdmin()
		if !snap.IsAdmin {
			snap.Enrollments = p.enrollment.EnrollmentsFor(account.Email)
			snap.Stats = p.enrollment.StatsFor(account.Email)
		}
	}
	return snap
}
