package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tealedge/portal/internal/domain"
	"github.com/tealedge/portal/internal/storage/memory"
)

func student(email domain.Email) *domain.Account {
	return &domain.Account{Id: uuid.New(), Name: "Student", Email: email, Role: domain.RoleStudent}
}

func admin(email domain.Email) *domain.Account {
	return &domain.Account{Id: uuid.New(), Name: "Admin", Email: email, Role: domain.RoleAdmin}
}

func newTestEnrollment(t *testing.T) (*Enrollment, *memory.EnrollmentLedger) {
	t.Helper()
	ledger := memory.NewEnrollmentLedger()
	catalog := memory.NewCatalog(memory.DefaultCourses())
	return NewEnrollment(ledger, catalog), ledger
}

func TestEnrollment_Enroll(t *testing.T) {
	t.Run("student enrolls once", func(t *testing.T) {
		svc, _ := newTestEnrollment(t)
		alice := student("alice@x.com")

		svc.Enroll(alice, "react-ops")
		svc.Enroll(alice, "react-ops")

		enrollments := svc.EnrollmentsFor(alice.Email)
		require.Len(t, enrollments, 1)
		assert.Equal(t, domain.CourseId("react-ops"), enrollments[0].CourseId)
		assert.Zero(t, enrollments[0].CompletedCount())
	})

	t.Run("admin caller is a no-op", func(t *testing.T) {
		svc, ledger := newTestEnrollment(t)

		svc.Enroll(admin("root@tealedge.com"), "react-ops")
		assert.Zero(t, ledger.CountByCourse("react-ops"))
	})

	t.Run("anonymous caller is a no-op", func(t *testing.T) {
		svc, ledger := newTestEnrollment(t)

		svc.Enroll(nil, "react-ops")
		assert.Zero(t, ledger.CountByCourse("react-ops"))
	})

	t.Run("unknown course is a no-op", func(t *testing.T) {
		svc, _ := newTestEnrollment(t)
		alice := student("alice@x.com")

		svc.Enroll(alice, "basket-weaving")
		assert.Empty(t, svc.EnrollmentsFor(alice.Email))
	})
}

func TestEnrollment_ToggleAssignment(t *testing.T) {
	t.Run("toggle flips and flips back", func(t *testing.T) {
		svc, ledger := newTestEnrollment(t)
		alice := student("alice@x.com")
		svc.Enroll(alice, "react-ops")

		svc.ToggleAssignment(alice, "react-ops", "a1")
		enr, ok := ledger.Get(alice.Email, "react-ops")
		require.True(t, ok)
		assert.True(t, enr.IsCompleted("a1"))

		svc.ToggleAssignment(alice, "react-ops", "a1")
		enr, _ = ledger.Get(alice.Email, "react-ops")
		assert.False(t, enr.IsCompleted("a1"))
	})

	t.Run("toggle without enrollment does nothing", func(t *testing.T) {
		svc, ledger := newTestEnrollment(t)
		alice := student("alice@x.com")

		svc.ToggleAssignment(alice, "react-ops", "a1")
		_, ok := ledger.Get(alice.Email, "react-ops")
		assert.False(t, ok)
	})

	t.Run("admin caller is a no-op", func(t *testing.T) {
		svc, ledger := newTestEnrollment(t)
		alice := student("alice@x.com")
		svc.Enroll(alice, "react-ops")

		svc.ToggleAssignment(admin("root@tealedge.com"), "react-ops", "a1")
		enr, _ := ledger.Get(alice.Email, "react-ops")
		assert.False(t, enr.IsCompleted("a1"))
	})
}

func TestEnrollment_StatsFor(t *testing.T) {
	t.Run("sums over all enrollments", func(t *testing.T) {
		svc, _ := newTestEnrollment(t)
		alice := student("alice@x.com")
		svc.Enroll(alice, "react-ops")
		svc.Enroll(alice, "postgres-dive")

		svc.ToggleAssignment(alice, "react-ops", "a1")
		svc.ToggleAssignment(alice, "postgres-dive", "a3")

		stats := svc.StatsFor(alice.Email)
		// react-ops and postgres-dive carry two assignments each
		assert.Equal(t, domain.Stats{Total: 4, Completed: 2}, stats)
	})

	t.Run("skips courses missing from the catalog", func(t *testing.T) {
		ledger := memory.NewEnrollmentLedger()
		catalog := memory.NewCatalog(memory.DefaultCourses())
		svc := NewEnrollment(ledger, catalog)

		ledger.Create("alice@x.com", "retired-course")
		ledger.Create("alice@x.com", "react-ops")

		stats := svc.StatsFor("alice@x.com")
		assert.Equal(t, domain.Stats{Total: 2, Completed: 0}, stats)
	})

	t.Run("normalizes the email", func(t *testing.T) {
		svc, _ := newTestEnrollment(t)
		svc.Enroll(student("alice@x.com"), "react-ops")

		stats := svc.StatsFor(" ALICE@X.com ")
		assert.Equal(t, 2, stats.Total)
	})
}

func TestEnrollment_Counts(t *testing.T) {
	svc, _ := newTestEnrollment(t)
	svc.Enroll(student("alice@x.com"), "react-ops")
	svc.Enroll(student("bob@x.com"), "react-ops")
	svc.Enroll(student("bob@x.com"), "node-nav")

	svc.ToggleAssignment(student("alice@x.com"), "react-ops", "a1")
	svc.ToggleAssignment(student("bob@x.com"), "node-nav", "a5")

	assert.Equal(t, 2, svc.CountFor("react-ops"))
	assert.Equal(t, 1, svc.CountFor("node-nav"))
	assert.Zero(t, svc.CountFor("postgres-dive"))
	assert.Equal(t, 2, svc.TotalCompleted())
}
