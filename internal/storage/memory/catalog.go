// Package memory holds the in-memory ledgers backing the portal. All
// state lives in process memory and is gone on restart; each store
// guards its maps with a RWMutex so the HTTP surface can be served
// concurrently while every mutation stays atomic.
package memory

import "github.com/tealedge/portal/internal/domain"

// Catalog is the read-only course list. It is seeded once at startup
// and never mutated afterwards, so reads need no locking.
type Catalog struct {
	courses []domain.Course
	byId    map[domain.CourseId]int
}

func NewCatalog(courses []domain.Course) *Catalog {
	byId := make(map[domain.CourseId]int, len(courses))
	for i, c := range courses {
		byId[c.Id] = i
	}
	return &Catalog{courses: courses, byId: byId}
}

// DefaultCourses seeds the catalog shipped with the portal.
func DefaultCourses() []domain.Course {
	return []domain.Course{
		{
			Id:          "react-ops",
			Title:       "Advanced React Ops",
			Category:    "Frontend",
			Description: "Master hooks, performance, and scalable React architecture.",
			Materials: []domain.Material{
				{Id: "m1", Title: "Hooks Deep Dive Notes", Type: "PDF"},
				{Id: "m2", Title: "Rendering Performance Checklist", Type: "Guide"},
			},
			Assignments: []domain.Assignment{
				{Id: "a1", Title: "Build reusable hooks library", DueDate: "2026-03-08"},
				{Id: "a2", Title: "Optimize dashboard render path", DueDate: "2026-03-15"},
			},
		},
		{
			Id:          "postgres-dive",
			Title:       "PostgreSQL Deep Dive",
			Category:    "Database",
			Description: "Query optimization, indexing strategy, and data modeling.",
			Materials: []domain.Material{
				{Id: "m3", Title: "Indexing Patterns Handbook", Type: "PDF"},
				{Id: "m4", Title: "Explain Analyze Lab", Type: "Worksheet"},
			},
			Assignments: []domain.Assignment{
				{Id: "a3", Title: "Design optimized schema", DueDate: "2026-03-10"},
				{Id: "a4", Title: "Tune slow analytics query", DueDate: "2026-03-19"},
			},
		},
		{
			Id:          "node-nav",
			Title:       "Node.js Navigation",
			Category:    "Backend",
			Description: "Build secure APIs with auth, validation, and observability.",
			Materials: []domain.Material{
				{Id: "m5", Title: "API Security Playbook", Type: "Guide"},
			},
			Assignments: []domain.Assignment{
				{Id: "a5", Title: "Implement JWT auth flow", DueDate: "2026-03-12"},
			},
		},
	}
}

func (c *Catalog) Course(id domain.CourseId) (domain.Course, bool) {
	i, ok := c.byId[id]
	if !ok {
		return domain.Course{}, false
	}
	return c.courses[i], true
}

func (c *Catalog) Courses() []domain.Course {
	out := make([]domain.Course, len(c.courses))
	copy(out, c.courses)
	return out
}

func (c *Catalog) Count() int {
	return len(c.courses)
}
