package api

import "github.com/tealedge/portal/internal/domain"

type AccountResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type EnrollmentResponse struct {
	StudentEmail string   `json:"student_email"`
	CourseId     string   `json:"course_id"`
	Completed    []string `json:"completed_assignment_ids"`
}

type EnrollmentListResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
}

type CourseListResponse struct {
	Courses []domain.Course `json:"courses"`
}

type StatsResponse struct {
	Stats domain.Stats `json:"stats"`
}

type EnrollmentCountResponse struct {
	CourseId string `json:"course_id"`
	Count    int    `json:"count"`
}

type AdminStatsResponse struct {
	Stats domain.AdminStats `json:"stats"`
}
