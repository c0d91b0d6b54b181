package services

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/models"
)

type Page struct {
	Total int64 `json:"total" example:"40"`
	Page  int   `json:"page" example:"1"`
	Pages int   `json:"pages" example:"4"`
}

func newPage(total, skip, limit int64) Page {
	pages := 0
	if limit > 0 {
		pages = int((total + limit - 1) / limit)
	}
	page := 1
	if limit > 0 {
		page = int(skip/limit) + 1
	}
	return Page{
		Total: total,
		Page:  page,
		Pages: pages,
	}
}

type CoursesPage struct {
	Courses []models.CourseWLookup `json:"courses"`
	Page
}

type CourseDetail struct {
	models.Course
	InstructorUser *models.SimpleUser      `json:"instructor_user,omitempty"`
	Chapters       []models.ChapterWLookup `json:"chapters"`
	TotalLessons   int                     `json:"total_lessons" example:"12"`
	TotalDuration  int                     `json:"total_duration" example:"160"` // Minutes
}

type CourseSummary struct {
	ID         string  `json:"_id"`
	Title      string  `json:"title"`
	Instructor string  `json:"instructor"`
	Thumbnail  string  `json:"thumbnail,omitempty"`
	Level      string  `json:"level"`
	Published  bool    `json:"is_published"`
	Rating     float64 `json:"rating_average"`
}

func newCourseSummary(course *models.Course) *CourseSummary {
	return &CourseSummary{
		ID:         course.ID.Hex(),
		Title:      course.Title,
		Instructor: course.Instructor.Hex(),
		Thumbnail:  course.Thumbnail,
		Level:      course.Level,
		Published:  course.IsPublished,
		Rating:     course.RatingAverage,
	}
}

type EnrollmentWCourse struct {
	models.Enrollment
	CourseSummary *CourseSummary `json:"course_summary,omitempty"`
}

type EnrollmentsPage struct {
	Enrollments []EnrollmentWCourse `json:"enrollments"`
	Page
}

type EnrollmentDetail struct {
	Enrollment EnrollmentWCourse `json:"enrollment"`
	Progress   []models.Progress `json:"progress"`
}

type ProgressResult struct {
	Progress     *models.Progress     `json:"progress"`
	Enrollment   *models.Enrollment   `json:"enrollment"`
	Achievements []models.Achievement `json:"achievements,omitempty"`
}

type Streak struct {
	Current      int        `json:"current" example:"3"`
	Longest      int        `json:"longest" example:"10"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

type ReviewsPage struct {
	Reviews []models.ReviewWLookup `json:"reviews"`
	Page
}

type InstructorsPage struct {
	Instructors []models.InstructorWLookup `json:"instructors"`
	Page
}

type InstructorDetail struct {
	models.Instructor
	Profile *models.SimpleUser `json:"profile,omitempty"`
	Courses []models.Course    `json:"courses"`
}

type InstructorStats struct {
	Courses          int     `json:"courses" example:"4"`
	PublishedCourses int     `json:"published_courses" example:"3"`
	Students         int64   `json:"students" example:"120"`
	AverageRating    float64 `json:"average_rating" example:"4.6"`
	Reviews          int     `json:"reviews" example:"35"`
}

type PublicProfile struct {
	User    models.SimpleUser   `json:"user"`
	Profile *models.UserProfile `json:"profile"`
}

type FeedbackPage struct {
	Feedback []models.Feedback `json:"feedback"`
	Page
}

type Dashboard struct {
	Enrolled         int                  `json:"enrolled" example:"5"`
	Completed        int                  `json:"completed" example:"2"`
	InProgress       int                  `json:"in_progress" example:"3"`
	LessonsCompleted int                  `json:"lessons_completed" example:"40"`
	MinutesLearned   int                  `json:"minutes_learned" example:"600"`
	Streak           Streak               `json:"streak"`
	Achievements     []models.Achievement `json:"achievements"`
	Recent           []EnrollmentWCourse  `json:"recent"`
}
