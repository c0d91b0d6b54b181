package services

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/res"
	"go.uber.org/zap"
)

var nowFunc = time.Now

type Repositories struct {
	Users        UserRepository
	Courses      CourseRepository
	Chapters     ChapterRepository
	Lessons      LessonRepository
	Enrollments  EnrollmentRepository
	Progress     ProgressRepository
	Reviews      ReviewRepository
	Instructors  InstructorRepository
	Profiles     ProfileRepository
	Settings     SettingsRepository
	Feedback     FeedbackRepository
	Achievements AchievementRepository
}

// Deps are shared by every service. Events, Storage and Cache fall back to
// no-op implementations, Search to a Mongo regex query.
type Deps struct {
	Repositories
	Events  EventPublisher
	Storage FileStorage
	Search  CourseIndex
	Cache   Cache
	Tokens  *TokenManager
	Logger  *zap.Logger
	AppName string
}

type Services struct {
	Auth         *AuthService
	Courses      *CourseService
	Chapters     *ChapterService
	Lessons      *LessonService
	Enrollments  *EnrollmentService
	Progress     *ProgressService
	Achievements *AchievementService
	Reviews      *ReviewService
	Instructors  *InstructorService
	Profiles     *ProfileService
	Settings     *SettingsService
	Feedback     *FeedbackService
	Dashboard    *DashboardService
}

func NewServices(deps *Deps) *Services {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Events == nil {
		deps.Events = nopPublisher{}
	}
	if deps.Storage == nil {
		deps.Storage = nopStorage{}
	}
	if deps.Cache == nil {
		deps.Cache = nopCache{}
	}
	if deps.AppName == "" {
		deps.AppName = "Learning"
	}

	courses := &CourseService{deps}
	achievements := &AchievementService{deps}
	enrollments := &EnrollmentService{deps}
	return &Services{
		Auth:         &AuthService{deps},
		Courses:      courses,
		Chapters:     &ChapterService{deps},
		Lessons:      &LessonService{deps},
		Enrollments:  enrollments,
		Progress:     &ProgressService{Deps: deps, enrollments: enrollments, achievements: achievements},
		Achievements: achievements,
		Reviews:      &ReviewService{deps},
		Instructors:  &InstructorService{deps},
		Profiles:     &ProfileService{deps},
		Settings:     &SettingsService{deps},
		Feedback:     &FeedbackService{deps},
		Dashboard:    &DashboardService{Deps: deps, achievements: achievements},
	}
}

// unavailable logs a store failure and wraps it
func (d *Deps) unavailable(err error) *res.ErrorRes {
	d.Logger.Error("store unavailable", zap.Error(err))
	return res.Unavailable(err)
}

func (d *Deps) internal(err error) *res.ErrorRes {
	d.Logger.Error("internal error", zap.Error(err))
	return res.Internal(err)
}
