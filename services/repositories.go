package services

import (
	"context"
	"time"

	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Find* methods return a nil document and a nil error when nothing matches.

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	Save(ctx context.Context, user *models.User) error
}

type CourseRepository interface {
	Insert(ctx context.Context, course *models.Course) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Course, error)
	Find(ctx context.Context, query models.CourseQuery) ([]models.CourseWLookup, int64, error)
	FindByInstructor(ctx context.Context, instructor primitive.ObjectID, onlyPublished bool) ([]models.Course, error)
	Save(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncEnrollmentCount(ctx context.Context, id primitive.ObjectID, delta int) error
	SetRating(ctx context.Context, id primitive.ObjectID, stats models.RatingStats) error
}

type ChapterRepository interface {
	Insert(ctx context.Context, chapter *models.Chapter) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Chapter, error)
	FindByCourse(ctx context.Context, course primitive.ObjectID, onlyPublished bool) ([]models.Chapter, error)
	Count(ctx context.Context, course primitive.ObjectID) (int64, error)
	Save(ctx context.Context, chapter *models.Chapter) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByCourse(ctx context.Context, course primitive.ObjectID) (int64, error)
	SetPositions(ctx context.Context, course primitive.ObjectID, ids []primitive.ObjectID) error
}

type LessonRepository interface {
	Insert(ctx context.Context, lesson *models.Lesson) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Lesson, error)
	FindByChapter(ctx context.Context, chapter primitive.ObjectID, onlyPublished bool) ([]models.Lesson, error)
	FindByCourse(ctx context.Context, course primitive.ObjectID, onlyPublished bool) ([]models.Lesson, error)
	CountByChapter(ctx context.Context, chapter primitive.ObjectID) (int64, error)
	Save(ctx context.Context, lesson *models.Lesson) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByChapter(ctx context.Context, chapter primitive.ObjectID) (int64, error)
	DeleteByCourse(ctx context.Context, course primitive.ObjectID) (int64, error)
}

type EnrollmentRepository interface {
	Insert(ctx context.Context, enrollment *models.Enrollment) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Enrollment, error)
	FindByUserAndCourse(ctx context.Context, user, course primitive.ObjectID) (*models.Enrollment, error)
	// FindByUser sorts by last access, newest first. A zero limit returns every enrollment.
	FindByUser(ctx context.Context, user primitive.ObjectID, status string, skip, limit int64) ([]models.Enrollment, int64, error)
	FindByCourse(ctx context.Context, course primitive.ObjectID) ([]models.Enrollment, error)
	CountByCourses(ctx context.Context, courses []primitive.ObjectID) (int64, error)
	Save(ctx context.Context, enrollment *models.Enrollment) error
	Touch(ctx context.Context, id primitive.ObjectID, at time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProgressRepository interface {
	FindByUserAndLesson(ctx context.Context, user, lesson primitive.ObjectID) (*models.Progress, error)
	// FindByUser returns every course when course is the zero ObjectID
	FindByUser(ctx context.Context, user, course primitive.ObjectID) ([]models.Progress, error)
	FindByEnrollment(ctx context.Context, enrollment primitive.ObjectID) ([]models.Progress, error)
	// FindCompleted sorts by completion date, newest first
	FindCompleted(ctx context.Context, user primitive.ObjectID) ([]models.Progress, error)
	Insert(ctx context.Context, progress *models.Progress) (primitive.ObjectID, error)
	Save(ctx context.Context, progress *models.Progress) error
	DeleteByEnrollment(ctx context.Context, enrollment primitive.ObjectID) (int64, error)
}

type ReviewRepository interface {
	Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	FindByUserAndCourse(ctx context.Context, user, course primitive.ObjectID) (*models.Review, error)
	FindByCourse(ctx context.Context, course primitive.ObjectID, skip, limit int64) ([]models.ReviewWLookup, int64, error)
	Save(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Stats(ctx context.Context, courses []primitive.ObjectID) (models.RatingStats, error)
}

type InstructorRepository interface {
	Insert(ctx context.Context, instructor *models.Instructor) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Instructor, error)
	FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Instructor, error)
	Find(ctx context.Context, skip, limit int64) ([]models.InstructorWLookup, int64, error)
	Save(ctx context.Context, instructor *models.Instructor) error
}

type ProfileRepository interface {
	FindByUser(ctx context.Context, user primitive.ObjectID) (*models.UserProfile, error)
	Insert(ctx context.Context, profile *models.UserProfile) (primitive.ObjectID, error)
	Save(ctx context.Context, profile *models.UserProfile) error
}

type SettingsRepository interface {
	FindByUser(ctx context.Context, user primitive.ObjectID) (*models.UserSettings, error)
	Insert(ctx context.Context, settings *models.UserSettings) (primitive.ObjectID, error)
	Save(ctx context.Context, settings *models.UserSettings) error
}

type FeedbackRepository interface {
	Insert(ctx context.Context, feedback *models.Feedback) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error)
	Find(ctx context.Context, query models.FeedbackQuery) ([]models.Feedback, int64, error)
	Save(ctx context.Context, feedback *models.Feedback) error
}

type AchievementRepository interface {
	// FindByUser sorts by award date, newest first
	FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Achievement, error)
	Insert(ctx context.Context, achievement *models.Achievement) (primitive.ObjectID, error)
}
