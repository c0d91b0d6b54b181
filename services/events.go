package services

import (
	"time"

	"go.uber.org/zap"
)

// NATS subjects
const (
	LESSON_COMPLETED     = "lms/lesson_completed"
	COURSE_COMPLETED     = "lms/course_completed"
	ACHIEVEMENT_UNLOCKED = "lms/achievement_unlocked"
	ENROLLMENT_CREATED   = "lms/enrollment_created"
	COURSE_DELETED       = "lms/course_deleted"
	GET_COURSE           = "lms/get_course"
)

type LessonCompletedEvent struct {
	User   string    `json:"user"`
	Course string    `json:"course"`
	Lesson string    `json:"lesson"`
	Date   time.Time `json:"date"`
}

type CourseCompletedEvent struct {
	User       string    `json:"user"`
	Course     string    `json:"course"`
	Enrollment string    `json:"enrollment"`
	Date       time.Time `json:"date"`
}

type AchievementUnlockedEvent struct {
	User  string `json:"user"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

type EnrollmentCreatedEvent struct {
	User       string `json:"user"`
	Course     string `json:"course"`
	Enrollment string `json:"enrollment"`
}

type CourseDeletedEvent struct {
	Course     string `json:"course"`
	Instructor string `json:"instructor"`
}

// publish never fails the request, events are best effort
func (d *Deps) publish(subject string, data interface{}) {
	if err := d.Events.PublishEncode(subject, data); err != nil {
		d.Logger.Warn(
			"event not published",
			zap.String("subject", subject),
			zap.Error(err),
		)
	}
}
