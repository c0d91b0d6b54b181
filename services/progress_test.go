package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressService_UpdateProgress(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	student, claims := e.addUser("Student", models.STUDENT)
	course, lessons := e.addCourse(instructor, 2)
	e.enroll(student, course, models.ENROLLMENT_ACTIVE)

	result, errRes := e.Progress.UpdateProgress(ctx, &forms.ProgressForm{
		Lesson:    lessons[0].ID.Hex(),
		Completed: boolPtr(false),
		TimeSpent: 60,
	}, claims)
	require.Nil(t, errRes)
	assert.False(t, result.Progress.Completed)
	assert.Nil(t, result.Progress.CompletedAt)
	assert.Zero(t, result.Enrollment.Progress)
	assert.Empty(t, result.Achievements)

	result, errRes = e.Progress.UpdateProgress(ctx, &forms.ProgressForm{
		Lesson:    lessons[0].ID.Hex(),
		Completed: boolPtr(true),
		TimeSpent: 30,
	}, claims)
	require.Nil(t, errRes)
	assert.Len(t, e.progress.items, 1)
	assert.True(t, result.Progress.Completed)
	assert.NotNil(t, result.Progress.CompletedAt)
	assert.Equal(t, 90, result.Progress.TimeSpent)
	assert.Equal(t, 50, result.Enrollment.Progress)
	require.Len(t, result.Achievements, 1)
	assert.Equal(t, "first_lesson", result.Achievements[0].Code)
	firstCompletion := *result.Progress.CompletedAt

	result, errRes = e.Progress.UpdateProgress(ctx, &forms.ProgressForm{
		Lesson:    lessons[0].ID.Hex(),
		Completed: boolPtr(true),
	}, claims)
	require.Nil(t, errRes)
	assert.Equal(t, firstCompletion, *result.Progress.CompletedAt)

	result, errRes = e.Progress.UpdateProgress(ctx, &forms.ProgressForm{
		Lesson:    lessons[1].ID.Hex(),
		Completed: boolPtr(true),
	}, claims)
	require.Nil(t, errRes)
	assert.Equal(t, 100, result.Enrollment.Progress)
	assert.Equal(t, models.ENROLLMENT_COMPLETED, result.Enrollment.Status)
	require.Len(t, result.Achievements, 1)
	assert.Equal(t, "first_course", result.Achievements[0].Code)

	assert.Equal(t, []string{
		LESSON_COMPLETED,
		ACHIEVEMENT_UNLOCKED,
		LESSON_COMPLETED,
		COURSE_COMPLETED,
		ACHIEVEMENT_UNLOCKED,
	}, e.events.subjects())
}

func TestProgressService_SkipsLessonsOfDraftChapters(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	student, claims := e.addUser("Student", models.STUDENT)
	course, lessons := e.addCourse(instructor, 1)
	e.enroll(student, course, models.ENROLLMENT_ACTIVE)

	draft := &models.Chapter{Course: course.ID, Title: "Soon", Position: 1}
	e.chapters.Insert(ctx, draft)
	hidden := &models.Lesson{Course: course.ID, Chapter: draft.ID, Title: "Hidden", IsPublished: true}
	e.lessons.Insert(ctx, hidden)

	detail, errRes := e.Courses.GetCourse(ctx, course.ID.Hex(), claims)
	require.Nil(t, errRes)
	assert.Equal(t, 1, detail.TotalLessons)

	_, errRes = e.Lessons.GetLesson(ctx, hidden.ID.Hex(), claims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)

	_, errRes = e.Progress.UpdateProgress(ctx, &forms.ProgressForm{
		Lesson:    hidden.ID.Hex(),
		Completed: boolPtr(true),
	}, claims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)

	result, errRes := e.Progress.UpdateProgress(ctx, &forms.ProgressForm{
		Lesson:    lessons[0].ID.Hex(),
		Completed: boolPtr(true),
	}, claims)
	require.Nil(t, errRes)
	assert.Equal(t, 100, result.Enrollment.Progress)
	assert.Equal(t, models.ENROLLMENT_COMPLETED, result.Enrollment.Status)
	assert.NotNil(t, result.Enrollment.CompletedAt)
}

func TestProgressService_RecompletionKeepsFirstDate(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	student, claims := e.addUser("Student", models.STUDENT)
	course, lessons := e.addCourse(instructor, 2)
	e.enroll(student, course, models.ENROLLMENT_ACTIVE)

	var first time.Time
	for i, completed := range []bool{true, false, true} {
		result, errRes := e.Progress.UpdateProgress(ctx, &forms.ProgressForm{
			Lesson:    lessons[0].ID.Hex(),
			Completed: boolPtr(completed),
		}, claims)
		require.Nil(t, errRes)
		require.NotNil(t, result.Progress.CompletedAt)
		if i == 0 {
			first = *result.Progress.CompletedAt
		}
		assert.Equal(t, first, *result.Progress.CompletedAt)
	}

	fired := 0
	for _, subject := range e.events.subjects() {
		if subject == LESSON_COMPLETED {
			fired++
		}
	}
	assert.Equal(t, 1, fired)
}

func TestProgressService_RequiresActiveEnrollment(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	student, claims := e.addUser("Student", models.STUDENT)
	_, strangerClaims := e.addUser("Stranger", models.STUDENT)
	course, lessons := e.addCourse(instructor, 1)
	enrollment := e.enroll(student, course, models.ENROLLMENT_PAUSED)
	form := &forms.ProgressForm{Lesson: lessons[0].ID.Hex(), Completed: boolPtr(true)}

	_, errRes := e.Progress.UpdateProgress(ctx, form, claims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusForbidden, errRes.StatusCode)
	assert.Equal(t, "enrollment is not active", errRes.Error())

	enrollment.Status = models.ENROLLMENT_DROPPED
	e.enrollments.Save(ctx, enrollment)
	_, errRes = e.Progress.UpdateProgress(ctx, form, claims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusForbidden, errRes.StatusCode)

	_, errRes = e.Progress.UpdateProgress(ctx, form, strangerClaims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusForbidden, errRes.StatusCode)

	enrollment.Status = models.ENROLLMENT_COMPLETED
	e.enrollments.Save(ctx, enrollment)
	_, errRes = e.Progress.UpdateProgress(ctx, form, claims)
	assert.Nil(t, errRes)
}

func TestProgressService_GetProgressAndStreak(t *testing.T) {
	defer func() { nowFunc = time.Now }()
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	e := newEnv()
	ctx := context.Background()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	student, claims := e.addUser("Student", models.STUDENT)
	course, lessons := e.addCourse(instructor, 3)
	other, otherLessons := e.addCourse(instructor, 1)
	e.enroll(student, course, models.ENROLLMENT_ACTIVE)
	e.enroll(student, other, models.ENROLLMENT_ACTIVE)

	for i, lesson := range append(lessons, otherLessons...) {
		nowFunc = func() time.Time { return now.AddDate(0, 0, i-3) }
		_, errRes := e.Progress.UpdateProgress(ctx, &forms.ProgressForm{
			Lesson:    lesson.ID.Hex(),
			Completed: boolPtr(true),
		}, claims)
		require.Nil(t, errRes)
	}
	nowFunc = func() time.Time { return now }

	progress, errRes := e.Progress.GetProgress(ctx, course.ID.Hex(), claims)
	require.Nil(t, errRes)
	assert.Len(t, progress, 3)
	progress, errRes = e.Progress.GetProgress(ctx, "", claims)
	require.Nil(t, errRes)
	assert.Len(t, progress, 4)
	_, errRes = e.Progress.GetProgress(ctx, "bad", claims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)

	streak, errRes := e.Progress.GetStreak(ctx, claims)
	require.Nil(t, errRes)
	assert.Equal(t, 4, streak.Current)
	assert.Equal(t, 4, streak.Longest)
}
