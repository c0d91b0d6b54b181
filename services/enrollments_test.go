package services

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentService_Enroll(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, instructorClaims := e.addUser("Teacher", models.INSTRUCTOR)
	_, claims := e.addUser("Student", models.STUDENT)
	course, _ := e.addCourse(instructor, 1)
	form := &forms.EnrollmentForm{Course: course.ID.Hex()}

	enrollment, errRes := e.Enrollments.Enroll(ctx, form, claims)
	require.Nil(t, errRes)
	assert.Equal(t, models.ENROLLMENT_ACTIVE, enrollment.Status)
	assert.Zero(t, enrollment.Progress)
	assert.Equal(t, 1, e.courses.items[0].EnrollmentCount)
	assert.Equal(t, []string{ENROLLMENT_CREATED}, e.events.subjects())

	_, errRes = e.Enrollments.Enroll(ctx, form, claims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Equal(t, "already enrolled", errRes.Error())

	_, errRes = e.Enrollments.Enroll(ctx, form, instructorClaims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
}

func TestEnrollmentService_EnrollReactivatesDropped(t *testing.T) {
	e := newEnv()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	student, claims := e.addUser("Student", models.STUDENT)
	course, _ := e.addCourse(instructor, 1)
	dropped := e.enroll(student, course, models.ENROLLMENT_DROPPED)

	enrollment, errRes := e.Enrollments.Enroll(context.Background(), &forms.EnrollmentForm{Course: course.ID.Hex()}, claims)
	require.Nil(t, errRes)
	assert.Equal(t, dropped.ID, enrollment.ID)
	assert.Equal(t, models.ENROLLMENT_ACTIVE, enrollment.Status)
	assert.Len(t, e.enrollments.items, 1)
	assert.Zero(t, e.courses.items[0].EnrollmentCount)
}

func TestEnrollmentService_EnrollUnpublished(t *testing.T) {
	e := newEnv()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	_, claims := e.addUser("Student", models.STUDENT)
	course, _ := e.addCourse(instructor, 1)
	course.IsPublished = false
	e.courses.Save(context.Background(), course)

	_, errRes := e.Enrollments.Enroll(context.Background(), &forms.EnrollmentForm{Course: course.ID.Hex()}, claims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)
}

func TestEnrollmentService_UpdateTransitions(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	student, claims := e.addUser("Student", models.STUDENT)
	_, otherClaims := e.addUser("Other", models.STUDENT)
	course, _ := e.addCourse(instructor, 1)
	enrollment := e.enroll(student, course, models.ENROLLMENT_ACTIVE)
	id := enrollment.ID.Hex()

	updated, errRes := e.Enrollments.UpdateEnrollment(ctx, id, &forms.UpdateEnrollmentForm{Status: models.ENROLLMENT_PAUSED}, claims)
	require.Nil(t, errRes)
	assert.Equal(t, models.ENROLLMENT_PAUSED, updated.Status)

	_, errRes = e.Enrollments.UpdateEnrollment(ctx, id, &forms.UpdateEnrollmentForm{Status: models.ENROLLMENT_PAUSED}, claims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)

	_, errRes = e.Enrollments.UpdateEnrollment(ctx, id, &forms.UpdateEnrollmentForm{Status: models.ENROLLMENT_ACTIVE}, otherClaims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)

	enrollment.Status = models.ENROLLMENT_COMPLETED
	e.enrollments.Save(ctx, enrollment)
	_, errRes = e.Enrollments.UpdateEnrollment(ctx, id, &forms.UpdateEnrollmentForm{Status: models.ENROLLMENT_DROPPED}, claims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
	assert.Equal(t, "a completed enrollment cannot change", errRes.Error())
}

func TestEnrollmentService_DeleteRemovesProgress(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	student, claims := e.addUser("Student", models.STUDENT)
	course, lessons := e.addCourse(instructor, 1)
	enrollment := e.enroll(student, course, models.ENROLLMENT_ACTIVE)
	e.courses.IncEnrollmentCount(ctx, course.ID, 1)
	e.progress.Insert(ctx, &models.Progress{User: student.ID, Course: course.ID, Lesson: lessons[0].ID, Enrollment: enrollment.ID})

	errRes := e.Enrollments.DeleteEnrollment(ctx, enrollment.ID.Hex(), claims)
	require.Nil(t, errRes)
	assert.Empty(t, e.enrollments.items)
	assert.Empty(t, e.progress.items)
	assert.Zero(t, e.courses.items[0].EnrollmentCount)
}

func TestEnrollmentService_GetEnrollments(t *testing.T) {
	e := newEnv()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	student, claims := e.addUser("Student", models.STUDENT)
	first, _ := e.addCourse(instructor, 1)
	second, _ := e.addCourse(instructor, 1)
	e.enroll(student, first, models.ENROLLMENT_ACTIVE)
	e.enroll(student, second, models.ENROLLMENT_PAUSED)

	page, errRes := e.Enrollments.GetEnrollments(context.Background(), claims, "", 1, 0)
	require.Nil(t, errRes)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Enrollments, 2)
	assert.NotNil(t, page.Enrollments[0].CourseSummary)

	page, errRes = e.Enrollments.GetEnrollments(context.Background(), claims, models.ENROLLMENT_PAUSED, 1, 0)
	require.Nil(t, errRes)
	require.Len(t, page.Enrollments, 1)
	assert.Equal(t, second.ID.Hex(), page.Enrollments[0].CourseSummary.ID)
}

func TestEnrollmentService_RecomputeProgress(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	student, _ := e.addUser("Student", models.STUDENT)
	course, lessons := e.addCourse(instructor, 2)
	enrollment := e.enroll(student, course, models.ENROLLMENT_ACTIVE)

	completedAt := time.Now()
	e.progress.Insert(ctx, &models.Progress{User: student.ID, Course: course.ID, Lesson: lessons[0].ID, Completed: true, CompletedAt: &completedAt})

	completed, errRes := e.Enrollments.RecomputeProgress(ctx, enrollment)
	require.Nil(t, errRes)
	assert.False(t, completed)
	assert.Equal(t, 50, enrollment.Progress)

	e.progress.Insert(ctx, &models.Progress{User: student.ID, Course: course.ID, Lesson: lessons[1].ID, Completed: true, CompletedAt: &completedAt})
	completed, errRes = e.Enrollments.RecomputeProgress(ctx, enrollment)
	require.Nil(t, errRes)
	assert.True(t, completed)
	assert.Equal(t, 100, enrollment.Progress)
	assert.Equal(t, models.ENROLLMENT_COMPLETED, enrollment.Status)
	assert.NotNil(t, enrollment.CompletedAt)

	// A new lesson lowers the percentage but the enrollment stays completed
	e.lessons.Insert(ctx, &models.Lesson{Course: course.ID, Chapter: lessons[0].Chapter, IsPublished: true})
	completed, errRes = e.Enrollments.RecomputeProgress(ctx, enrollment)
	require.Nil(t, errRes)
	assert.False(t, completed)
	assert.Equal(t, 67, enrollment.Progress)
	assert.Equal(t, models.ENROLLMENT_COMPLETED, enrollment.Status)
}

func TestEnrollmentService_Certificate(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	student, claims := e.addUser("Student", models.STUDENT)
	course, _ := e.addCourse(instructor, 1)
	enrollment := e.enroll(student, course, models.ENROLLMENT_ACTIVE)

	_, _, errRes := e.Enrollments.Certificate(ctx, enrollment.ID.Hex(), claims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)

	completedAt := time.Now()
	enrollment.Status = models.ENROLLMENT_COMPLETED
	enrollment.CompletedAt = &completedAt
	e.enrollments.Save(ctx, enrollment)

	buf, filename, errRes := e.Enrollments.Certificate(ctx, enrollment.ID.Hex(), claims)
	require.Nil(t, errRes)
	assert.Equal(t, "certificate-"+enrollment.ID.Hex()+".pdf", filename)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
