package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateRules(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, instructorClaims := e.addUser("Teacher", models.INSTRUCTOR)
	student, claims := e.addUser("Student", models.STUDENT)
	dropped, droppedClaims := e.addUser("Dropped", models.STUDENT)
	_, strangerClaims := e.addUser("Stranger", models.STUDENT)
	course, _ := e.addCourse(instructor, 1)
	e.enroll(student, course, models.ENROLLMENT_PAUSED)
	e.enroll(dropped, course, models.ENROLLMENT_DROPPED)
	idCourse := course.ID.Hex()
	form := &forms.ReviewForm{Rating: 4, Comment: " Nice "}

	tests := []struct {
		name   string
		claims *Claims
		status int
	}{
		{"instructor", instructorClaims, http.StatusForbidden},
		{"stranger", strangerClaims, http.StatusForbidden},
		{"dropped", droppedClaims, http.StatusForbidden},
		{"enrolled", claims, 0},
		{"twice", claims, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review, errRes := e.Reviews.CreateReview(ctx, idCourse, form, tt.claims)
			if tt.status == 0 {
				require.Nil(t, errRes)
				assert.Equal(t, "Nice", review.Comment)
				return
			}
			require.NotNil(t, errRes)
			assert.Equal(t, tt.status, errRes.StatusCode)
		})
	}
}

func TestReviewService_RatingIsRecomputed(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	first, firstClaims := e.addUser("First", models.STUDENT)
	second, secondClaims := e.addUser("Second", models.STUDENT)
	third, thirdClaims := e.addUser("Third", models.STUDENT)
	_, adminClaims := e.addUser("Admin", models.ADMIN)
	course, _ := e.addCourse(instructor, 1)
	for _, user := range []*models.User{first, second, third} {
		e.enroll(user, course, models.ENROLLMENT_ACTIVE)
	}
	idCourse := course.ID.Hex()

	review, errRes := e.Reviews.CreateReview(ctx, idCourse, &forms.ReviewForm{Rating: 5}, firstClaims)
	require.Nil(t, errRes)
	_, errRes = e.Reviews.CreateReview(ctx, idCourse, &forms.ReviewForm{Rating: 4}, secondClaims)
	require.Nil(t, errRes)
	_, errRes = e.Reviews.CreateReview(ctx, idCourse, &forms.ReviewForm{Rating: 4}, thirdClaims)
	require.Nil(t, errRes)
	assert.Equal(t, 4.3, e.courses.items[0].RatingAverage)
	assert.Equal(t, 3, e.courses.items[0].RatingCount)

	_, errRes = e.Reviews.UpdateReview(ctx, review.ID.Hex(), &forms.ReviewForm{Rating: 1}, secondClaims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusForbidden, errRes.StatusCode)

	_, errRes = e.Reviews.UpdateReview(ctx, review.ID.Hex(), &forms.ReviewForm{Rating: 1}, firstClaims)
	require.Nil(t, errRes)
	assert.Equal(t, 3.0, e.courses.items[0].RatingAverage)

	errRes = e.Reviews.DeleteReview(ctx, review.ID.Hex(), secondClaims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusForbidden, errRes.StatusCode)

	errRes = e.Reviews.DeleteReview(ctx, review.ID.Hex(), adminClaims)
	require.Nil(t, errRes)
	assert.Equal(t, 4.0, e.courses.items[0].RatingAverage)
	assert.Equal(t, 2, e.courses.items[0].RatingCount)

	page, errRes := e.Reviews.GetReviews(ctx, idCourse, 1, 10)
	require.Nil(t, errRes)
	assert.Equal(t, int64(2), page.Total)
	require.NotNil(t, page.Reviews[0].Author)
	assert.Equal(t, "Second", page.Reviews[0].Author.Name)
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 4.3, RoundRating(13.0/3.0))
	assert.Equal(t, 4.7, RoundRating(14.0/3.0))
	assert.Equal(t, 0.0, RoundRating(0))
}
