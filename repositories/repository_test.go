package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("insert sets the id", func(mt *mtest.T) {
		users := NewUserRepository(db.NewConnectionFromDatabase(mt.DB))
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &models.User{Name: "Jane", Email: "jane@example.com"}
		id, err := users.Insert(context.Background(), user)
		require.NoError(t, err)
		assert.False(t, id.IsZero())
		assert.Equal(t, id, user.ID)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		users := NewUserRepository(db.NewConnectionFromDatabase(mt.DB))
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "learning.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Jane"},
			{Key: "email", Value: "jane@example.com"},
			{Key: "role", Value: models.STUDENT},
		}))

		user, err := users.FindByEmail(context.Background(), "jane@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, models.STUDENT, user.Role)
	})

	mt.Run("missing user is nil", func(mt *mtest.T) {
		users := NewUserRepository(db.NewConnectionFromDatabase(mt.DB))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "learning.users", mtest.FirstBatch))

		user, err := users.FindByID(context.Background(), primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	mt.Run("store errors are returned", func(mt *mtest.T) {
		users := NewUserRepository(db.NewConnectionFromDatabase(mt.DB))
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "duplicate key",
		}))

		_, err := users.Insert(context.Background(), &models.User{Name: "Jane"})
		require.Error(t, err)
	})
}

func TestReviewRepository_Stats(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("aggregates the ratings", func(mt *mtest.T) {
		reviews := NewReviewRepository(db.NewConnectionFromDatabase(mt.DB))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "learning.reviews", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: nil},
			{Key: "average", Value: 4.5},
			{Key: "count", Value: int32(2)},
		}))

		stats, err := reviews.Stats(context.Background(), []primitive.ObjectID{primitive.NewObjectID()})
		require.NoError(t, err)
		assert.Equal(t, models.RatingStats{Average: 4.5, Count: 2}, stats)
	})

	mt.Run("no reviews", func(mt *mtest.T) {
		reviews := NewReviewRepository(db.NewConnectionFromDatabase(mt.DB))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "learning.reviews", mtest.FirstBatch))

		stats, err := reviews.Stats(context.Background(), []primitive.ObjectID{primitive.NewObjectID()})
		require.NoError(t, err)
		assert.Equal(t, models.RatingStats{}, stats)
	})

	mt.Run("no courses skips the query", func(mt *mtest.T) {
		reviews := NewReviewRepository(db.NewConnectionFromDatabase(mt.DB))

		stats, err := reviews.Stats(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, models.RatingStats{}, stats)
	})
}

func TestCourseRepository_Find(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("page with instructor", func(mt *mtest.T) {
		courses := NewCourseRepository(db.NewConnectionFromDatabase(mt.DB))
		idCourse := primitive.NewObjectID()
		idInstructor := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "learning.courses", mtest.FirstBatch, bson.D{
				{Key: "n", Value: int32(11)},
			}),
			mtest.CreateCursorResponse(0, "learning.courses", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: idCourse},
				{Key: "title", Value: "Intro to Go"},
				{Key: "instructor", Value: idInstructor},
				{Key: "is_published", Value: true},
				{Key: "instructor_user", Value: bson.D{
					{Key: "_id", Value: idInstructor},
					{Key: "name", Value: "Teacher"},
				}},
			}),
		)

		found, total, err := courses.Find(context.Background(), models.CourseQuery{
			OnlyPublished: true,
			Search:        "go",
			Skip:          10,
			Limit:         10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), total)
		require.Len(t, found, 1)
		assert.Equal(t, idCourse, found[0].ID)
		require.NotNil(t, found[0].InstructorUser)
		assert.Equal(t, "Teacher", found[0].InstructorUser.Name)
		assert.Equal(t, idInstructor.Hex(), found[0].InstructorUser.ID)
	})
}

func TestCourseFilter(t *testing.T) {
	id := primitive.NewObjectID()
	filter := courseFilter(models.CourseQuery{
		OnlyPublished: true,
		Category:      "programming",
		Instructor:    id,
		MinRating:     4,
		Search:        "c++",
	})
	keys := make([]string, 0, len(filter))
	for _, e := range filter {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"is_published", "category", "instructor", "rating_average", "$or"}, keys)

	or := filter[4].Value.(bson.A)
	regex := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, `c\+\+`, regex.Pattern)
	assert.Equal(t, "i", regex.Options)

	assert.Empty(t, courseFilter(models.CourseQuery{}))
}

func TestCourseSort(t *testing.T) {
	assert.Equal(t, "enrollment_count", courseSort(models.SORT_POPULAR)[0].Key)
	assert.Equal(t, "rating_average", courseSort(models.SORT_RATING)[0].Key)
	assert.Equal(t, 1, courseSort(models.SORT_PRICE_ASC)[0].Value)
	assert.Equal(t, -1, courseSort(models.SORT_PRICE_DESC)[0].Value)
	assert.Equal(t, "created_at", courseSort("")[0].Key)
}

func TestEnrollmentRepository_Touch(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("sets only the last access", func(mt *mtest.T) {
		enrollments := NewEnrollmentRepository(db.NewConnectionFromDatabase(mt.DB))
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		id := primitive.NewObjectID()
		err := enrollments.Touch(context.Background(), id, time.Now())
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)
		set, err := started.Command.LookupErr("updates", "0", "u", "$set")
		require.NoError(mt, err)
		elements, err := set.Document().Elements()
		require.NoError(mt, err)
		require.Len(mt, elements, 1)
		assert.Equal(mt, "last_accessed_at", elements[0].Key())
	})
}
