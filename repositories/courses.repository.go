package repositories

import (
	"context"
	"regexp"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CourseRepository struct {
	model *models.CourseModel
}

func (c *CourseRepository) Insert(ctx context.Context, course *models.Course) (primitive.ObjectID, error) {
	id, err := insert(ctx, c.model, course)
	if err != nil {
		return id, err
	}
	course.ID = id
	return id, nil
}

func (c *CourseRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	return findOne[models.Course](c.model.GetByID(ctx, id))
}

func (c *CourseRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}
	cursor, err := c.model.GetAll(ctx, bson.D{{
		Key:   "_id",
		Value: bson.M{"$in": ids},
	}}, nil)
	return decodeAll[models.Course](ctx, cursor, err)
}

func courseFilter(query models.CourseQuery) bson.D {
	filter := bson.D{}
	if query.OnlyPublished {
		filter = append(filter, bson.E{Key: "is_published", Value: true})
	}
	if query.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: query.Category})
	}
	if query.Level != "" {
		filter = append(filter, bson.E{Key: "level", Value: query.Level})
	}
	if !query.Instructor.IsZero() {
		filter = append(filter, bson.E{Key: "instructor", Value: query.Instructor})
	}
	if query.MinRating > 0 {
		filter = append(filter, bson.E{
			Key:   "rating_average",
			Value: bson.M{"$gte": query.MinRating},
		})
	}
	if len(query.IDs) > 0 {
		filter = append(filter, bson.E{
			Key:   "_id",
			Value: bson.M{"$in": query.IDs},
		})
	}
	if query.Search != "" {
		regex := primitive.Regex{
			Pattern: regexp.QuoteMeta(query.Search),
			Options: "i",
		}
		filter = append(filter, bson.E{
			Key: "$or",
			Value: bson.A{
				bson.M{"title": regex},
				bson.M{"description": regex},
				bson.M{"tags": regex},
			},
		})
	}
	return filter
}

func courseSort(sort string) bson.D {
	switch sort {
	case models.SORT_POPULAR:
		return bson.D{{Key: "enrollment_count", Value: -1}, {Key: "created_at", Value: -1}}
	case models.SORT_RATING:
		return bson.D{{Key: "rating_average", Value: -1}, {Key: "rating_count", Value: -1}}
	case models.SORT_PRICE_ASC:
		return bson.D{{Key: "price", Value: 1}, {Key: "created_at", Value: -1}}
	case models.SORT_PRICE_DESC:
		return bson.D{{Key: "price", Value: -1}, {Key: "created_at", Value: -1}}
	}
	return bson.D{{Key: "created_at", Value: -1}}
}

// Find filters the catalog and joins the instructor name
func (c *CourseRepository) Find(ctx context.Context, query models.CourseQuery) ([]models.CourseWLookup, int64, error) {
	filter := courseFilter(query)
	total, err := c.model.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: courseSort(query.Sort)}},
	}
	pipeline = page(pipeline, query.Skip, query.Limit)
	pipeline = append(
		pipeline,
		lookupUser("instructor", "instructor_user"),
		setFirst("instructor_user"),
	)

	cursor, err := c.model.Aggregate(ctx, pipeline)
	courses, err := decodeAll[models.CourseWLookup](ctx, cursor, err)
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (c *CourseRepository) FindByInstructor(
	ctx context.Context,
	instructor primitive.ObjectID,
	onlyPublished bool,
) ([]models.Course, error) {
	filter := bson.D{{Key: "instructor", Value: instructor}}
	if onlyPublished {
		filter = append(filter, bson.E{Key: "is_published", Value: true})
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := c.model.GetAll(ctx, filter, opts)
	return decodeAll[models.Course](ctx, cursor, err)
}

func (c *CourseRepository) Save(ctx context.Context, course *models.Course) error {
	_, err := c.model.ReplaceByID(ctx, course.ID, course)
	return err
}

func (c *CourseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := c.model.DeleteByID(ctx, id)
	return err
}

// IncEnrollmentCount never lets the counter go below zero
func (c *CourseRepository) IncEnrollmentCount(ctx context.Context, id primitive.ObjectID, delta int) error {
	filter := bson.D{{Key: "_id", Value: id}}
	if delta < 0 {
		filter = append(filter, bson.E{
			Key:   "enrollment_count",
			Value: bson.M{"$gte": -delta},
		})
	}
	_, err := c.model.UpdateOne(ctx, filter, bson.D{{
		Key:   "$inc",
		Value: bson.M{"enrollment_count": delta},
	}})
	return err
}

func (c *CourseRepository) SetRating(ctx context.Context, id primitive.ObjectID, stats models.RatingStats) error {
	_, err := c.model.UpdateByID(ctx, id, bson.D{{
		Key: "$set",
		Value: bson.M{
			"rating_average": stats.Average,
			"rating_count":   stats.Count,
		},
	}})
	return err
}

func NewCourseRepository(conn *db.MongoConnection) *CourseRepository {
	return &CourseRepository{
		model: models.NewCourseModel(conn),
	}
}
