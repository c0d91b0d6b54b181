package repositories

import (
	"context"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChapterRepository struct {
	model *models.ChapterModel
}

func (c *ChapterRepository) Insert(ctx context.Context, chapter *models.Chapter) (primitive.ObjectID, error) {
	id, err := insert(ctx, c.model, chapter)
	if err != nil {
		return id, err
	}
	chapter.ID = id
	return id, nil
}

func (c *ChapterRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Chapter, error) {
	return findOne[models.Chapter](c.model.GetByID(ctx, id))
}

func (c *ChapterRepository) FindByCourse(
	ctx context.Context,
	course primitive.ObjectID,
	onlyPublished bool,
) ([]models.Chapter, error) {
	filter := bson.D{{Key: "course", Value: course}}
	if onlyPublished {
		filter = append(filter, bson.E{Key: "is_published", Value: true})
	}
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := c.model.GetAll(ctx, filter, opts)
	return decodeAll[models.Chapter](ctx, cursor, err)
}

func (c *ChapterRepository) Count(ctx context.Context, course primitive.ObjectID) (int64, error) {
	return c.model.Count(ctx, bson.D{{Key: "course", Value: course}})
}

func (c *ChapterRepository) Save(ctx context.Context, chapter *models.Chapter) error {
	_, err := c.model.ReplaceByID(ctx, chapter.ID, chapter)
	return err
}

func (c *ChapterRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := c.model.DeleteByID(ctx, id)
	return err
}

func (c *ChapterRepository) DeleteByCourse(ctx context.Context, course primitive.ObjectID) (int64, error) {
	return deleteMany(ctx, c.model, bson.D{{Key: "course", Value: course}})
}

// SetPositions writes the index of every id as its position in one bulk write
func (c *ChapterRepository) SetPositions(ctx context.Context, course primitive.ObjectID, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	writes := make([]mongo.WriteModel, 0, len(ids))
	for position, id := range ids {
		writes = append(
			writes,
			mongo.NewUpdateOneModel().
				SetFilter(bson.D{{Key: "_id", Value: id}, {Key: "course", Value: course}}).
				SetUpdate(bson.D{{Key: "$set", Value: bson.M{"position": position}}}),
		)
	}
	_, err := c.model.Use().BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	return err
}

func NewChapterRepository(conn *db.MongoConnection) *ChapterRepository {
	return &ChapterRepository{
		model: models.NewChapterModel(conn),
	}
}
