package repositories

import (
	"context"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LessonRepository struct {
	model *models.LessonModel
}

func (l *LessonRepository) Insert(ctx context.Context, lesson *models.Lesson) (primitive.ObjectID, error) {
	if lesson.Attachments == nil {
		lesson.Attachments = []models.Attachment{}
	}
	id, err := insert(ctx, l.model, lesson)
	if err != nil {
		return id, err
	}
	lesson.ID = id
	return id, nil
}

func (l *LessonRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Lesson, error) {
	return findOne[models.Lesson](l.model.GetByID(ctx, id))
}

func (l *LessonRepository) find(ctx context.Context, filter bson.D, onlyPublished bool) ([]models.Lesson, error) {
	if onlyPublished {
		filter = append(filter, bson.E{Key: "is_published", Value: true})
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "chapter", Value: 1},
		{Key: "position", Value: 1},
	})
	cursor, err := l.model.GetAll(ctx, filter, opts)
	return decodeAll[models.Lesson](ctx, cursor, err)
}

func (l *LessonRepository) FindByChapter(
	ctx context.Context,
	chapter primitive.ObjectID,
	onlyPublished bool,
) ([]models.Lesson, error) {
	return l.find(ctx, bson.D{{Key: "chapter", Value: chapter}}, onlyPublished)
}

func (l *LessonRepository) FindByCourse(
	ctx context.Context,
	course primitive.ObjectID,
	onlyPublished bool,
) ([]models.Lesson, error) {
	return l.find(ctx, bson.D{{Key: "course", Value: course}}, onlyPublished)
}

func (l *LessonRepository) CountByChapter(ctx context.Context, chapter primitive.ObjectID) (int64, error) {
	return l.model.Count(ctx, bson.D{{Key: "chapter", Value: chapter}})
}

func (l *LessonRepository) Save(ctx context.Context, lesson *models.Lesson) error {
	if lesson.Attachments == nil {
		lesson.Attachments = []models.Attachment{}
	}
	_, err := l.model.ReplaceByID(ctx, lesson.ID, lesson)
	return err
}

func (l *LessonRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := l.model.DeleteByID(ctx, id)
	return err
}

func (l *LessonRepository) DeleteByChapter(ctx context.Context, chapter primitive.ObjectID) (int64, error) {
	return deleteMany(ctx, l.model, bson.D{{Key: "chapter", Value: chapter}})
}

func (l *LessonRepository) DeleteByCourse(ctx context.Context, course primitive.ObjectID) (int64, error) {
	return deleteMany(ctx, l.model, bson.D{{Key: "course", Value: course}})
}

func NewLessonRepository(conn *db.MongoConnection) *LessonRepository {
	return &LessonRepository{
		model: models.NewLessonModel(conn),
	}
}
