package services

import (
	"context"
	"io"

	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventPublisher interface {
	PublishEncode(subject string, data interface{}) error
}

type FileStorage interface {
	UploadFile(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	GetFile(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, key string) error
}

type CourseIndex interface {
	IndexCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id primitive.ObjectID) error
	// SearchCourses returns the matching course ids, best match first
	SearchCourses(ctx context.Context, q string, limit int) ([]primitive.ObjectID, error)
}

// Cache.Get returns nil, nil on a miss
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
