package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// courseDocument is what the catalog index stores per published course
type courseDocument struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Tags        []string `json:"tags"`
	Language    string   `json:"language"`
	Instructor  string   `json:"instructor"`
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID string `json:"_id"`
		} `json:"hits"`
	} `json:"hits"`
}

type CourseSearchRepository struct {
	es    *elasticsearch.Client
	index string
}

func responseError(response *esapi.Response) error {
	if !response.IsError() {
		return nil
	}
	return fmt.Errorf("elasticsearch: %s", response.String())
}

func (c *CourseSearchRepository) IndexCourse(ctx context.Context, course *models.Course) error {
	body, err := json.Marshal(courseDocument{
		Title:       course.Title,
		Description: course.Description,
		Category:    course.Category,
		Level:       course.Level,
		Tags:        course.Tags,
		Language:    course.Language,
		Instructor:  course.Instructor.Hex(),
	})
	if err != nil {
		return err
	}
	response, err := c.es.Index(
		c.index,
		bytes.NewReader(body),
		c.es.Index.WithContext(ctx),
		c.es.Index.WithDocumentID(course.ID.Hex()),
	)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	return responseError(response)
}

// DeleteCourse ignores courses that were never indexed
func (c *CourseSearchRepository) DeleteCourse(ctx context.Context, id primitive.ObjectID) error {
	response, err := c.es.Delete(c.index, id.Hex(), c.es.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if response.StatusCode == http.StatusNotFound {
		return nil
	}
	return responseError(response)
}

func searchQuery(q string) (string, error) {
	quoted, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		`"multi_match": {"query": %s, "fields": ["title^3", "tags^2", "category", "description"], "fuzziness": "AUTO"}`,
		quoted,
	), nil
}

// SearchCourses returns the ids of the best matches, best first
func (c *CourseSearchRepository) SearchCourses(ctx context.Context, q string, limit int) ([]primitive.ObjectID, error) {
	query, err := searchQuery(q)
	if err != nil {
		return nil, err
	}
	response, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(db.ConstructQuery(query)),
		c.es.Search.WithSize(limit),
	)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if err := responseError(response); err != nil {
		return nil, err
	}

	var result searchResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		id, err := primitive.ObjectIDFromHex(hit.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func NewCourseSearchRepository(es *elasticsearch.Client) *CourseSearchRepository {
	return &CourseSearchRepository{
		es:    es,
		index: models.COURSES_INDEX,
	}
}
