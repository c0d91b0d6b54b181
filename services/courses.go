package services

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const MAX_SEARCH_RESULTS = 20

type CourseService struct {
	*Deps
}

func (c *CourseService) GetCourses(ctx context.Context, query *forms.CourseQueryForm) (*CoursesPage, *res.ErrorRes) {
	skip, limit := forms.Normalize(query.Page, query.Limit)
	courseQuery := models.CourseQuery{
		Category:      query.Category,
		Level:         query.Level,
		Search:        strings.TrimSpace(query.Search),
		MinRating:     query.MinRating,
		Sort:          query.Sort,
		OnlyPublished: true,
		Skip:          skip,
		Limit:         limit,
	}
	if query.Instructor != "" {
		idInstructor, errRes := parseID(query.Instructor, "instructor")
		if errRes != nil {
			return nil, errRes
		}
		courseQuery.Instructor = idInstructor
	}

	courses, total, err := c.Courses.Find(ctx, courseQuery)
	if err != nil {
		return nil, c.unavailable(err)
	}
	if courses == nil {
		courses = []models.CourseWLookup{}
	}
	return &CoursesPage{
		Courses: courses,
		Page:    newPage(total, skip, limit),
	}, nil
}

// SearchCourses ranks with the search index when there is one
func (c *CourseService) SearchCourses(ctx context.Context, q string, limit int) ([]models.CourseWLookup, *res.ErrorRes) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, res.BadRequest(fmt.Errorf("q is required"))
	}
	if limit < 1 || limit > MAX_SEARCH_RESULTS {
		limit = MAX_SEARCH_RESULTS
	}
	if c.Search != nil {
		ids, err := c.Search.SearchCourses(ctx, q, limit)
		if err == nil {
			return c.coursesInOrder(ctx, ids)
		}
		c.Logger.Warn("search index failed, falling back to mongo", zap.Error(err))
	}
	courses, _, err := c.Courses.Find(ctx, models.CourseQuery{
		Search:        q,
		OnlyPublished: true,
		Sort:          models.SORT_POPULAR,
		Limit:         int64(limit),
	})
	if err != nil {
		return nil, c.unavailable(err)
	}
	if courses == nil {
		courses = []models.CourseWLookup{}
	}
	return courses, nil
}

func (c *CourseService) coursesInOrder(ctx context.Context, ids []primitive.ObjectID) ([]models.CourseWLookup, *res.ErrorRes) {
	ordered := []models.CourseWLookup{}
	if len(ids) == 0 {
		return ordered, nil
	}
	courses, _, err := c.Courses.Find(ctx, models.CourseQuery{
		IDs:           ids,
		OnlyPublished: true,
		Limit:         int64(len(ids)),
	})
	if err != nil {
		return nil, c.unavailable(err)
	}
	byID := make(map[primitive.ObjectID]models.CourseWLookup, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
	}
	for _, id := range ids {
		if course, ok := byID[id]; ok {
			ordered = append(ordered, course)
		}
	}
	return ordered, nil
}

// GetCourse returns the course outline. Owners and admins see drafts,
// everyone else gets the published outline, served from cache when possible.
func (c *CourseService) GetCourse(ctx context.Context, idCourse string, claims *Claims) (*CourseDetail, *res.ErrorRes) {
	idObjCourse, errRes := parseID(idCourse, "course")
	if errRes != nil {
		return nil, errRes
	}
	if cached := c.cachedCourse(ctx, idObjCourse); cached != nil && !ownsCourse(&cached.Course, claims) {
		return cached, nil
	}

	course, errRes := c.findCourse(ctx, idObjCourse)
	if errRes != nil {
		return nil, errRes
	}
	owner := ownsCourse(course, claims)
	if !course.IsPublished && !owner {
		return nil, res.NotFound(fmt.Errorf("course not found"))
	}

	detail, errRes := c.buildDetail(ctx, course, !owner)
	if errRes != nil {
		return nil, errRes
	}
	if !owner {
		c.cacheCourse(ctx, detail)
	}
	return detail, nil
}

func (c *CourseService) buildDetail(ctx context.Context, course *models.Course, onlyPublished bool) (*CourseDetail, *res.ErrorRes) {
	chapters, err := c.Chapters.FindByCourse(ctx, course.ID, onlyPublished)
	if err != nil {
		return nil, c.unavailable(err)
	}
	lessons, err := c.Lessons.FindByCourse(ctx, course.ID, onlyPublished)
	if err != nil {
		return nil, c.unavailable(err)
	}
	byChapter := make(map[primitive.ObjectID][]models.Lesson)
	for _, lesson := range lessons {
		byChapter[lesson.Chapter] = append(byChapter[lesson.Chapter], lesson.Outline())
	}

	detail := &CourseDetail{
		Course:   *course,
		Chapters: make([]models.ChapterWLookup, 0, len(chapters)),
	}
	for _, chapter := range chapters {
		chapterLessons := byChapter[chapter.ID]
		if chapterLessons == nil {
			chapterLessons = []models.Lesson{}
		}
		for _, lesson := range chapterLessons {
			detail.TotalDuration += lesson.Duration
		}
		detail.TotalLessons += len(chapterLessons)
		detail.Chapters = append(detail.Chapters, models.ChapterWLookup{
			Chapter: chapter,
			Lessons: chapterLessons,
		})
	}

	instructor, err := c.Users.FindByID(ctx, course.Instructor)
	if err != nil {
		return nil, c.unavailable(err)
	}
	if instructor != nil {
		simple := instructor.Simple()
		simple.Email = ""
		detail.InstructorUser = &simple
	}
	return detail, nil
}

func (c *CourseService) cachedCourse(ctx context.Context, idCourse primitive.ObjectID) *CourseDetail {
	data, err := c.Cache.Get(ctx, courseCacheKey(idCourse))
	if err != nil {
		c.Logger.Warn("cache read failed", zap.Error(err))
		return nil
	}
	if data == nil {
		return nil
	}
	var detail CourseDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil
	}
	return &detail
}

func (c *CourseService) cacheCourse(ctx context.Context, detail *CourseDetail) {
	data, err := json.Marshal(detail)
	if err != nil {
		return
	}
	if err := c.Cache.Set(ctx, courseCacheKey(detail.ID), data); err != nil {
		c.Logger.Warn("cache write failed", zap.Error(err))
	}
}

func (c *CourseService) GetInstructorCourses(ctx context.Context, claims *Claims) ([]models.Course, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	courses, err := c.Courses.FindByInstructor(ctx, idUser, false)
	if err != nil {
		return nil, c.unavailable(err)
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

func (c *CourseService) GetCourseSummary(ctx context.Context, idCourse string) (*CourseSummary, *res.ErrorRes) {
	idObjCourse, errRes := parseID(idCourse, "course")
	if errRes != nil {
		return nil, errRes
	}
	course, errRes := c.findCourse(ctx, idObjCourse)
	if errRes != nil {
		return nil, errRes
	}
	return newCourseSummary(course), nil
}

func (c *CourseService) CreateCourse(ctx context.Context, course *forms.CourseForm, claims *Claims) (*models.Course, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	if !isAdmin(claims) {
		instructor, err := c.Instructors.FindByUser(ctx, idUser)
		if err != nil {
			return nil, c.unavailable(err)
		}
		if instructor == nil {
			return nil, res.Forbidden(fmt.Errorf("create your instructor profile first"))
		}
	}

	now := nowFunc()
	tags := course.Tags
	if tags == nil {
		tags = []string{}
	}
	language := course.Language
	if language == "" {
		language = "en"
	}
	newCourse := &models.Course{
		Title:       strings.TrimSpace(course.Title),
		Description: course.Description,
		Instructor:  idUser,
		Category:    strings.ToLower(strings.TrimSpace(course.Category)),
		Level:       course.Level,
		Price:       *course.Price,
		Tags:        tags,
		Language:    language,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := c.Courses.Insert(ctx, newCourse)
	if err != nil {
		return nil, c.unavailable(err)
	}
	newCourse.ID = id
	return newCourse, nil
}

func (c *CourseService) UpdateCourse(
	ctx context.Context,
	idCourse string,
	update *forms.UpdateCourseForm,
	claims *Claims,
) (*models.Course, *res.ErrorRes) {
	idObjCourse, errRes := parseID(idCourse, "course")
	if errRes != nil {
		return nil, errRes
	}
	course, errRes := c.managedCourse(ctx, idObjCourse, claims)
	if errRes != nil {
		return nil, errRes
	}
	wasPublished := course.IsPublished

	if update.Title != nil {
		course.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		course.Description = *update.Description
	}
	if update.Category != nil {
		course.Category = strings.ToLower(strings.TrimSpace(*update.Category))
	}
	if update.Level != nil {
		course.Level = *update.Level
	}
	if update.Price != nil {
		course.Price = *update.Price
	}
	if update.Tags != nil {
		course.Tags = update.Tags
	}
	if update.Language != nil {
		course.Language = *update.Language
	}
	if update.IsPublished != nil {
		if *update.IsPublished && !wasPublished {
			lessons, err := c.Lessons.FindByCourse(ctx, course.ID, true)
			if err != nil {
				return nil, c.unavailable(err)
			}
			if len(lessons) == 0 {
				return nil, res.BadRequest(fmt.Errorf("a course needs at least one published lesson to be published"))
			}
		}
		course.IsPublished = *update.IsPublished
	}
	course.UpdatedAt = nowFunc()

	if err := c.Courses.Save(ctx, course); err != nil {
		return nil, c.unavailable(err)
	}
	c.invalidateCourse(ctx, course.ID)
	c.syncIndex(ctx, course, wasPublished)
	return course, nil
}

// syncIndex keeps only published courses in the search index
func (c *CourseService) syncIndex(ctx context.Context, course *models.Course, wasPublished bool) {
	if c.Search == nil {
		return
	}
	var err error
	if course.IsPublished {
		err = c.Search.IndexCourse(ctx, course)
	} else if wasPublished {
		err = c.Search.DeleteCourse(ctx, course.ID)
	}
	if err != nil {
		c.Logger.Warn(
			"search index not updated",
			zap.String("course", course.ID.Hex()),
			zap.Error(err),
		)
	}
}

// DeleteCourse removes the course, then its chapters and lessons. The calls
// are independent, a failure in between leaves orphans behind.
func (c *CourseService) DeleteCourse(ctx context.Context, idCourse string, claims *Claims) *res.ErrorRes {
	idObjCourse, errRes := parseID(idCourse, "course")
	if errRes != nil {
		return errRes
	}
	course, errRes := c.managedCourse(ctx, idObjCourse, claims)
	if errRes != nil {
		return errRes
	}
	if err := c.Courses.Delete(ctx, course.ID); err != nil {
		return c.unavailable(err)
	}
	if _, err := c.Chapters.DeleteByCourse(ctx, course.ID); err != nil {
		return c.unavailable(err)
	}
	if _, err := c.Lessons.DeleteByCourse(ctx, course.ID); err != nil {
		return c.unavailable(err)
	}
	if c.Search != nil && course.IsPublished {
		if err := c.Search.DeleteCourse(ctx, course.ID); err != nil {
			c.Logger.Warn("search index not updated", zap.Error(err))
		}
	}
	c.invalidateCourse(ctx, course.ID)
	c.publish(COURSE_DELETED, CourseDeletedEvent{
		Course:     course.ID.Hex(),
		Instructor: course.Instructor.Hex(),
	})
	return nil
}

func (c *CourseService) UploadThumbnail(
	ctx context.Context,
	idCourse string,
	file *multipart.FileHeader,
	claims *Claims,
) (*models.Course, *res.ErrorRes) {
	idObjCourse, errRes := parseID(idCourse, "course")
	if errRes != nil {
		return nil, errRes
	}
	course, errRes := c.managedCourse(ctx, idObjCourse, claims)
	if errRes != nil {
		return nil, errRes
	}
	key := fmt.Sprintf(
		"courses/%s/thumbnail-%s%s",
		course.ID.Hex(),
		uuid.New().String(),
		filepath.Ext(file.Filename),
	)
	location, errRes := c.uploadImage(ctx, key, file)
	if errRes != nil {
		return nil, errRes
	}
	course.Thumbnail = location
	course.UpdatedAt = nowFunc()
	if err := c.Courses.Save(ctx, course); err != nil {
		return nil, c.unavailable(err)
	}
	c.invalidateCourse(ctx, course.ID)
	return course, nil
}

func (d *Deps) uploadImage(ctx context.Context, key string, file *multipart.FileHeader) (string, *res.ErrorRes) {
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", res.BadRequest(fmt.Errorf("file must be an image"))
	}
	return d.upload(ctx, key, file, contentType)
}

func (d *Deps) upload(ctx context.Context, key string, file *multipart.FileHeader, contentType string) (string, *res.ErrorRes) {
	body, err := file.Open()
	if err != nil {
		return "", res.BadRequest(err)
	}
	defer body.Close()

	location, err := d.Storage.UploadFile(ctx, key, body, contentType)
	if err != nil {
		d.Logger.Error("upload failed", zap.String("key", key), zap.Error(err))
		return "", res.NewErrorRes(err, storageStatus(err))
	}
	return location, nil
}
