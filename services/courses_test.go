package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestCourseService_CreateRequiresInstructorProfile(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user, claims := e.addUser("Teacher", models.INSTRUCTOR)
	form := &forms.CourseForm{
		Title:    "Intro to Go",
		Category: "Programming",
		Level:    models.BEGINNER,
		Price:    floatPtr(0),
	}

	_, errRes := e.Courses.CreateCourse(ctx, form, claims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusForbidden, errRes.StatusCode)

	e.instructors.Insert(ctx, &models.Instructor{User: user.ID})
	course, errRes := e.Courses.CreateCourse(ctx, form, claims)
	require.Nil(t, errRes)
	assert.Equal(t, user.ID, course.Instructor)
	assert.Equal(t, "programming", course.Category)
	assert.Equal(t, "en", course.Language)
	assert.False(t, course.IsPublished)

	_, adminClaims := e.addUser("Admin", models.ADMIN)
	_, errRes = e.Courses.CreateCourse(ctx, form, adminClaims)
	assert.Nil(t, errRes)
}

func TestCourseService_GetCoursesPaginates(t *testing.T) {
	e := newEnv()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	for i := 0; i < 15; i++ {
		e.addCourse(instructor, 0)
	}
	draft, _ := e.addCourse(instructor, 0)
	draft.IsPublished = false
	e.courses.Save(context.Background(), draft)

	page, errRes := e.Courses.GetCourses(context.Background(), &forms.CourseQueryForm{Page: 2})
	require.Nil(t, errRes)
	assert.Len(t, page.Courses, 3)
	assert.Equal(t, int64(15), page.Total)
	assert.Equal(t, 2, page.Page.Page)
	assert.Equal(t, 2, page.Pages)

	_, errRes = e.Courses.GetCourses(context.Background(), &forms.CourseQueryForm{Instructor: "nope"})
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
}

func TestCourseService_GetCourseVisibility(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, ownerClaims := e.addUser("Teacher", models.INSTRUCTOR)
	_, studentClaims := e.addUser("Student", models.STUDENT)
	course, lessons := e.addCourse(instructor, 2)

	draftLesson := lessons[1]
	draftLesson.IsPublished = false
	e.lessons.Save(ctx, &draftLesson)

	detail, errRes := e.Courses.GetCourse(ctx, course.ID.Hex(), studentClaims)
	require.Nil(t, errRes)
	require.Len(t, detail.Chapters, 1)
	assert.Len(t, detail.Chapters[0].Lessons, 1)
	assert.Empty(t, detail.Chapters[0].Lessons[0].Content)
	assert.Equal(t, 1, detail.TotalLessons)
	assert.Equal(t, 10, detail.TotalDuration)
	assert.Equal(t, "Teacher", detail.InstructorUser.Name)
	assert.Contains(t, e.cache.data, courseCacheKey(course.ID))

	owned, errRes := e.Courses.GetCourse(ctx, course.ID.Hex(), ownerClaims)
	require.Nil(t, errRes)
	assert.Equal(t, 2, owned.TotalLessons)

	course.IsPublished = false
	e.courses.Save(ctx, course)
	e.cache.Delete(ctx, courseCacheKey(course.ID))
	_, errRes = e.Courses.GetCourse(ctx, course.ID.Hex(), studentClaims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)
	_, errRes = e.Courses.GetCourse(ctx, course.ID.Hex(), nil)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)
}

func TestCourseService_GetCourseServesCache(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	course, _ := e.addCourse(instructor, 1)

	_, errRes := e.Courses.GetCourse(ctx, course.ID.Hex(), nil)
	require.Nil(t, errRes)

	e.courses.err = errors.New("mongo down")
	detail, errRes := e.Courses.GetCourse(ctx, course.ID.Hex(), nil)
	require.Nil(t, errRes)
	assert.Equal(t, course.Title, detail.Title)
}

func TestCourseService_StoreFailureIsUnavailable(t *testing.T) {
	e := newEnv()
	e.courses.err = errors.New("mongo down")

	_, errRes := e.Courses.GetCourse(context.Background(), primitive.NewObjectID().Hex(), nil)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusServiceUnavailable, errRes.StatusCode)

	_, errRes = e.Courses.GetCourse(context.Background(), "bad", nil)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
}

func TestCourseService_PublishRequiresPublishedLesson(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	index := newFakeIndex()
	e.deps.Search = index
	instructor, claims := e.addUser("Teacher", models.INSTRUCTOR)
	course, _ := e.addCourse(instructor, 0)
	course.IsPublished = false
	e.courses.Save(ctx, course)

	_, errRes := e.Courses.UpdateCourse(ctx, course.ID.Hex(), &forms.UpdateCourseForm{IsPublished: boolPtr(true)}, claims)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)

	chapters, _ := e.chapters.FindByCourse(ctx, course.ID, false)
	e.lessons.Insert(ctx, &models.Lesson{Course: course.ID, Chapter: chapters[0].ID, IsPublished: true})
	updated, errRes := e.Courses.UpdateCourse(ctx, course.ID.Hex(), &forms.UpdateCourseForm{
		IsPublished: boolPtr(true),
		Title:       strPtr("Go in depth"),
	}, claims)
	require.Nil(t, errRes)
	assert.True(t, updated.IsPublished)
	assert.Equal(t, "Go in depth", updated.Title)
	assert.True(t, index.indexed[course.ID])
	assert.Contains(t, e.cache.deleted, courseCacheKey(course.ID))

	_, errRes = e.Courses.UpdateCourse(ctx, course.ID.Hex(), &forms.UpdateCourseForm{IsPublished: boolPtr(false)}, claims)
	require.Nil(t, errRes)
	assert.False(t, index.indexed[course.ID])
}

func TestCourseService_UpdateRequiresOwner(t *testing.T) {
	e := newEnv()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	_, other := e.addUser("Other", models.INSTRUCTOR)
	_, admin := e.addUser("Admin", models.ADMIN)
	course, _ := e.addCourse(instructor, 1)
	update := &forms.UpdateCourseForm{Title: strPtr("Mine now")}

	_, errRes := e.Courses.UpdateCourse(context.Background(), course.ID.Hex(), update, other)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusForbidden, errRes.StatusCode)

	_, errRes = e.Courses.UpdateCourse(context.Background(), course.ID.Hex(), update, admin)
	assert.Nil(t, errRes)
}

func TestCourseService_DeleteCascades(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, claims := e.addUser("Teacher", models.INSTRUCTOR)
	course, _ := e.addCourse(instructor, 3)
	other, _ := e.addCourse(instructor, 1)

	errRes := e.Courses.DeleteCourse(ctx, course.ID.Hex(), claims)
	require.Nil(t, errRes)

	assert.Len(t, e.courses.items, 1)
	assert.Len(t, e.chapters.items, 1)
	assert.Len(t, e.lessons.items, 1)
	assert.Equal(t, other.ID, e.lessons.items[0].Course)
	assert.Equal(t, []string{COURSE_DELETED}, e.events.subjects())
}

func TestCourseService_SearchCourses(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	first, _ := e.addCourse(instructor, 0)
	second, _ := e.addCourse(instructor, 0)
	second.Title = "Rust for gophers"
	e.courses.Save(ctx, second)

	// Without index: mongo search
	courses, errRes := e.Courses.SearchCourses(ctx, "rust", 0)
	require.Nil(t, errRes)
	require.Len(t, courses, 1)
	assert.Equal(t, second.ID, courses[0].ID)

	// Index ranking is kept
	index := newFakeIndex()
	index.results = []primitive.ObjectID{second.ID, first.ID}
	e.deps.Search = index
	courses, errRes = e.Courses.SearchCourses(ctx, "go", 0)
	require.Nil(t, errRes)
	require.Len(t, courses, 2)
	assert.Equal(t, second.ID, courses[0].ID)
	assert.Equal(t, first.ID, courses[1].ID)

	// Index failure falls back
	index.err = errors.New("es down")
	courses, errRes = e.Courses.SearchCourses(ctx, "rust", 0)
	require.Nil(t, errRes)
	assert.Len(t, courses, 1)

	_, errRes = e.Courses.SearchCourses(ctx, "  ", 0)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
}

func newFileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	part.Write(content)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File[field][0]
}

func TestCourseService_UploadThumbnail(t *testing.T) {
	e := newEnv()
	instructor, claims := e.addUser("Teacher", models.INSTRUCTOR)
	course, _ := e.addCourse(instructor, 0)

	_, errRes := e.Courses.UploadThumbnail(
		context.Background(),
		course.ID.Hex(),
		newFileHeader(t, "thumbnail", "doc.pdf", "application/pdf", []byte("%PDF")),
		claims,
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)

	updated, errRes := e.Courses.UploadThumbnail(
		context.Background(),
		course.ID.Hex(),
		newFileHeader(t, "thumbnail", "cover.png", "image/png", []byte("png")),
		claims,
	)
	require.Nil(t, errRes)
	assert.Contains(t, updated.Thumbnail, "https://bucket.local/courses/"+course.ID.Hex())
	assert.Len(t, e.storage.files, 1)
}

func TestCourseService_UploadWithoutStorage(t *testing.T) {
	e := newEnv()
	e.deps.Storage = nopStorage{}
	instructor, claims := e.addUser("Teacher", models.INSTRUCTOR)
	course, _ := e.addCourse(instructor, 0)

	_, errRes := e.Courses.UploadThumbnail(
		context.Background(),
		course.ID.Hex(),
		newFileHeader(t, "thumbnail", "cover.png", "image/png", []byte("png")),
		claims,
	)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusServiceUnavailable, errRes.StatusCode)
}

func TestCourseService_LookupCourse(t *testing.T) {
	e := newEnv()
	instructor, _ := e.addUser("Teacher", models.INSTRUCTOR)
	course, _ := e.addCourse(instructor, 0)

	response, err := e.Courses.LookupCourse(
		context.Background(),
		[]byte(`{"id":"1","data":{"_id":"`+course.ID.Hex()+`"}}`),
	)
	require.NoError(t, err)
	assert.Contains(t, string(response), `"title":"Intro to Go"`)

	_, err = e.Courses.LookupCourse(context.Background(), []byte(`{"id":"1","data":{}}`))
	assert.Error(t, err)
}
