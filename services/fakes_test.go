package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func window[T any](items []T, skip, limit int64) []T {
	if skip >= int64(len(items)) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}

type memUsers struct{ items []models.User }

func (m *memUsers) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	for _, u := range m.items {
		if u.Email == user.Email {
			return primitive.NilObjectID, fmt.Errorf("duplicate email")
		}
	}
	user.ID = primitive.NewObjectID()
	m.items = append(m.items, *user)
	return user.ID, nil
}

func (m *memUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range m.items {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.items {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	var users []models.User
	for _, id := range ids {
		for _, u := range m.items {
			if u.ID == id {
				users = append(users, u)
			}
		}
	}
	return users, nil
}

func (m *memUsers) Save(_ context.Context, user *models.User) error {
	for i := range m.items {
		if m.items[i].ID == user.ID {
			m.items[i] = *user
		}
	}
	return nil
}

type memCourses struct {
	items []models.Course
	err   error
}

func (m *memCourses) Insert(_ context.Context, course *models.Course) (primitive.ObjectID, error) {
	course.ID = primitive.NewObjectID()
	m.items = append(m.items, *course)
	return course.ID, nil
}

func (m *memCourses) FindByID(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.items {
		if c.ID == id {
			course := c
			return &course, nil
		}
	}
	return nil, nil
}

func (m *memCourses) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Course, error) {
	var courses []models.Course
	for _, c := range m.items {
		for _, id := range ids {
			if c.ID == id {
				courses = append(courses, c)
				break
			}
		}
	}
	return courses, nil
}

func (m *memCourses) Find(_ context.Context, q models.CourseQuery) ([]models.CourseWLookup, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var matched []models.CourseWLookup
	for _, c := range m.items {
		if q.OnlyPublished && !c.IsPublished {
			continue
		}
		if q.Category != "" && c.Category != q.Category {
			continue
		}
		if q.Level != "" && c.Level != q.Level {
			continue
		}
		if !q.Instructor.IsZero() && c.Instructor != q.Instructor {
			continue
		}
		if q.MinRating > 0 && c.RatingAverage < q.MinRating {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(c.Title+" "+c.Description), strings.ToLower(q.Search)) {
			continue
		}
		if len(q.IDs) > 0 {
			found := false
			for _, id := range q.IDs {
				found = found || id == c.ID
			}
			if !found {
				continue
			}
		}
		matched = append(matched, models.CourseWLookup{Course: c})
	}
	if q.Sort == models.SORT_PRICE_ASC {
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	}
	return window(matched, q.Skip, q.Limit), int64(len(matched)), nil
}

func (m *memCourses) FindByInstructor(_ context.Context, instructor primitive.ObjectID, onlyPublished bool) ([]models.Course, error) {
	var courses []models.Course
	for _, c := range m.items {
		if c.Instructor == instructor && (!onlyPublished || c.IsPublished) {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (m *memCourses) Save(_ context.Context, course *models.Course) error {
	for i := range m.items {
		if m.items[i].ID == course.ID {
			m.items[i] = *course
		}
	}
	return nil
}

func (m *memCourses) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memCourses) IncEnrollmentCount(_ context.Context, id primitive.ObjectID, delta int) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].EnrollmentCount += delta
		}
	}
	return nil
}

func (m *memCourses) SetRating(_ context.Context, id primitive.ObjectID, stats models.RatingStats) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].RatingAverage = stats.Average
			m.items[i].RatingCount = stats.Count
		}
	}
	return nil
}

type memChapters struct{ items []models.Chapter }

func (m *memChapters) Insert(_ context.Context, chapter *models.Chapter) (primitive.ObjectID, error) {
	chapter.ID = primitive.NewObjectID()
	m.items = append(m.items, *chapter)
	return chapter.ID, nil
}

func (m *memChapters) FindByID(_ context.Context, id primitive.ObjectID) (*models.Chapter, error) {
	for _, c := range m.items {
		if c.ID == id {
			chapter := c
			return &chapter, nil
		}
	}
	return nil, nil
}

func (m *memChapters) FindByCourse(_ context.Context, course primitive.ObjectID, onlyPublished bool) ([]models.Chapter, error) {
	var chapters []models.Chapter
	for _, c := range m.items {
		if c.Course == course && (!onlyPublished || c.IsPublished) {
			chapters = append(chapters, c)
		}
	}
	sort.SliceStable(chapters, func(i, j int) bool { return chapters[i].Position < chapters[j].Position })
	return chapters, nil
}

func (m *memChapters) Count(_ context.Context, course primitive.ObjectID) (int64, error) {
	var count int64
	for _, c := range m.items {
		if c.Course == course {
			count++
		}
	}
	return count, nil
}

func (m *memChapters) Save(_ context.Context, chapter *models.Chapter) error {
	for i := range m.items {
		if m.items[i].ID == chapter.ID {
			m.items[i] = *chapter
		}
	}
	return nil
}

func (m *memChapters) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memChapters) DeleteByCourse(_ context.Context, course primitive.ObjectID) (int64, error) {
	var kept []models.Chapter
	for _, c := range m.items {
		if c.Course != course {
			kept = append(kept, c)
		}
	}
	deleted := int64(len(m.items) - len(kept))
	m.items = kept
	return deleted, nil
}

func (m *memChapters) SetPositions(_ context.Context, course primitive.ObjectID, ids []primitive.ObjectID) error {
	for position, id := range ids {
		for i := range m.items {
			if m.items[i].ID == id && m.items[i].Course == course {
				m.items[i].Position = position
			}
		}
	}
	return nil
}

type memLessons struct{ items []models.Lesson }

func (m *memLessons) Insert(_ context.Context, lesson *models.Lesson) (primitive.ObjectID, error) {
	lesson.ID = primitive.NewObjectID()
	m.items = append(m.items, *lesson)
	return lesson.ID, nil
}

func (m *memLessons) FindByID(_ context.Context, id primitive.ObjectID) (*models.Lesson, error) {
	for _, l := range m.items {
		if l.ID == id {
			lesson := l
			lesson.Attachments = append([]models.Attachment{}, l.Attachments...)
			return &lesson, nil
		}
	}
	return nil, nil
}

func (m *memLessons) filter(cond func(l models.Lesson) bool) []models.Lesson {
	var lessons []models.Lesson
	for _, l := range m.items {
		if cond(l) {
			lessons = append(lessons, l)
		}
	}
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].Position < lessons[j].Position })
	return lessons
}

func (m *memLessons) FindByChapter(_ context.Context, chapter primitive.ObjectID, onlyPublished bool) ([]models.Lesson, error) {
	return m.filter(func(l models.Lesson) bool {
		return l.Chapter == chapter && (!onlyPublished || l.IsPublished)
	}), nil
}

func (m *memLessons) FindByCourse(_ context.Context, course primitive.ObjectID, onlyPublished bool) ([]models.Lesson, error) {
	return m.filter(func(l models.Lesson) bool {
		return l.Course == course && (!onlyPublished || l.IsPublished)
	}), nil
}

func (m *memLessons) CountByChapter(_ context.Context, chapter primitive.ObjectID) (int64, error) {
	return int64(len(m.filter(func(l models.Lesson) bool { return l.Chapter == chapter }))), nil
}

func (m *memLessons) Save(_ context.Context, lesson *models.Lesson) error {
	for i := range m.items {
		if m.items[i].ID == lesson.ID {
			m.items[i] = *lesson
		}
	}
	return nil
}

func (m *memLessons) Delete(_ context.Context, id primitive.ObjectID) error {
	m.items = m.filter(func(l models.Lesson) bool { return l.ID != id })
	return nil
}

func (m *memLessons) DeleteByChapter(_ context.Context, chapter primitive.ObjectID) (int64, error) {
	before := len(m.items)
	m.items = m.filter(func(l models.Lesson) bool { return l.Chapter != chapter })
	return int64(before - len(m.items)), nil
}

func (m *memLessons) DeleteByCourse(_ context.Context, course primitive.ObjectID) (int64, error) {
	before := len(m.items)
	m.items = m.filter(func(l models.Lesson) bool { return l.Course != course })
	return int64(before - len(m.items)), nil
}

type memEnrollments struct {
	items []models.Enrollment
	// afterFind runs once after FindByUserAndCourse copied the document
	afterFind func()
}

func (m *memEnrollments) Insert(_ context.Context, enrollment *models.Enrollment) (primitive.ObjectID, error) {
	enrollment.ID = primitive.NewObjectID()
	m.items = append(m.items, *enrollment)
	return enrollment.ID, nil
}

func (m *memEnrollments) FindByID(_ context.Context, id primitive.ObjectID) (*models.Enrollment, error) {
	for _, e := range m.items {
		if e.ID == id {
			enrollment := e
			return &enrollment, nil
		}
	}
	return nil, nil
}

func (m *memEnrollments) FindByUserAndCourse(_ context.Context, user, course primitive.ObjectID) (*models.Enrollment, error) {
	for _, e := range m.items {
		if e.User == user && e.Course == course {
			enrollment := e
			if hook := m.afterFind; hook != nil {
				m.afterFind = nil
				hook()
			}
			return &enrollment, nil
		}
	}
	return nil, nil
}

func (m *memEnrollments) FindByUser(_ context.Context, user primitive.ObjectID, status string, skip, limit int64) ([]models.Enrollment, int64, error) {
	var enrollments []models.Enrollment
	for _, e := range m.items {
		if e.User == user && (status == "" || e.Status == status) {
			enrollments = append(enrollments, e)
		}
	}
	sort.SliceStable(enrollments, func(i, j int) bool {
		return enrollments[i].LastAccessedAt.After(enrollments[j].LastAccessedAt)
	})
	return window(enrollments, skip, limit), int64(len(enrollments)), nil
}

func (m *memEnrollments) FindByCourse(_ context.Context, course primitive.ObjectID) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	for _, e := range m.items {
		if e.Course == course {
			enrollments = append(enrollments, e)
		}
	}
	return enrollments, nil
}

func (m *memEnrollments) CountByCourses(_ context.Context, courses []primitive.ObjectID) (int64, error) {
	var count int64
	for _, e := range m.items {
		for _, c := range courses {
			if e.Course == c {
				count++
			}
		}
	}
	return count, nil
}

func (m *memEnrollments) Save(_ context.Context, enrollment *models.Enrollment) error {
	for i := range m.items {
		if m.items[i].ID == enrollment.ID {
			m.items[i] = *enrollment
		}
	}
	return nil
}

func (m *memEnrollments) Touch(_ context.Context, id primitive.ObjectID, at time.Time) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].LastAccessedAt = at
		}
	}
	return nil
}

func (m *memEnrollments) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type memProgress struct{ items []models.Progress }

func (m *memProgress) FindByUserAndLesson(_ context.Context, user, lesson primitive.ObjectID) (*models.Progress, error) {
	for _, p := range m.items {
		if p.User == user && p.Lesson == lesson {
			progress := p
			return &progress, nil
		}
	}
	return nil, nil
}

func (m *memProgress) FindByUser(_ context.Context, user, course primitive.ObjectID) ([]models.Progress, error) {
	var progress []models.Progress
	for _, p := range m.items {
		if p.User == user && (course.IsZero() || p.Course == course) {
			progress = append(progress, p)
		}
	}
	return progress, nil
}

func (m *memProgress) FindByEnrollment(_ context.Context, enrollment primitive.ObjectID) ([]models.Progress, error) {
	var progress []models.Progress
	for _, p := range m.items {
		if p.Enrollment == enrollment {
			progress = append(progress, p)
		}
	}
	return progress, nil
}

func (m *memProgress) FindCompleted(_ context.Context, user primitive.ObjectID) ([]models.Progress, error) {
	var progress []models.Progress
	for _, p := range m.items {
		if p.User == user && p.Completed {
			progress = append(progress, p)
		}
	}
	sort.SliceStable(progress, func(i, j int) bool {
		return progress[i].CompletedAt.After(*progress[j].CompletedAt)
	})
	return progress, nil
}

func (m *memProgress) Insert(_ context.Context, progress *models.Progress) (primitive.ObjectID, error) {
	progress.ID = primitive.NewObjectID()
	m.items = append(m.items, *progress)
	return progress.ID, nil
}

func (m *memProgress) Save(_ context.Context, progress *models.Progress) error {
	for i := range m.items {
		if m.items[i].ID == progress.ID {
			m.items[i] = *progress
		}
	}
	return nil
}

func (m *memProgress) DeleteByEnrollment(_ context.Context, enrollment primitive.ObjectID) (int64, error) {
	var kept []models.Progress
	for _, p := range m.items {
		if p.Enrollment != enrollment {
			kept = append(kept, p)
		}
	}
	deleted := int64(len(m.items) - len(kept))
	m.items = kept
	return deleted, nil
}

type memReviews struct {
	items []models.Review
	users *memUsers
}

func (m *memReviews) Insert(_ context.Context, review *models.Review) (primitive.ObjectID, error) {
	review.ID = primitive.NewObjectID()
	m.items = append(m.items, *review)
	return review.ID, nil
}

func (m *memReviews) FindByID(_ context.Context, id primitive.ObjectID) (*models.Review, error) {
	for _, r := range m.items {
		if r.ID == id {
			review := r
			return &review, nil
		}
	}
	return nil, nil
}

func (m *memReviews) FindByUserAndCourse(_ context.Context, user, course primitive.ObjectID) (*models.Review, error) {
	for _, r := range m.items {
		if r.User == user && r.Course == course {
			review := r
			return &review, nil
		}
	}
	return nil, nil
}

func (m *memReviews) FindByCourse(ctx context.Context, course primitive.ObjectID, skip, limit int64) ([]models.ReviewWLookup, int64, error) {
	var reviews []models.ReviewWLookup
	for _, r := range m.items {
		if r.Course != course {
			continue
		}
		review := models.ReviewWLookup{Review: r}
		if m.users != nil {
			if user, _ := m.users.FindByID(ctx, r.User); user != nil {
				author := user.Simple()
				review.Author = &author
			}
		}
		reviews = append(reviews, review)
	}
	return window(reviews, skip, limit), int64(len(reviews)), nil
}

func (m *memReviews) Save(_ context.Context, review *models.Review) error {
	for i := range m.items {
		if m.items[i].ID == review.ID {
			m.items[i] = *review
		}
	}
	return nil
}

func (m *memReviews) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memReviews) Stats(_ context.Context, courses []primitive.ObjectID) (models.RatingStats, error) {
	var stats models.RatingStats
	total := 0
	for _, r := range m.items {
		for _, c := range courses {
			if r.Course == c {
				stats.Count++
				total += r.Rating
			}
		}
	}
	if stats.Count > 0 {
		stats.Average = float64(total) / float64(stats.Count)
	}
	return stats, nil
}

type memInstructors struct{ items []models.Instructor }

func (m *memInstructors) Insert(_ context.Context, instructor *models.Instructor) (primitive.ObjectID, error) {
	instructor.ID = primitive.NewObjectID()
	m.items = append(m.items, *instructor)
	return instructor.ID, nil
}

func (m *memInstructors) FindByID(_ context.Context, id primitive.ObjectID) (*models.Instructor, error) {
	for _, i := range m.items {
		if i.ID == id {
			instructor := i
			return &instructor, nil
		}
	}
	return nil, nil
}

func (m *memInstructors) FindByUser(_ context.Context, user primitive.ObjectID) (*models.Instructor, error) {
	for _, i := range m.items {
		if i.User == user {
			instructor := i
			return &instructor, nil
		}
	}
	return nil, nil
}

func (m *memInstructors) Find(_ context.Context, skip, limit int64) ([]models.InstructorWLookup, int64, error) {
	var instructors []models.InstructorWLookup
	for _, i := range m.items {
		instructors = append(instructors, models.InstructorWLookup{Instructor: i})
	}
	return window(instructors, skip, limit), int64(len(instructors)), nil
}

func (m *memInstructors) Save(_ context.Context, instructor *models.Instructor) error {
	for i := range m.items {
		if m.items[i].ID == instructor.ID {
			m.items[i] = *instructor
		}
	}
	return nil
}

type memProfiles struct{ items []models.UserProfile }

func (m *memProfiles) FindByUser(_ context.Context, user primitive.ObjectID) (*models.UserProfile, error) {
	for _, p := range m.items {
		if p.User == user {
			profile := p
			return &profile, nil
		}
	}
	return nil, nil
}

func (m *memProfiles) Insert(_ context.Context, profile *models.UserProfile) (primitive.ObjectID, error) {
	profile.ID = primitive.NewObjectID()
	m.items = append(m.items, *profile)
	return profile.ID, nil
}

func (m *memProfiles) Save(_ context.Context, profile *models.UserProfile) error {
	for i := range m.items {
		if m.items[i].ID == profile.ID {
			m.items[i] = *profile
		}
	}
	return nil
}

type memSettings struct{ items []models.UserSettings }

func (m *memSettings) FindByUser(_ context.Context, user primitive.ObjectID) (*models.UserSettings, error) {
	for _, s := range m.items {
		if s.User == user {
			settings := s
			return &settings, nil
		}
	}
	return nil, nil
}

func (m *memSettings) Insert(_ context.Context, settings *models.UserSettings) (primitive.ObjectID, error) {
	settings.ID = primitive.NewObjectID()
	m.items = append(m.items, *settings)
	return settings.ID, nil
}

func (m *memSettings) Save(_ context.Context, settings *models.UserSettings) error {
	for i := range m.items {
		if m.items[i].ID == settings.ID {
			m.items[i] = *settings
		}
	}
	return nil
}

type memFeedback struct{ items []models.Feedback }

func (m *memFeedback) Insert(_ context.Context, feedback *models.Feedback) (primitive.ObjectID, error) {
	feedback.ID = primitive.NewObjectID()
	m.items = append(m.items, *feedback)
	return feedback.ID, nil
}

func (m *memFeedback) FindByID(_ context.Context, id primitive.ObjectID) (*models.Feedback, error) {
	for _, f := range m.items {
		if f.ID == id {
			feedback := f
			return &feedback, nil
		}
	}
	return nil, nil
}

func (m *memFeedback) Find(_ context.Context, q models.FeedbackQuery) ([]models.Feedback, int64, error) {
	var feedback []models.Feedback
	for _, f := range m.items {
		if !q.User.IsZero() && f.User != q.User {
			continue
		}
		if q.Status != "" && f.Status != q.Status {
			continue
		}
		if q.Type != "" && f.Type != q.Type {
			continue
		}
		feedback = append(feedback, f)
	}
	return window(feedback, q.Skip, q.Limit), int64(len(feedback)), nil
}

func (m *memFeedback) Save(_ context.Context, feedback *models.Feedback) error {
	for i := range m.items {
		if m.items[i].ID == feedback.ID {
			m.items[i] = *feedback
		}
	}
	return nil
}

type memAchievements struct{ items []models.Achievement }

func (m *memAchievements) FindByUser(_ context.Context, user primitive.ObjectID) ([]models.Achievement, error) {
	var achievements []models.Achievement
	for _, a := range m.items {
		if a.User == user {
			achievements = append(achievements, a)
		}
	}
	return achievements, nil
}

func (m *memAchievements) Insert(_ context.Context, achievement *models.Achievement) (primitive.ObjectID, error) {
	achievement.ID = primitive.NewObjectID()
	m.items = append(m.items, *achievement)
	return achievement.ID, nil
}

type publishedEvent struct {
	Subject string
	Data    interface{}
}

type recordPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (r *recordPublisher) PublishEncode(subject string, data interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, publishedEvent{subject, data})
	return nil
}

func (r *recordPublisher) subjects() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	subjects := make([]string, 0, len(r.events))
	for _, e := range r.events {
		subjects = append(subjects, e.Subject)
	}
	return subjects
}

type memStorage struct {
	mu      sync.Mutex
	files   map[string][]byte
	deleted []string
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (m *memStorage) UploadFile(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = data
	return "https://bucket.local/" + key, nil
}

func (m *memStorage) GetFile(_ context.Context, key string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[key]
	if !ok {
		return nil, fmt.Errorf("no such key %s", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStorage) DeleteFile(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, key)
	m.deleted = append(m.deleted, key)
	return nil
}

type memCache struct {
	data    map[string][]byte
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memCache) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.data, key)
		m.deleted = append(m.deleted, key)
	}
	return nil
}

type fakeIndex struct {
	indexed map[primitive.ObjectID]bool
	results []primitive.ObjectID
	err     error
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{indexed: make(map[primitive.ObjectID]bool)}
}

func (f *fakeIndex) IndexCourse(_ context.Context, course *models.Course) error {
	f.indexed[course.ID] = true
	return nil
}

func (f *fakeIndex) DeleteCourse(_ context.Context, id primitive.ObjectID) error {
	delete(f.indexed, id)
	return nil
}

func (f *fakeIndex) SearchCourses(context.Context, string, int) ([]primitive.ObjectID, error) {
	return f.results, f.err
}

// env bundles the services with their in-memory stores
type env struct {
	*Services
	deps         *Deps
	users        *memUsers
	courses      *memCourses
	chapters     *memChapters
	lessons      *memLessons
	enrollments  *memEnrollments
	progress     *memProgress
	reviews      *memReviews
	instructors  *memInstructors
	profiles     *memProfiles
	settings     *memSettings
	feedback     *memFeedback
	achievements *memAchievements
	events       *recordPublisher
	storage      *memStorage
	cache        *memCache
}

func newEnv() *env {
	e := &env{
		users:        &memUsers{},
		courses:      &memCourses{},
		chapters:     &memChapters{},
		lessons:      &memLessons{},
		enrollments:  &memEnrollments{},
		progress:     &memProgress{},
		instructors:  &memInstructors{},
		profiles:     &memProfiles{},
		settings:     &memSettings{},
		feedback:     &memFeedback{},
		achievements: &memAchievements{},
		events:       &recordPublisher{},
		storage:      newMemStorage(),
		cache:        newMemCache(),
	}
	e.reviews = &memReviews{users: e.users}
	e.deps = &Deps{
		Repositories: Repositories{
			Users:        e.users,
			Courses:      e.courses,
			Chapters:     e.chapters,
			Lessons:      e.lessons,
			Enrollments:  e.enrollments,
			Progress:     e.progress,
			Reviews:      e.reviews,
			Instructors:  e.instructors,
			Profiles:     e.profiles,
			Settings:     e.settings,
			Feedback:     e.feedback,
			Achievements: e.achievements,
		},
		Events:  e.events,
		Storage: e.storage,
		Cache:   e.cache,
		Tokens:  NewTokenManager("test-secret", 1),
	}
	e.Services = NewServices(e.deps)
	return e
}

func (e *env) addUser(name, role string) (*models.User, *Claims) {
	user := &models.User{
		Name:  name,
		Email: strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		Role:  role,
	}
	e.users.Insert(context.Background(), user)
	return user, &Claims{ID: user.ID.Hex(), Name: name, UserType: role}
}

// addCourse creates a published course of the instructor with a chapter and
// the given number of published lessons
func (e *env) addCourse(instructor *models.User, lessons int) (*models.Course, []models.Lesson) {
	ctx := context.Background()
	course := &models.Course{
		Title:       "Intro to Go",
		Description: "Learn Go",
		Instructor:  instructor.ID,
		Category:    "programming",
		Level:       models.BEGINNER,
		IsPublished: true,
		Tags:        []string{},
	}
	e.courses.Insert(ctx, course)
	chapter := &models.Chapter{Course: course.ID, Title: "Basics", IsPublished: true}
	e.chapters.Insert(ctx, chapter)

	created := make([]models.Lesson, 0, lessons)
	for i := 0; i < lessons; i++ {
		lesson := &models.Lesson{
			Course:      course.ID,
			Chapter:     chapter.ID,
			Title:       fmt.Sprintf("Lesson %d", i+1),
			Content:     "body",
			Duration:    10,
			Position:    i,
			IsPublished: true,
		}
		e.lessons.Insert(ctx, lesson)
		created = append(created, *lesson)
	}
	return course, created
}

func (e *env) enroll(user *models.User, course *models.Course, status string) *models.Enrollment {
	enrollment := &models.Enrollment{
		User:   user.ID,
		Course: course.ID,
		Status: status,
	}
	e.enrollments.Insert(context.Background(), enrollment)
	return enrollment
}
