package services

import (
	"context"
	"time"

	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Learner counters the rules are evaluated against
type LearnerStats struct {
	LessonsCompleted int
	CoursesCompleted int
	Streak           int
}

type AchievementRule struct {
	Code        string
	Title       string
	Description string
	Reached     func(stats LearnerStats) bool
}

var AchievementRules = []AchievementRule{
	{
		Code:        "first_lesson",
		Title:       "First steps",
		Description: "Complete your first lesson",
		Reached:     func(s LearnerStats) bool { return s.LessonsCompleted >= 1 },
	},
	{
		Code:        "lessons_10",
		Title:       "Getting serious",
		Description: "Complete 10 lessons",
		Reached:     func(s LearnerStats) bool { return s.LessonsCompleted >= 10 },
	},
	{
		Code:        "lessons_50",
		Title:       "Knowledge seeker",
		Description: "Complete 50 lessons",
		Reached:     func(s LearnerStats) bool { return s.LessonsCompleted >= 50 },
	},
	{
		Code:        "first_course",
		Title:       "Graduate",
		Description: "Complete your first course",
		Reached:     func(s LearnerStats) bool { return s.CoursesCompleted >= 1 },
	},
	{
		Code:        "courses_5",
		Title:       "Scholar",
		Description: "Complete 5 courses",
		Reached:     func(s LearnerStats) bool { return s.CoursesCompleted >= 5 },
	},
	{
		Code:        "streak_7",
		Title:       "On fire",
		Description: "Learn 7 days in a row",
		Reached:     func(s LearnerStats) bool { return s.Streak >= 7 },
	},
	{
		Code:        "streak_30",
		Title:       "Unstoppable",
		Description: "Learn 30 days in a row",
		Reached:     func(s LearnerStats) bool { return s.Streak >= 30 },
	},
}

// PendingAchievements returns the rules reached by stats that are not owned yet
func PendingAchievements(stats LearnerStats, owned []models.Achievement) []AchievementRule {
	has := make(map[string]bool, len(owned))
	for _, achievement := range owned {
		has[achievement.Code] = true
	}
	var pending []AchievementRule
	for _, rule := range AchievementRules {
		if !has[rule.Code] && rule.Reached(stats) {
			pending = append(pending, rule)
		}
	}
	return pending
}

type AchievementService struct {
	*Deps
}

func (a *AchievementService) GetAchievements(ctx context.Context, claims *Claims) ([]models.Achievement, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	achievements, err := a.Achievements.FindByUser(ctx, idUser)
	if err != nil {
		return nil, a.unavailable(err)
	}
	if achievements == nil {
		achievements = []models.Achievement{}
	}
	return achievements, nil
}

func (a *AchievementService) learnerStats(ctx context.Context, idUser primitive.ObjectID) (LearnerStats, []models.Progress, error) {
	completed, err := a.Progress.FindCompleted(ctx, idUser)
	if err != nil {
		return LearnerStats{}, nil, err
	}
	_, coursesCompleted, err := a.Enrollments.FindByUser(ctx, idUser, models.ENROLLMENT_COMPLETED, 0, 1)
	if err != nil {
		return LearnerStats{}, nil, err
	}
	return LearnerStats{
		LessonsCompleted: len(completed),
		CoursesCompleted: int(coursesCompleted),
		Streak:           ComputeStreak(completionDates(completed), nowFunc()).Current,
	}, completed, nil
}

func completionDates(progress []models.Progress) []time.Time {
	dates := make([]time.Time, 0, len(progress))
	for _, p := range progress {
		if p.CompletedAt != nil {
			dates = append(dates, *p.CompletedAt)
		}
	}
	return dates
}

// Evaluate awards every reached achievement the user does not own yet
func (a *AchievementService) Evaluate(ctx context.Context, idUser primitive.ObjectID) ([]models.Achievement, *res.ErrorRes) {
	stats, _, err := a.learnerStats(ctx, idUser)
	if err != nil {
		return nil, a.unavailable(err)
	}
	owned, err := a.Achievements.FindByUser(ctx, idUser)
	if err != nil {
		return nil, a.unavailable(err)
	}

	var awarded []models.Achievement
	for _, rule := range PendingAchievements(stats, owned) {
		achievement := models.Achievement{
			User:        idUser,
			Code:        rule.Code,
			Title:       rule.Title,
			Description: rule.Description,
			AwardedAt:   nowFunc(),
		}
		id, err := a.Achievements.Insert(ctx, &achievement)
		if err != nil {
			// Awarded by a concurrent request
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return awarded, a.unavailable(err)
		}
		achievement.ID = id
		awarded = append(awarded, achievement)

		a.Logger.Info(
			"achievement unlocked",
			zap.String("user", idUser.Hex()),
			zap.String("code", rule.Code),
		)
		a.publish(ACHIEVEMENT_UNLOCKED, AchievementUnlockedEvent{
			User:  idUser.Hex(),
			Code:  rule.Code,
			Title: rule.Title,
		})
	}
	return awarded, nil
}
