package services

import (
	"context"

	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RECENT_ENROLLMENTS = 5

type DashboardService struct {
	*Deps
	achievements *AchievementService
}

func (d *DashboardService) GetDashboard(ctx context.Context, claims *Claims) (*Dashboard, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	enrollments, _, err := d.Enrollments.FindByUser(ctx, idUser, "", 0, 0)
	if err != nil {
		return nil, d.unavailable(err)
	}
	progress, err := d.Progress.FindByUser(ctx, idUser, primitive.NilObjectID)
	if err != nil {
		return nil, d.unavailable(err)
	}
	achievements, errRes := d.achievements.GetAchievements(ctx, claims)
	if errRes != nil {
		return nil, errRes
	}

	dashboard := &Dashboard{
		Enrolled:     len(enrollments),
		Achievements: achievements,
	}
	for _, enrollment := range enrollments {
		switch enrollment.Status {
		case models.ENROLLMENT_COMPLETED:
			dashboard.Completed++
		case models.ENROLLMENT_ACTIVE, models.ENROLLMENT_PAUSED:
			dashboard.InProgress++
		}
	}
	seconds := 0
	var completions []models.Progress
	for _, p := range progress {
		seconds += p.TimeSpent
		if p.Completed {
			dashboard.LessonsCompleted++
			completions = append(completions, p)
		}
	}
	dashboard.MinutesLearned = seconds / 60
	dashboard.Streak = ComputeStreak(completionDates(completions), nowFunc())

	recent := enrollments
	if len(recent) > RECENT_ENROLLMENTS {
		recent = recent[:RECENT_ENROLLMENTS]
	}
	if dashboard.Recent, errRes = d.withCourses(ctx, recent); errRes != nil {
		return nil, errRes
	}
	return dashboard, nil
}
