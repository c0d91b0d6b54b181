package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
)

type FeedbackService struct {
	*Deps
}

func (f *FeedbackService) CreateFeedback(ctx context.Context, feedback *forms.FeedbackForm, claims *Claims) (*models.Feedback, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	now := nowFunc()
	newFeedback := &models.Feedback{
		User:      idUser,
		Type:      feedback.Type,
		Message:   strings.TrimSpace(feedback.Message),
		Rating:    feedback.Rating,
		Status:    models.FEEDBACK_OPEN,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if feedback.Course != "" {
		idCourse, errRes := parseID(feedback.Course, "course")
		if errRes != nil {
			return nil, errRes
		}
		if _, errRes := f.findCourse(ctx, idCourse); errRes != nil {
			return nil, errRes
		}
		newFeedback.Course = &idCourse
	}
	id, err := f.Feedback.Insert(ctx, newFeedback)
	if err != nil {
		return nil, f.unavailable(err)
	}
	newFeedback.ID = id
	return newFeedback, nil
}

func (f *FeedbackService) find(ctx context.Context, query models.FeedbackQuery, page, limit int) (*FeedbackPage, *res.ErrorRes) {
	query.Skip, query.Limit = forms.Normalize(page, limit)
	feedback, total, err := f.Feedback.Find(ctx, query)
	if err != nil {
		return nil, f.unavailable(err)
	}
	if feedback == nil {
		feedback = []models.Feedback{}
	}
	return &FeedbackPage{
		Feedback: feedback,
		Page:     newPage(total, query.Skip, query.Limit),
	}, nil
}

// GetFeedback lists every feedback, admins only
func (f *FeedbackService) GetFeedback(ctx context.Context, query *forms.FeedbackQueryForm) (*FeedbackPage, *res.ErrorRes) {
	return f.find(ctx, models.FeedbackQuery{
		Status: query.Status,
		Type:   query.Type,
	}, query.Page, query.Limit)
}

func (f *FeedbackService) GetMyFeedback(ctx context.Context, query *forms.FeedbackQueryForm, claims *Claims) (*FeedbackPage, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	return f.find(ctx, models.FeedbackQuery{
		User:   idUser,
		Status: query.Status,
		Type:   query.Type,
	}, query.Page, query.Limit)
}

func (f *FeedbackService) UpdateFeedback(ctx context.Context, idFeedback string, update *forms.UpdateFeedbackForm) (*models.Feedback, *res.ErrorRes) {
	idObjFeedback, errRes := parseID(idFeedback, "feedback")
	if errRes != nil {
		return nil, errRes
	}
	feedback, err := f.Feedback.FindByID(ctx, idObjFeedback)
	if err != nil {
		return nil, f.unavailable(err)
	}
	if feedback == nil {
		return nil, res.NotFound(fmt.Errorf("feedback not found"))
	}
	feedback.Status = update.Status
	feedback.UpdatedAt = nowFunc()
	if err := f.Feedback.Save(ctx, feedback); err != nil {
		return nil, f.unavailable(err)
	}
	return feedback, nil
}
