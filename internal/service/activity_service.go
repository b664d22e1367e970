package service

import (
	"errors"
	"time"

	"github.com/sefazor/bored-backend/internal/models"
	"github.com/sefazor/bored-backend/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ActivityService struct {
	activityRepo *repository.ActivityRepository
	logger       *zap.SugaredLogger
}

func NewActivityService(activityRepo *repository.ActivityRepository, logger *zap.SugaredLogger) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// ListActivities returns the owner's tracked activities in insertion order.
// Only the owner may list their own.
func (s *ActivityService) ListActivities(acting *models.User, ownerID uint, limit int) ([]models.UserActivity, error) {
	if acting == nil || acting.ID != ownerID {
		return nil, ErrUnauthorized
	}
	return s.activityRepo.ListByUserID(ownerID, limit)
}

// SaveActivity persists a suggestion under the acting user's id, no matter
// what the payload claims about ownership.
func (s *ActivityService) SaveActivity(acting *models.User, req models.SaveActivityRequest) (*models.UserActivity, error) {
	if acting == nil {
		return nil, ErrUnauthorized
	}

	participants := req.Participants
	if participants == 0 {
		participants = 1
	}

	activity := &models.UserActivity{
		Key:          req.Key,
		Title:        req.Title,
		Type:         req.Type,
		Participants: participants,
		Price:        req.Price,
		Timestamp:    time.Now().UTC(),
		IsCompleted:  false,
		Note:         req.Note,
		UserID:       acting.ID,
	}

	saved, err := s.activityRepo.CreateTracked(activity)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("activity saved", "user_id", acting.ID, "key", req.Key)
	return saved, nil
}

// IgnoreActivity records a dismissed suggestion. Ignoring the same key twice
// is not an error: the existing row is returned.
func (s *ActivityService) IgnoreActivity(acting *models.User, req models.IgnoreActivityRequest) (*models.IgnoredActivity, error) {
	if acting == nil {
		return nil, ErrUnauthorized
	}

	activity := &models.IgnoredActivity{
		Title:  req.Title,
		Key:    req.Key,
		UserID: acting.ID,
	}

	created, err := s.activityRepo.CreateIgnored(activity)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.activityRepo.GetIgnored(acting.ID, req.Key)
		}
		return nil, err
	}

	return created, nil
}

func (s *ActivityService) ListIgnored(acting *models.User, ownerID uint) ([]models.IgnoredActivity, error) {
	if acting == nil || acting.ID != ownerID {
		return nil, ErrUnauthorized
	}
	return s.activityRepo.ListIgnoredByUserID(ownerID)
}

// CompleteActivity flips the completion flag on one of the acting user's
// tracked activities.
func (s *ActivityService) CompleteActivity(acting *models.User, activityID uint) (*models.UserActivity, error) {
	if acting == nil {
		return nil, ErrUnauthorized
	}

	activity, err := s.activityRepo.GetTrackedByID(activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	if activity.UserID != acting.ID {
		return nil, ErrUnauthorized
	}

	if err := s.activityRepo.MarkCompleted(activity.ID); err != nil {
		return nil, err
	}

	activity.IsCompleted = true
	return activity, nil
}
