package repository

import (
	"github.com/sefazor/bored-backend/internal/models"
	"gorm.io/gorm"
)

// MaxListLimit caps every activity listing regardless of what the caller asks for.
const MaxListLimit = 30

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) CreateTracked(activity *models.UserActivity) (*models.UserActivity, error) {
	result := r.db.Create(activity)
	if result.Error != nil {
		return nil, result.Error
	}
	return activity, nil
}

func (r *ActivityRepository) GetTrackedByID(id uint) (*models.UserActivity, error) {
	var activity models.UserActivity
	err := r.db.First(&activity, id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// ListByUserID returns the owner's tracked activities in insertion order,
// clamped to MaxListLimit.
func (r *ActivityRepository) ListByUserID(userID uint, limit int) ([]models.UserActivity, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	var activities []models.UserActivity
	err := r.db.Where("user_id = ?", userID).
		Order("id ASC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) MarkCompleted(id uint) error {
	return r.db.Model(&models.UserActivity{}).
		Where("id = ?", id).
		Update("is_completed", true).Error
}

func (r *ActivityRepository) CreateIgnored(activity *models.IgnoredActivity) (*models.IgnoredActivity, error) {
	result := r.db.Create(activity)
	if result.Error != nil {
		return nil, result.Error
	}
	return activity, nil
}

func (r *ActivityRepository) GetIgnored(userID uint, key int) (*models.IgnoredActivity, error) {
	var activity models.IgnoredActivity
	err := r.db.Where("user_id = ? AND key = ?", userID, key).First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) ListIgnoredByUserID(userID uint) ([]models.IgnoredActivity, error) {
	var activities []models.IgnoredActivity
	err := r.db.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&activities).Error
	return activities, err
}
