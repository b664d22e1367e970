package service

import (
	"github.com/sefazor/bored-backend/internal/models"
	"github.com/sefazor/bored-backend/internal/repository"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.SugaredLogger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.SugaredLogger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile is owner-scoped: only the acting user may view their own record.
func (s *UserService) GetProfile(acting *models.User, targetID uint) (*models.User, error) {
	if acting == nil || acting.ID != targetID {
		return nil, ErrUnauthorized
	}
	return s.userRepo.GetByID(targetID)
}

// DeleteAccount removes the acting user and cascades to everything they own.
func (s *UserService) DeleteAccount(acting *models.User) error {
	if acting == nil {
		return ErrUnauthorized
	}

	if err := s.userRepo.Delete(acting.ID); err != nil {
		return err
	}

	s.logger.Infow("user deleted", "user_id", acting.ID, "username", acting.Username)
	return nil
}
