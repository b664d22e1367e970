package service

import (
	"errors"

	"github.com/sefazor/bored-backend/internal/models"
	"github.com/sefazor/bored-backend/internal/repository"
	"github.com/sefazor/bored-backend/pkg/bcrypt"
	jwtPkg "github.com/sefazor/bored-backend/pkg/jwt"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret []byte
	logger    *zap.SugaredLogger
}

func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
	}
}

// Signup hashes the password and creates the user in a single insert. A
// unique violation on username or email comes back as ErrDuplicateIdentity
// with nothing persisted.
func (s *AuthService) Signup(req models.SignupRequest) (*models.AuthResponse, error) {
	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}

	token, err := jwtPkg.GenerateToken(s.jwtSecret, user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("user signed up", "user_id", user.ID, "username", user.Username)

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

// Login resolves the user by username and runs the bcrypt comparison.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwtPkg.GenerateToken(s.jwtSecret, user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
