package service

import (
	"path/filepath"
	"testing"

	"github.com/sefazor/bored-backend/internal/models"
	"github.com/sefazor/bored-backend/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	db              *gorm.DB
	userRepo        *repository.UserRepository
	activityRepo    *repository.ActivityRepository
	authService     *AuthService
	userService     *UserService
	activityService *ActivityService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserActivity{},
		&models.IgnoredActivity{},
	))

	logger := zap.NewNop().Sugar()
	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	return &testEnv{
		db:              db,
		userRepo:        userRepo,
		activityRepo:    activityRepo,
		authService:     NewAuthService(userRepo, testJWTSecret, logger),
		userService:     NewUserService(userRepo, logger),
		activityService: NewActivityService(activityRepo, logger),
	}
}

func (e *testEnv) signup(t *testing.T, username, email, password string) *models.User {
	t.Helper()

	resp, err := e.authService.Signup(models.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return &resp.User
}
