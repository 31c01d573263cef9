package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freightflow"
	"freightflow/internal/api/models"
	"freightflow/internal/api/repo"
	"freightflow/pkg"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxLoginAttempts   = 5
	loginAttemptWindow = 15 * time.Minute
)

type UserService struct {
	userRepo *repo.UserRepository
	config   freightflow.AppConfig
	logger   zerolog.Logger
}

func NewUserService() *UserService {
	return &UserService{
		userRepo: repo.NewUserRepository(),
		config:   freightflow.GetConfig(),
		logger:   freightflow.Logger,
	}
}

// Login checks credentials and returns the user plus a signed token. Failed
// attempts are throttled per username when Redis is configured.
func (slf *UserService) Login(username, password string) (*models.User, string, error) {
	if throttled := slf.tooManyAttempts(username); throttled {
		return nil, "", fmt.Errorf("too many failed login attempts: %w", ErrForbidden)
	}

	user, err := slf.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			slf.recordFailedAttempt(username)
			return nil, "", errors.New("invalid credentials")
		}
		slf.logger.Error().Err(err).Str("username", username).Msg("Error finding user by username")
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		slf.recordFailedAttempt(username)
		return nil, "", errors.New("invalid credentials")
	}

	token, err := pkg.GenerateToken(user.ID, user.Username, string(user.Role), slf.config.JWTConfig.Secret, slf.config.JWTConfig.Expiration)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error generating token")
		return nil, "", err
	}

	slf.clearAttempts(username)
	slf.logger.Info().Uint("userId", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return &user, token, nil
}

func (slf *UserService) GetByID(id uint) (*models.User, error) {
	user, err := slf.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		slf.logger.Error().Err(err).Uint("userId", id).Msg("Error finding user by ID")
		return nil, err
	}
	return &user, nil
}

func (slf *UserService) GetAll() ([]models.User, error) {
	return slf.userRepo.GetAll()
}

// Create registers a new user with a bcrypt-hashed password.
func (slf *UserService) Create(username, password, designation, email string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q: %w", role, ErrValidation)
	}

	exists, err := slf.userRepo.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("username %s: %w", username, ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Designation:  designation,
		Email:        email,
		Role:         role,
	}
	if err := slf.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("username %s: %w", username, ErrConflict)
		}
		slf.logger.Error().Err(err).Str("username", username).Msg("Error creating user")
		return nil, err
	}

	slf.logger.Info().Uint("userId", user.ID).Str("role", string(role)).Msg("User created")
	return &user, nil
}

func (slf *UserService) Delete(id uint) error {
	if _, err := slf.GetByID(id); err != nil {
		return err
	}
	return slf.userRepo.Delete(id)
}

func loginAttemptKey(username string) string {
	return "login_attempts:" + username
}

func (slf *UserService) tooManyAttempts(username string) bool {
	if freightflow.Redis == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n, err := freightflow.Redis.Get(ctx, loginAttemptKey(username)).Int()
	if err != nil {
		return false
	}
	return n >= maxLoginAttempts
}

func (slf *UserService) recordFailedAttempt(username string) {
	if freightflow.Redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := loginAttemptKey(username)
	n, err := freightflow.Redis.Incr(ctx, key).Result()
	if err != nil {
		slf.logger.Warn().Err(err).Msg("Failed to record login attempt")
		return
	}
	if n == 1 {
		freightflow.Redis.Expire(ctx, key, loginAttemptWindow)
	}
}

func (slf *UserService) clearAttempts(username string) {
	if freightflow.Redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	freightflow.Redis.Del(ctx, loginAttemptKey(username))
}
