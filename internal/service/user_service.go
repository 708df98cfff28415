package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"auth-service/internal/config/env"
	"auth-service/internal/config/metrics"
	"auth-service/internal/dto"
	"auth-service/internal/dto/converter"
	"auth-service/internal/model"
	"auth-service/internal/repository"
	"auth-service/internal/utils/apperrors"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

type UserService struct {
	userRepository *repository.UserRepository
	redisService   *RedisService
	config         *env.Config
	log            *logrus.Logger
	tracer         trace.Tracer
}

func NewUserService(userRepository *repository.UserRepository, redisService *RedisService, config *env.Config, log *logrus.Logger) *UserService {
	return &UserService{
		userRepository: userRepository,
		redisService:   redisService,
		config:         config,
		log:            log,
		tracer:         otel.Tracer("UserService"),
	}
}

func profileCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:me:%s", id)
}

// CurrentUser resolves a token subject to a stored user with its roles.
// A subject with no matching or no longer active user yields ErrNotAuthorized.
func (s *UserService) CurrentUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	spanCtx, span := s.tracer.Start(ctx, "UserService.CurrentUser")
	defer span.End()

	user, err := s.userRepository.FindByID(spanCtx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.WithContext(spanCtx).WithField("user_id", id).Debug("Token subject no longer exists")
		return nil, apperrors.ErrNotAuthorized
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		s.log.WithContext(spanCtx).WithField("user_id", id).Debug("Token subject is inactive")
		return nil, apperrors.ErrNotAuthorized
	}
	return user, nil
}

// GetProfile serializes user, served from the profile cache when possible.
// A cached profile that no longer matches the loaded user is replaced.
func (s *UserService) GetProfile(ctx context.Context, user *model.User) (*dto.UserResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "UserService.GetProfile")
	defer span.End()

	logger := s.log.WithContext(spanCtx)
	cacheKey := profileCacheKey(user.ID)

	if cached, found := s.redisService.Get(spanCtx, cacheKey); found {
		response := new(dto.UserResponse)
		err := json.Unmarshal([]byte(cached), response)
		switch {
		case err != nil:
			logger.Warn("Discarding unreadable cached profile")
		case !profileMatches(response, user):
			metrics.ProfileCacheTotal.WithLabelValues("stale").Inc()
			logger.Debug("Discarding outdated cached profile")
		default:
			metrics.ProfileCacheTotal.WithLabelValues("hit").Inc()
			return response, nil
		}
	}

	response := converter.UserToResponse(user)
	if s.redisService.Enabled() {
		metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()
		if err := s.redisService.Set(spanCtx, cacheKey, response, s.config.GetProfileCacheTTL()); err != nil {
			logger.WithError(err).Warn("Failed to save user response to Redis")
		}
	}

	return response, nil
}

// profileMatches reports whether a cached profile still describes user.
// Roles and the active flag change without touching updated_at.
func profileMatches(cached *dto.UserResponse, user *model.User) bool {
	return cached.ID == user.ID.String() &&
		cached.Email == user.Email &&
		cached.IsActive == user.IsActive &&
		slices.Equal(cached.Roles, user.RoleNames())
}

// ForgetProfile drops the cached profile of user id.
func (s *UserService) ForgetProfile(ctx context.Context, id uuid.UUID) {
	if err := s.redisService.Delete(ctx, profileCacheKey(id)); err != nil {
		s.log.WithContext(ctx).WithError(err).Warn("Failed to drop cached profile")
	}
}
