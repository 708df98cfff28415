package service

import (
	"context"
	"errors"

	"auth-service/internal/config/metrics"
	"auth-service/internal/constant"
	"auth-service/internal/dto"
	"auth-service/internal/dto/converter"
	"auth-service/internal/repository"
	"auth-service/internal/utils/apperrors"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

type AuthService struct {
	uow            *repository.UnitOfWork
	jwtService     *JwtService
	userRepository *repository.UserRepository
	roleRepository *repository.RoleRepository
	logger         *logrus.Logger
	tracer         trace.Tracer
}

func NewAuthService(uow *repository.UnitOfWork, jwtService *JwtService, userRepo *repository.UserRepository, roleRepo *repository.RoleRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{uow, jwtService, userRepo, roleRepo, logger, otel.Tracer("AuthService")}
}

// Login checks the credentials and issues an identity token.
// Unknown email, wrong password and inactive accounts all yield ErrNotAuthorized.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*AccessToken, error) {
	spanCtx, span := s.tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	logger := s.logger.WithContext(spanCtx)

	user, err := s.userRepository.FindByEmail(spanCtx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Debug("User not found during login")
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, apperrors.ErrNotAuthorized
	}
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	_, passwordSpan := s.tracer.Start(spanCtx, "CompareHashPassword")
	ok := user.CheckPassword(req.Password)
	passwordSpan.End()
	if !ok {
		logger.WithField("user_id", user.ID).Debug("Invalid password attempt")
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, apperrors.ErrNotAuthorized
	}

	if !user.IsActive {
		logger.WithField("user_id", user.ID).Info("Inactive user tried to log in")
		metrics.LoginAttemptsTotal.WithLabelValues("inactive").Inc()
		return nil, apperrors.ErrNotAuthorized
	}

	token, err := s.jwtService.GenerateAccessToken(spanCtx, user.ID)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return token, nil
}

// Register creates a user with a hashed password and the GUEST role when
// that role exists. A taken email yields ErrUserAlreadyExists.
func (s *AuthService) Register(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	logger := s.logger.WithContext(spanCtx)
	user := converter.SignupRequestToUser(req)

	err := s.uow.Do(spanCtx, func(txCtx context.Context) error {
		count, err := s.userRepository.CountByEmail(txCtx, req.Email)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrUserAlreadyExists
		}

		if err := s.userRepository.Save(txCtx, user); err != nil {
			return err
		}

		roles, err := s.roleRepository.FindByNames(txCtx, constant.RoleGuest)
		if err != nil {
			return err
		}
		return s.userRepository.AssignRoles(txCtx, user, roles...)
	})

	switch {
	case errors.Is(err, apperrors.ErrUserAlreadyExists), errors.Is(err, gorm.ErrDuplicatedKey):
		logger.Warn("Attempt to register an already existing email")
		metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		return nil, apperrors.ErrUserAlreadyExists
	case err != nil:
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	logger.WithField("user_id", user.ID).Info("User registered")
	return converter.UserToResponse(user), nil
}
