package service

import (
	"context"

	"auth-service/internal/dto"
	"auth-service/internal/dto/converter"
	"auth-service/internal/repository"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type RoleService struct {
	roleRepository *repository.RoleRepository
	logger         *logrus.Logger
	tracer         trace.Tracer
}

func NewRoleService(roleRepository *repository.RoleRepository, logger *logrus.Logger) *RoleService {
	return &RoleService{roleRepository, logger, otel.Tracer("RoleService")}
}

func (s *RoleService) List(ctx context.Context) ([]dto.RoleResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "RoleService.List")
	defer span.End()

	roles, err := s.roleRepository.FindAllByName(spanCtx)
	if err != nil {
		s.logger.WithContext(spanCtx).WithError(err).Error("Failed to list roles")
		return nil, err
	}

	responses := make([]dto.RoleResponse, len(roles))
	for i := range roles {
		responses[i] = *converter.RoleToResponse(&roles[i])
	}
	return responses, nil
}
