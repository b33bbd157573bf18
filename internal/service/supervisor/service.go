package supervisor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/supervisor"
)

type SupervisorServiceImpl struct {
	supervisor.SupervisorRepository
}

func NewSupervisorService(repo supervisor.SupervisorRepository) supervisor.SupervisorService {
	return &SupervisorServiceImpl{SupervisorRepository: repo}
}

// List implements supervisor.SupervisorService.
func (s *SupervisorServiceImpl) List(ctx context.Context) ([]supervisor.Supervisor, error) {
	supervisors, err := s.SupervisorRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list supervisors: %w", err)
	}
	return supervisors, nil
}

// Save implements supervisor.SupervisorService.
func (s *SupervisorServiceImpl) Save(ctx context.Context, req supervisor.SaveSupervisorRequest) (supervisor.Supervisor, error) {
	if err := req.Validate(); err != nil {
		return supervisor.Supervisor{}, err
	}

	sup := supervisor.Supervisor{
		ID:         req.ID,
		Name:       req.Name,
		Division:   req.Division,
		EmployeeID: req.EmployeeID,
	}
	if sup.ID == "" {
		sup.ID = uuid.New().String()
	}

	if err := s.SupervisorRepository.Upsert(ctx, sup); err != nil {
		return supervisor.Supervisor{}, fmt.Errorf("failed to save supervisor: %w", err)
	}
	return sup, nil
}

// Delete implements supervisor.SupervisorService.
func (s *SupervisorServiceImpl) Delete(ctx context.Context, id string) error {
	return s.SupervisorRepository.Delete(ctx, id)
}
