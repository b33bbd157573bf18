package participant

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/attendance"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/user"
)

type ParticipantServiceImpl struct {
	user.UserRepository
	sync   attendance.SyncService
	logger *slog.Logger
}

func NewParticipantService(
	userRepo user.UserRepository,
	sync attendance.SyncService,
	logger *slog.Logger,
) user.ParticipantService {
	return &ParticipantServiceImpl{
		UserRepository: userRepo,
		sync:           sync,
		logger:         logger,
	}
}

// Get implements user.ParticipantService.
func (s *ParticipantServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// Update implements user.ParticipantService.
func (s *ParticipantServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	u.Name = req.Name
	u.Email = req.Email
	u.AccountStatus = user.AccountStatus(req.AccountStatus)
	u.University = req.University
	u.Major = req.Major
	u.Division = req.Division
	u.Phone = req.Phone
	u.PhotoURL = req.PhotoURL
	u.SupervisorID = req.SupervisorID
	u.SupervisorName = req.SupervisorName
	u.StartDate = req.StartDate
	u.EndDate = req.EndDate

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashStr := string(hash)
		u.PasswordHash = &hashStr
	}

	if err := s.UserRepository.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	// An edited enrollment period or a fresh activation changes which days
	// the sweep must fill, so reconcile this participant now.
	if !u.IsAdmin() && u.IsActive() {
		if err := s.sync.SyncUser(ctx, u.ID); err != nil {
			s.logger.Error("failed to reconcile attendance after roster update",
				slog.String("user_id", u.ID),
				slog.Any("error", err))
		}
	}

	return user.ToResponse(u), nil
}

// Delete implements user.ParticipantService.
func (s *ParticipantServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.UserRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.UserRepository.Delete(ctx, id)
}

// List implements user.ParticipantService.
func (s *ParticipantServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return user.ToResponseList(users), nil
}
