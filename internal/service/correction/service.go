package correction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/attendance"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/correction"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/database"
)

type CorrectionServiceImpl struct {
	correction.CorrectionRepository
	attendance.AttendanceRepository
	tx database.Transactor
}

func NewCorrectionService(
	correctionRepo correction.CorrectionRepository,
	attendanceRepo attendance.AttendanceRepository,
	tx database.Transactor,
) correction.CorrectionService {
	return &CorrectionServiceImpl{
		CorrectionRepository: correctionRepo,
		AttendanceRepository: attendanceRepo,
		tx:                   tx,
	}
}

// Submit implements correction.CorrectionService.
func (s *CorrectionServiceImpl) Submit(ctx context.Context, req correction.SubmitCorrectionRequest) (correction.CorrectionResponse, error) {
	if err := req.Validate(); err != nil {
		return correction.CorrectionResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.AttendanceID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return correction.CorrectionResponse{}, attendance.ErrAttendanceNotFound
		}
		return correction.CorrectionResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record.UserID != req.UserID {
		return correction.CorrectionResponse{}, attendance.ErrUnauthorized
	}

	pending, err := s.CorrectionRepository.HasPendingForAttendance(ctx, req.AttendanceID)
	if err != nil {
		return correction.CorrectionResponse{}, fmt.Errorf("failed to check pending corrections: %w", err)
	}
	if pending {
		return correction.CorrectionResponse{}, correction.ErrPendingCorrectionExists
	}

	e := correction.EditRequest{
		ID:              uuid.New().String(),
		AttendanceID:    req.AttendanceID,
		UserID:          req.UserID,
		UserName:        req.UserName,
		Date:            record.Date,
		RequestedIn:     req.RequestedIn,
		RequestedOut:    req.RequestedOut,
		RequestedStatus: req.RequestedStatus,
		Reason:          req.Reason,
		Status:          correction.StatusPending,
	}

	created, err := s.CorrectionRepository.Create(ctx, e)
	if err != nil {
		return correction.CorrectionResponse{}, err
	}

	return correction.ToResponse(created), nil
}

// Decide implements correction.CorrectionService. Approval overwrites the
// attendance record with the requested values; the old times and status are
// gone once this commits.
func (s *CorrectionServiceImpl) Decide(ctx context.Context, req correction.DecideCorrectionRequest) (correction.CorrectionResponse, error) {
	if err := req.Validate(); err != nil {
		return correction.CorrectionResponse{}, err
	}

	e, err := s.CorrectionRepository.GetByID(ctx, req.CorrectionID)
	if err != nil {
		return correction.CorrectionResponse{}, err
	}
	if e.Status != correction.StatusPending {
		return correction.CorrectionResponse{}, correction.ErrCorrectionAlreadyProcessed
	}

	if req.Decision == correction.DecisionReject {
		if err := s.CorrectionRepository.UpdateStatus(ctx, e.ID, correction.StatusRejected); err != nil {
			return correction.CorrectionResponse{}, fmt.Errorf("failed to reject correction: %w", err)
		}
		e.Status = correction.StatusRejected
		return correction.ToResponse(e), nil
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		record, err := s.AttendanceRepository.GetByID(txCtx, e.AttendanceID)
		if err != nil {
			return fmt.Errorf("failed to get attendance record for correction: %w", err)
		}

		record.ClockIn = e.RequestedIn
		record.ClockOut = e.RequestedOut
		record.Status = attendance.Status(e.RequestedStatus)
		note := attendance.NoteCorrected
		record.Note = &note

		if err := s.AttendanceRepository.Update(txCtx, record); err != nil {
			return fmt.Errorf("failed to apply correction: %w", err)
		}
		if err := s.CorrectionRepository.UpdateStatus(txCtx, e.ID, correction.StatusApproved); err != nil {
			return fmt.Errorf("failed to approve correction: %w", err)
		}
		return nil
	})
	if err != nil {
		return correction.CorrectionResponse{}, err
	}

	e.Status = correction.StatusApproved
	return correction.ToResponse(e), nil
}

// GetMyCorrections implements correction.CorrectionService.
func (s *CorrectionServiceImpl) GetMyCorrections(ctx context.Context, userID string) ([]correction.CorrectionResponse, error) {
	requests, err := s.CorrectionRepository.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get corrections for user: %w", err)
	}
	return correction.ToResponseList(requests), nil
}

// List implements correction.CorrectionService.
func (s *CorrectionServiceImpl) List(ctx context.Context) ([]correction.CorrectionResponse, error) {
	requests, err := s.CorrectionRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list corrections: %w", err)
	}
	return correction.ToResponseList(requests), nil
}
