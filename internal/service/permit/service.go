package permit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/attendance"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/permit"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/database"
	"github.com/sigdev/absensi-magang-backend-go/internal/service/file"
)

type PermitServiceImpl struct {
	permit.PermitRepository
	attendance.AttendanceRepository
	tx          database.Transactor
	fileService file.FileService
}

func NewPermitService(
	permitRepo permit.PermitRepository,
	attendanceRepo attendance.AttendanceRepository,
	tx database.Transactor,
	fileService file.FileService,
) permit.PermitService {
	return &PermitServiceImpl{
		PermitRepository:     permitRepo,
		AttendanceRepository: attendanceRepo,
		tx:                   tx,
		fileService:          fileService,
	}
}

// Submit implements permit.PermitService.
func (s *PermitServiceImpl) Submit(ctx context.Context, req permit.SubmitPermitRequest) (permit.PermitResponse, error) {
	if err := req.Validate(); err != nil {
		return permit.PermitResponse{}, err
	}

	var evidenceURL *string
	if req.FileHeader != nil {
		url, err := s.fileService.UploadPermitEvidence(ctx, req.UserID, req.File, req.FileHeader.Filename)
		if err != nil {
			return permit.PermitResponse{}, fmt.Errorf("failed to upload permit evidence: %w", err)
		}
		evidenceURL = &url
	}

	p := permit.Permit{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		UserName:    req.UserName,
		Type:        req.Type,
		Date:        req.Date,
		Reason:      req.Reason,
		EvidenceURL: evidenceURL,
		Status:      permit.StatusPending,
		Lat:         req.Latitude,
		Lng:         req.Longitude,
	}

	created, err := s.PermitRepository.Create(ctx, p)
	if err != nil {
		return permit.PermitResponse{}, err
	}

	return permit.ToResponse(created), nil
}

// Decide implements permit.PermitService. The verdict and the attendance
// record it implies commit together; the record write is an upsert resolved
// on the participant-day, so a retried decision lands on the same row and a
// verdict supersedes any row the sweep already wrote for that day.
func (s *PermitServiceImpl) Decide(ctx context.Context, req permit.DecidePermitRequest) (permit.PermitResponse, error) {
	if err := req.Validate(); err != nil {
		return permit.PermitResponse{}, err
	}

	p, err := s.PermitRepository.GetByID(ctx, req.PermitID)
	if err != nil {
		return permit.PermitResponse{}, err
	}
	if p.Status != permit.StatusPending {
		return permit.PermitResponse{}, permit.ErrPermitAlreadyProcessed
	}

	newStatus := permit.StatusApproved
	attendanceStatus := attendanceStatusFor(p.Type)
	note := fmt.Sprintf("Permit approved: %s", p.Reason)
	if req.Decision == permit.DecisionReject {
		newStatus = permit.StatusRejected
		attendanceStatus = attendance.StatusAbsent
		note = fmt.Sprintf("Permit rejected: %s", p.Reason)
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.PermitRepository.UpdateStatus(txCtx, p.ID, newStatus); err != nil {
			return fmt.Errorf("failed to update permit status: %w", err)
		}

		record := attendance.Attendance{
			ID:       attendance.PermitRecordID(p.ID),
			UserID:   p.UserID,
			UserName: p.UserName,
			Date:     p.Date,
			Status:   attendanceStatus,
			Note:     &note,
		}
		if err := s.AttendanceRepository.Upsert(txCtx, record); err != nil {
			return fmt.Errorf("failed to write permit attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return permit.PermitResponse{}, err
	}

	p.Status = newStatus
	return permit.ToResponse(p), nil
}

// GetMyPermits implements permit.PermitService.
func (s *PermitServiceImpl) GetMyPermits(ctx context.Context, userID string) ([]permit.PermitResponse, error) {
	permits, err := s.PermitRepository.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get permits for user: %w", err)
	}
	return permit.ToResponseList(permits), nil
}

// List implements permit.PermitService.
func (s *PermitServiceImpl) List(ctx context.Context) ([]permit.PermitResponse, error) {
	permits, err := s.PermitRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permits: %w", err)
	}
	return permit.ToResponseList(permits), nil
}

// attendanceStatusFor maps an approved permit to the status its day takes.
func attendanceStatusFor(t permit.PermitType) attendance.Status {
	if t == permit.TypeSick {
		return attendance.StatusSick
	}
	return attendance.StatusLeave
}
