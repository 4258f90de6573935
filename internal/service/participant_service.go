package service

import (
	"context"

	"campmed/internal/model"
	"campmed/internal/repository"
)

// ParticipantService exposes registration operations.
type ParticipantService interface {
	ListParticipants(ctx context.Context) ([]model.Participant, error)
	ListByEmail(ctx context.Context, email string) ([]model.Participant, error)
	GetParticipant(ctx context.Context, id string) (*model.Participant, error)
	Register(ctx context.Context, participant *model.Participant) (*repository.InsertResult, error)
	RenameByEmail(ctx context.Context, email, name string) (*repository.UpdateResult, error)
	MarkPaid(ctx context.Context, id string) (*repository.UpdateResult, error)
	Confirm(ctx context.Context, id string) (*repository.UpdateResult, error)
	Cancel(ctx context.Context, id string) (*repository.DeleteResult, error)
}

type participantService struct {
	repo repository.ParticipantRepository
}

// NewParticipantService builds a ParticipantService.
func NewParticipantService(repo repository.ParticipantRepository) ParticipantService {
	return &participantService{repo: repo}
}

func (s *participantService) ListParticipants(ctx context.Context) ([]model.Participant, error) {
	return s.repo.List(ctx)
}

func (s *participantService) ListByEmail(ctx context.Context, email string) ([]model.Participant, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *participantService) GetParticipant(ctx context.Context, id string) (*model.Participant, error) {
	return s.repo.FindByID(ctx, id)
}

// Register stores a new registration. Status fields always start unpaid and
// unconfirmed whatever the client sent.
func (s *participantService) Register(ctx context.Context, participant *model.Participant) (*repository.InsertResult, error) {
	participant.PaymentStatus = model.PaymentStatusUnpaid
	participant.Confirmation = model.ConfirmationPending
	return s.repo.Create(ctx, participant)
}

func (s *participantService) RenameByEmail(ctx context.Context, email, name string) (*repository.UpdateResult, error) {
	return s.repo.RenameByEmail(ctx, email, name)
}

func (s *participantService) MarkPaid(ctx context.Context, id string) (*repository.UpdateResult, error) {
	return s.repo.MarkPaid(ctx, id)
}

func (s *participantService) Confirm(ctx context.Context, id string) (*repository.UpdateResult, error) {
	return s.repo.Confirm(ctx, id)
}

func (s *participantService) Cancel(ctx context.Context, id string) (*repository.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
