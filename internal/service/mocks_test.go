package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"campmed/internal/gateway"
	"campmed/internal/model"
	"campmed/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) (*repository.InsertResult, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.InsertResult), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id string, profile model.UserProfile) (*repository.UpdateResult, error) {
	args := m.Called(ctx, id, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, email string, role model.Role) (*repository.UpdateResult, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

// MockCampRepository is a mock implementation of CampRepository.
type MockCampRepository struct {
	mock.Mock
}

func (m *MockCampRepository) List(ctx context.Context) ([]model.Camp, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Camp), args.Error(1)
}

func (m *MockCampRepository) FindByID(ctx context.Context, id string) (*model.Camp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Camp), args.Error(1)
}

func (m *MockCampRepository) FindByOrganizer(ctx context.Context, email string) ([]model.Camp, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Camp), args.Error(1)
}

func (m *MockCampRepository) Create(ctx context.Context, camp *model.Camp) (*repository.InsertResult, error) {
	args := m.Called(ctx, camp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.InsertResult), args.Error(1)
}

func (m *MockCampRepository) Update(ctx context.Context, id string, update model.CampUpdate) (*repository.UpdateResult, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

func (m *MockCampRepository) IncrementParticipants(ctx context.Context, id string) (*repository.UpdateResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

func (m *MockCampRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DeleteResult), args.Error(1)
}

func (m *MockCampRepository) UpsertByName(ctx context.Context, camp *model.Camp) (*repository.UpdateResult, error) {
	args := m.Called(ctx, camp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

// MockParticipantRepository is a mock implementation of ParticipantRepository.
type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) List(ctx context.Context) ([]model.Participant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Participant), args.Error(1)
}

func (m *MockParticipantRepository) FindByEmail(ctx context.Context, email string) ([]model.Participant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Participant), args.Error(1)
}

func (m *MockParticipantRepository) FindByID(ctx context.Context, id string) (*model.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participant), args.Error(1)
}

func (m *MockParticipantRepository) Create(ctx context.Context, participant *model.Participant) (*repository.InsertResult, error) {
	args := m.Called(ctx, participant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.InsertResult), args.Error(1)
}

func (m *MockParticipantRepository) RenameByEmail(ctx context.Context, email, name string) (*repository.UpdateResult, error) {
	args := m.Called(ctx, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

func (m *MockParticipantRepository) MarkPaid(ctx context.Context, id string) (*repository.UpdateResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

func (m *MockParticipantRepository) Confirm(ctx context.Context, id string) (*repository.UpdateResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

func (m *MockParticipantRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DeleteResult), args.Error(1)
}

// MockFeedbackRepository is a mock implementation of FeedbackRepository.
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) List(ctx context.Context) ([]model.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *model.Feedback) (*repository.InsertResult, error) {
	args := m.Called(ctx, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.InsertResult), args.Error(1)
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *model.Payment) (*repository.InsertResult, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.InsertResult), args.Error(1)
}

// MockGateway is a mock implementation of gateway.PaymentGateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreatePaymentIntent(ctx context.Context, amount int64) (*gateway.PaymentIntent, error) {
	args := m.Called(ctx, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.PaymentIntent), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
