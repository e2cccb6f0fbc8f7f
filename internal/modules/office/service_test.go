package office

import (
	"context"
	"errors"
	"testing"

	"officemarket/internal/domain"
	"officemarket/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockOfficeRepository struct {
	mock.Mock
}

func (m *MockOfficeRepository) List(ctx context.Context, f repository.OfficeFilters) ([]domain.Office, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Office), args.Get(1).(int64), args.Error(2)
}

func (m *MockOfficeRepository) GetByID(ctx context.Context, id int64) (*domain.Office, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Office), args.Error(1)
}

func (m *MockOfficeRepository) GetRow(ctx context.Context, id int64) (*domain.Office, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Office), args.Error(1)
}

func (m *MockOfficeRepository) GetWithRelations(ctx context.Context, id int64) (*domain.Office, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Office), args.Error(1)
}

func (m *MockOfficeRepository) Create(ctx context.Context, office *domain.Office, tags []domain.Tag) error {
	args := m.Called(ctx, office, tags)
	if office != nil {
		office.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockOfficeRepository) Update(ctx context.Context, office *domain.Office, tags *[]domain.Tag) error {
	args := m.Called(ctx, office, tags)
	return args.Error(0)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyOfficePendingApproval(ctx context.Context, office *domain.Office) error {
	args := m.Called(ctx, office)
	return args.Error(0)
}

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }
func str(v string) *string   { return &v }

func creator() domain.Actor {
	return domain.Actor{UserID: 42, Scopes: []string{domain.ScopeOfficeCreate}}
}

func updater(userID int64) domain.Actor {
	return domain.Actor{UserID: userID, Scopes: []string{domain.ScopeOfficeUpdate}}
}

func validCreateRequest() CreateOfficeRequest {
	return CreateOfficeRequest{
		Title:        "Office in Leiria",
		Description:  "Quiet floor",
		Lat:          f64(39.740517),
		Lng:          f64(-8.770375),
		AddressLine1: "Rua Principal 1",
		PricePerDay:  i(10_000),
		Tags:         []int64{1, 2},
	}
}

func TestService_Create_Success(t *testing.T) {
	mockOffices := new(MockOfficeRepository)
	mockTags := new(MockTagRepository)
	mockNotifs := new(MockNotificationSender)

	resolved := []domain.Tag{{ID: 1, Name: "wifi"}, {ID: 2, Name: "coffee"}}
	mockTags.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(resolved, nil)
	mockOffices.On("Create", mock.Anything, mock.Anything, resolved).Return(nil)
	mockOffices.On("GetWithRelations", mock.Anything, int64(999)).Return(&domain.Office{
		ID:             999,
		UserID:         42,
		Title:          "Office in Leiria",
		ApprovalStatus: domain.ApprovalPending,
		Tags:           resolved,
	}, nil)

	service := NewService(mockOffices, mockTags, mockNotifs)

	office, err := service.Create(context.Background(), creator(), validCreateRequest())

	assert.NoError(t, err)
	assert.NotNil(t, office)
	assert.Equal(t, domain.ApprovalPending, office.ApprovalStatus)
	assert.Equal(t, int64(42), office.UserID)
	assert.Len(t, office.Tags, 2)

	created := mockOffices.Calls[0].Arguments.Get(1).(*domain.Office)
	assert.Equal(t, domain.ApprovalPending, created.ApprovalStatus)
	assert.Equal(t, int64(42), created.UserID)
}

func TestService_Create_Forbidden(t *testing.T) {
	mockOffices := new(MockOfficeRepository)
	mockTags := new(MockTagRepository)
	mockNotifs := new(MockNotificationSender)
	service := NewService(mockOffices, mockTags, mockNotifs)

	actor := domain.Actor{UserID: 42, Scopes: []string{"profile.read"}}

	_, err := service.Create(context.Background(), actor, validCreateRequest())

	assert.ErrorIs(t, err, ErrForbidden)
	mockOffices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_ValidationError(t *testing.T) {
	mockOffices := new(MockOfficeRepository)
	mockTags := new(MockTagRepository)
	mockNotifs := new(MockNotificationSender)
	service := NewService(mockOffices, mockTags, mockNotifs)

	req := validCreateRequest()
	req.Title = ""
	req.PricePerDay = i(50) // below the 100 minimum

	_, err := service.Create(context.Background(), creator(), req)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "title")
	assert.Contains(t, vErr.Fields, "price_per_day")
	mockOffices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_UnknownTagID(t *testing.T) {
	mockOffices := new(MockOfficeRepository)
	mockTags := new(MockTagRepository)
	mockNotifs := new(MockNotificationSender)

	// Only one of the two requested tags exists.
	mockTags.On("GetByIDs", mock.Anything, []int64{1, 2}).Return([]domain.Tag{{ID: 1, Name: "wifi"}}, nil)

	service := NewService(mockOffices, mockTags, mockNotifs)

	_, err := service.Create(context.Background(), creator(), validCreateRequest())

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "tags")
	mockOffices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func existingOffice() *domain.Office {
	return &domain.Office{
		ID:             7,
		UserID:         42,
		Title:          "Old title",
		Description:    "Desc",
		Lat:            39.740517,
		Lng:            -8.770375,
		AddressLine1:   "Rua Principal 1",
		PricePerDay:    10_000,
		ApprovalStatus: domain.ApprovalApproved,
	}
}

func TestService_Update_TitleOnly_KeepsApprovalStatus(t *testing.T) {
	mockOffices := new(MockOfficeRepository)
	mockTags := new(MockTagRepository)
	mockNotifs := new(MockNotificationSender)

	mockOffices.On("GetRow", mock.Anything, int64(7)).Return(existingOffice(), nil)
	mockOffices.On("Update", mock.Anything, mock.Anything, (*[]domain.Tag)(nil)).Return(nil)
	mockOffices.On("GetWithRelations", mock.Anything, int64(7)).Return(existingOffice(), nil)

	service := NewService(mockOffices, mockTags, mockNotifs)

	_, err := service.Update(context.Background(), updater(42), 7, UpdateOfficeRequest{
		Title: str("New title"),
	})

	assert.NoError(t, err)
	updated := mockOffices.Calls[1].Arguments.Get(1).(*domain.Office)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, domain.ApprovalApproved, updated.ApprovalStatus)
	mockNotifs.AssertNotCalled(t, "NotifyOfficePendingApproval", mock.Anything, mock.Anything)
}

func TestService_Update_LatChange_ResetsApprovalAndNotifies(t *testing.T) {
	mockOffices := new(MockOfficeRepository)
	mockTags := new(MockTagRepository)
	mockNotifs := new(MockNotificationSender)

	mockOffices.On("GetRow", mock.Anything, int64(7)).Return(existingOffice(), nil)
	mockOffices.On("Update", mock.Anything, mock.Anything, (*[]domain.Tag)(nil)).Return(nil)
	mockOffices.On("GetWithRelations", mock.Anything, int64(7)).Return(existingOffice(), nil)
	mockNotifs.On("NotifyOfficePendingApproval", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockOffices, mockTags, mockNotifs)

	_, err := service.Update(context.Background(), updater(42), 7, UpdateOfficeRequest{
		Lat: f64(40.0),
	})

	assert.NoError(t, err)
	updated := mockOffices.Calls[1].Arguments.Get(1).(*domain.Office)
	assert.Equal(t, domain.ApprovalPending, updated.ApprovalStatus)
	mockNotifs.AssertNumberOfCalls(t, "NotifyOfficePendingApproval", 1)
}

func TestService_Update_SameLatValue_NoReview(t *testing.T) {
	mockOffices := new(MockOfficeRepository)
	mockTags := new(MockTagRepository)
	mockNotifs := new(MockNotificationSender)

	mockOffices.On("GetRow", mock.Anything, int64(7)).Return(existingOffice(), nil)
	mockOffices.On("Update", mock.Anything, mock.Anything, (*[]domain.Tag)(nil)).Return(nil)
	mockOffices.On("GetWithRelations", mock.Anything, int64(7)).Return(existingOffice(), nil)

	service := NewService(mockOffices, mockTags, mockNotifs)

	// Same value as stored: not a change, no review.
	_, err := service.Update(context.Background(), updater(42), 7, UpdateOfficeRequest{
		Lat: f64(39.740517),
	})

	assert.NoError(t, err)
	updated := mockOffices.Calls[1].Arguments.Get(1).(*domain.Office)
	assert.Equal(t, domain.ApprovalApproved, updated.ApprovalStatus)
	mockNotifs.AssertNotCalled(t, "NotifyOfficePendingApproval", mock.Anything, mock.Anything)
}

func TestService_Update_NotificationFailureIsSwallowed(t *testing.T) {
	mockOffices := new(MockOfficeRepository)
	mockTags := new(MockTagRepository)
	mockNotifs := new(MockNotificationSender)

	mockOffices.On("GetRow", mock.Anything, int64(7)).Return(existingOffice(), nil)
	mockOffices.On("Update", mock.Anything, mock.Anything, (*[]domain.Tag)(nil)).Return(nil)
	mockOffices.On("GetWithRelations", mock.Anything, int64(7)).Return(existingOffice(), nil)
	mockNotifs.On("NotifyOfficePendingApproval", mock.Anything, mock.Anything).
		Return(errors.New("reviewer mailbox on fire"))

	service := NewService(mockOffices, mockTags, mockNotifs)

	office, err := service.Update(context.Background(), updater(42), 7, UpdateOfficeRequest{
		PricePerDay: i(20_000),
	})

	assert.NoError(t, err)
	assert.NotNil(t, office)
}

func TestService_Update_WithoutScope_Forbidden(t *testing.T) {
	mockOffices := new(MockOfficeRepository)
	mockTags := new(MockTagRepository)
	mockNotifs := new(MockNotificationSender)

	mockOffices.On("GetRow", mock.Anything, int64(7)).Return(existingOffice(), nil)

	service := NewService(mockOffices, mockTags, mockNotifs)

	// The owner, but with a token missing the office.update scope.
	actor := domain.Actor{UserID: 42, Scopes: []string{"profile.read"}}

	_, err := service.Update(context.Background(), actor, 7, UpdateOfficeRequest{
		Title: str("New title"),
	})

	assert.ErrorIs(t, err, ErrForbidden)
	mockOffices.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_NonOwner_Forbidden(t *testing.T) {
	mockOffices := new(MockOfficeRepository)
	mockTags := new(MockTagRepository)
	mockNotifs := new(MockNotificationSender)

	mockOffices.On("GetRow", mock.Anything, int64(7)).Return(existingOffice(), nil)

	service := NewService(mockOffices, mockTags, mockNotifs)

	_, err := service.Update(context.Background(), updater(99), 7, UpdateOfficeRequest{
		Title: str("Hijacked"),
	})

	assert.ErrorIs(t, err, ErrForbidden)
	mockOffices.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_NotFound(t *testing.T) {
	mockOffices := new(MockOfficeRepository)
	mockTags := new(MockTagRepository)
	mockNotifs := new(MockNotificationSender)

	mockOffices.On("GetRow", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockOffices, mockTags, mockNotifs)

	_, err := service.Update(context.Background(), updater(42), 404, UpdateOfficeRequest{})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_TagSyncPassesResolvedSet(t *testing.T) {
	mockOffices := new(MockOfficeRepository)
	mockTags := new(MockTagRepository)
	mockNotifs := new(MockNotificationSender)

	resolved := []domain.Tag{{ID: 1, Name: "wifi"}, {ID: 4, Name: "parking"}}
	mockTags.On("GetByIDs", mock.Anything, []int64{1, 4}).Return(resolved, nil)
	mockOffices.On("GetRow", mock.Anything, int64(7)).Return(existingOffice(), nil)
	mockOffices.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mockOffices.On("GetWithRelations", mock.Anything, int64(7)).Return(existingOffice(), nil)

	service := NewService(mockOffices, mockTags, mockNotifs)

	newTags := []int64{1, 4}
	_, err := service.Update(context.Background(), updater(42), 7, UpdateOfficeRequest{
		Tags: &newTags,
	})

	assert.NoError(t, err)
	passed := mockOffices.Calls[1].Arguments.Get(2).(*[]domain.Tag)
	assert.Equal(t, resolved, *passed)
}
