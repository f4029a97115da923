package services_test

import (
	"context"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockJobRepository is a mock type for the storage.JobRepository interface
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) ExistsByCompanyAndPosition(ctx context.Context, company, position string) (bool, error) {
	args := m.Called(ctx, company, position)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context, filter storage.JobListFilter) ([]models.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) Count(ctx context.Context, filter storage.JobListFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockJobRepository) ListByCreator(ctx context.Context, creatorID int64) ([]models.JobWithCreator, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobWithCreator), args.Error(1)
}

func (m *MockJobRepository) ListWithCreators(ctx context.Context) ([]models.JobWithCreator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobWithCreator), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateVisibility(ctx context.Context, id int64, status models.VisibilityStatus, comment *string) (*models.Job, error) {
	args := m.Called(ctx, id, status, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockApplicationRepository is a mock type for the storage.ApplicationRepository interface
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	args := m.Called(ctx, app)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByJob(ctx context.Context, jobID int64, limit, offset int) ([]models.Application, error) {
	args := m.Called(ctx, jobID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *MockApplicationRepository) CountByJob(ctx context.Context, jobID int64) (int, error) {
	args := m.Called(ctx, jobID)
	return args.Int(0), args.Error(1)
}

func (m *MockApplicationRepository) DeleteByJob(ctx context.Context, jobID int64) (int64, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// fakeStore hands out the mocks and runs WithTx inline, recording how often it was used.
type fakeStore struct {
	jobs    *MockJobRepository
	apps    *MockApplicationRepository
	txCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{jobs: new(MockJobRepository), apps: new(MockApplicationRepository)}
}

func (f *fakeStore) Jobs() storage.JobRepository                 { return f.jobs }
func (f *fakeStore) Applications() storage.ApplicationRepository { return f.apps }

func (f *fakeStore) WithTx(ctx context.Context, fn func(tx storage.Store) error) error {
	f.txCalls++
	return fn(f)
}

// Ensure mocks implement the interfaces
var (
	_ storage.JobRepository         = (*MockJobRepository)(nil)
	_ storage.ApplicationRepository = (*MockApplicationRepository)(nil)
	_ storage.Store                 = (*fakeStore)(nil)
)
