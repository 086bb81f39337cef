package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"staffrecords/src/core/domain"
)

// MockDepartmentRepository is a mock implementation of ports.DepartmentRepository
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) CreateTable(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDepartmentRepository) DropTable(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepartmentRepository) Create(ctx context.Context, name string) (*domain.Department, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Save(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Update(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, d *domain.Department) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDepartmentRepository) FromRecord(rec *domain.DepartmentRecord) *domain.Department {
	args := m.Called(rec)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Department)
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, id int64) (*domain.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByName(ctx context.Context, name string) (*domain.Department, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) GetAll(ctx context.Context) ([]*domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Department), args.Error(1)
}

// MockEmployeeRepository is a mock implementation of ports.EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) CreateTable(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockEmployeeRepository) DropTable(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockEmployeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) New(ctx context.Context, name, jobTitle string, departmentID int64) (*domain.Employee, error) {
	args := m.Called(ctx, name, jobTitle, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, name, jobTitle string, departmentID int64) (*domain.Employee, error) {
	args := m.Called(ctx, name, jobTitle, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, e *domain.Employee) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEmployeeRepository) FromRecord(rec *domain.EmployeeRecord) *domain.Employee {
	args := m.Called(rec)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Employee)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByName(ctx context.Context, name string) (*domain.Employee, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetAll(ctx context.Context) ([]*domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ForDepartment(ctx context.Context, d *domain.Department) ([]*domain.Employee, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Employee), args.Error(1)
}

// MockReviewRepository is a mock implementation of ports.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) CreateTable(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockReviewRepository) DropTable(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockReviewRepository) New(ctx context.Context, year int, summary string, employeeID int64) (*domain.Review, error) {
	args := m.Called(ctx, year, summary, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, year int, summary string, employeeID int64) (*domain.Review, error) {
	args := m.Called(ctx, year, summary, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Save(ctx context.Context, r *domain.Review) (*domain.Review, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, r *domain.Review) (*domain.Review, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, r *domain.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) FromRecord(rec *domain.ReviewRecord) *domain.Review {
	args := m.Called(rec)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Review)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetAll(ctx context.Context) ([]*domain.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ForEmployee(ctx context.Context, e *domain.Employee) ([]*domain.Review, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

// MockHealthChecker is a mock implementation of ports.HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Health(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// recordingSchema appends its name to a shared log on every call.
type recordingSchema struct {
	name  string
	calls *[]string
	err   error
}

func (s recordingSchema) CreateTable(context.Context) error {
	*s.calls = append(*s.calls, "create "+s.name)
	return s.err
}

func (s recordingSchema) DropTable(context.Context) error {
	*s.calls = append(*s.calls, "drop "+s.name)
	return s.err
}
