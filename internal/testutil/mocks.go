// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskService is an in-memory test double for domain.TaskService.
// Fields are ordered to minimize memory padding.
type MockTaskService struct {
	Tasks     map[string]domain.Task
	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
	NextID    int
}

// NewMockTaskService creates a MockTaskService with an initialized map.
func NewMockTaskService() *MockTaskService {
	return &MockTaskService{
		Tasks:  make(map[string]domain.Task),
		NextID: 1,
	}
}

// Seed stores a task under its ID.
func (m *MockTaskService) Seed(task domain.Task) {
	m.Tasks[task.ID] = task
}

// ListByEmail returns all tasks owned by the email.
func (m *MockTaskService) ListByEmail(_ context.Context, email string) ([]domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []domain.Task
	for _, t := range m.Tasks {
		if t.Email == email {
			out = append(out, t)
		}
	}
	return out, nil
}

// Get retrieves a task by ID.
func (m *MockTaskService) Get(_ context.Context, id string) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	t, ok := m.Tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &t, nil
}

// Create stores the task under a generated ID.
func (m *MockTaskService) Create(_ context.Context, task domain.Task) (*domain.Task, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	task.ID = fmt.Sprintf("srv-%d", m.NextID)
	m.NextID++
	m.Tasks[task.ID] = task
	return &task, nil
}

// Update replaces the task under the ID.
func (m *MockTaskService) Update(_ context.Context, id string, task domain.Task) (*domain.Task, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	if _, ok := m.Tasks[id]; !ok {
		return nil, domain.ErrTaskNotFound
	}
	task.ID = id
	m.Tasks[id] = task
	return &task, nil
}

// Delete removes the task under the ID.
func (m *MockTaskService) Delete(_ context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.Tasks[id]; !ok {
		return &domain.ServerError{StatusCode: 404, Body: "not found"}
	}
	delete(m.Tasks, id)
	return nil
}

// MockUserDirectory is a test double for domain.UserDirectory.
type MockUserDirectory struct {
	Registered  []domain.UserRecord
	RegisterErr error
}

// RegisterUser records the registration.
func (m *MockUserDirectory) RegisterUser(_ context.Context, rec domain.UserRecord) error {
	if m.RegisterErr != nil {
		return m.RegisterErr
	}
	m.Registered = append(m.Registered, rec)
	return nil
}

// MockIdentityProvider is a test double for domain.IdentityProvider.
// Fields are ordered to minimize memory padding.
type MockIdentityProvider struct {
	Creds        *domain.Credentials
	Updated      *domain.Identity
	SignInErr    error
	CreateErr    error
	UpdateErr    error
	RefreshErr   error
	SignInCalls  int
	RefreshCalls int
}

// SignIn returns the configured credentials or error.
func (m *MockIdentityProvider) SignIn(_ context.Context, _, _ string) (*domain.Credentials, error) {
	m.SignInCalls++
	if m.SignInErr != nil {
		return nil, m.SignInErr
	}
	return m.Creds, nil
}

// SignInWithGoogle returns the configured credentials or error.
func (m *MockIdentityProvider) SignInWithGoogle(_ context.Context, _ string) (*domain.Credentials, error) {
	m.SignInCalls++
	if m.SignInErr != nil {
		return nil, m.SignInErr
	}
	return m.Creds, nil
}

// CreateAccount returns the configured credentials or error.
func (m *MockIdentityProvider) CreateAccount(_ context.Context, _, _ string) (*domain.Credentials, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return m.Creds, nil
}

// UpdateProfile records the update and returns the new identity.
func (m *MockIdentityProvider) UpdateProfile(_ context.Context, _, name, photoURL string) (*domain.Identity, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	identity := domain.Identity{DisplayName: name, PhotoURL: photoURL}
	if m.Creds != nil {
		identity.UID = m.Creds.Identity.UID
		identity.Email = m.Creds.Identity.Email
	}
	m.Updated = &identity
	return &identity, nil
}

// Refresh returns the configured credentials or error.
func (m *MockIdentityProvider) Refresh(_ context.Context, _ string) (*domain.Credentials, error) {
	m.RefreshCalls++
	if m.RefreshErr != nil {
		return nil, m.RefreshErr
	}
	return m.Creds, nil
}

// MockTokenStore is a test double for domain.TokenStore.
type MockTokenStore struct {
	Stored   *domain.Credentials
	LoadErr  error
	SaveErr  error
	ClearErr error
}

// Load returns the stored credentials.
func (m *MockTokenStore) Load() (*domain.Credentials, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Stored, nil
}

// Save stores the credentials.
func (m *MockTokenStore) Save(creds *domain.Credentials) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored = creds
	return nil
}

// Clear removes the stored credentials.
func (m *MockTokenStore) Clear() error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Stored = nil
	return nil
}
