// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/api"
	"github.com/taskdeck/taskdeck/internal/infra/auth"
	"github.com/taskdeck/taskdeck/internal/infra/config"
	"github.com/taskdeck/taskdeck/internal/infra/logging"
	"github.com/taskdeck/taskdeck/internal/session"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for
// use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks     domain.TaskService
	Directory domain.UserDirectory
	Provider  domain.IdentityProvider
	Tokens    domain.TokenStore
	Clock     domain.Clock

	// Process-wide state
	Sessions *session.Store

	// Pointer fields
	Logger    *slog.Logger
	logCloser io.Closer

	// Configuration
	Config       *domain.Config
	ConfigLoader *config.Loader
}

// New creates a Container from the configuration in the default config
// directory. A missing task API base URL fails fast here.
func New() (*Container, error) {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(loader.Dir(), logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		return nil, err
	}

	apiClient := api.New(cfg.API.BaseURL)

	return &Container{
		Tasks:        apiClient,
		Directory:    apiClient,
		Provider:     auth.New(cfg.Auth.BaseURL, cfg.Auth.APIKey),
		Tokens:       auth.NewTokenCache(loader.Dir()),
		Clock:        domain.RealClock{},
		Sessions:     session.NewStore(),
		Logger:       logger,
		logCloser:    closer,
		Config:       cfg,
		ConfigLoader: loader,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, tasks domain.TaskService, directory domain.UserDirectory, provider domain.IdentityProvider, tokens domain.TokenStore, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Tasks:        tasks,
		Directory:    directory,
		Provider:     provider,
		Tokens:       tokens,
		Clock:        clock,
		Sessions:     session.NewStore(),
		Logger:       logger,
		Config:       cfg,
		ConfigLoader: config.NewLoader(),
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.logCloser != nil {
		return c.logCloser.Close()
	}
	return nil
}

// UseCase factory methods

// RestoreSessionUseCase returns a new RestoreSession use case.
func (c *Container) RestoreSessionUseCase() *usecase.RestoreSession {
	return usecase.NewRestoreSession(c.Provider, c.Tokens, c.Sessions, c.Clock, c.Logger)
}

// SignInUseCase returns a new SignIn use case.
func (c *Container) SignInUseCase() *usecase.SignIn {
	return usecase.NewSignIn(c.Provider, c.Tokens, c.Sessions, c.Logger)
}

// SignInWithGoogleUseCase returns a new SignInWithGoogle use case.
func (c *Container) SignInWithGoogleUseCase() *usecase.SignInWithGoogle {
	return usecase.NewSignInWithGoogle(c.Provider, c.Tokens, c.Sessions, c.Logger)
}

// CreateAccountUseCase returns a new CreateAccount use case.
func (c *Container) CreateAccountUseCase() *usecase.CreateAccount {
	return usecase.NewCreateAccount(c.Provider, c.Directory, c.Tokens, c.Sessions, c.Logger)
}

// UpdateProfileUseCase returns a new UpdateProfile use case.
func (c *Container) UpdateProfileUseCase() *usecase.UpdateProfile {
	return usecase.NewUpdateProfile(c.Provider, c.Tokens, c.Sessions)
}

// SignOutUseCase returns a new SignOut use case.
func (c *Container) SignOutUseCase() *usecase.SignOut {
	return usecase.NewSignOut(c.Tokens, c.Sessions, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Sessions)
}

// GetTaskUseCase returns a new GetTask use case.
func (c *Container) GetTaskUseCase() *usecase.GetTask {
	return usecase.NewGetTask(c.Tasks)
}

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Tasks, c.Sessions, c.Clock, c.Logger)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}
