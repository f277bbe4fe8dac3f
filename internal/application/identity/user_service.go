package identity

import (
	"context"

	"github.com/dailydiet/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// UserService handles user registration and lookup
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Create registers a new user bound to the given session token.
// The token comes from the caller's cookie when present, otherwise the
// handler mints a fresh one before calling here.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest, sessionID uuid.UUID) (*UserResponse, error) {
	user, err := identity.NewUser(req.Name, req.Email, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// List returns every registered user, oldest first
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses, nil
}

// ResolveSession finds the user holding the given session token
func (s *UserService) ResolveSession(ctx context.Context, sessionID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}
