package identity

import (
	"context"
	"strings"

	"github.com/docflow/backend/internal/domain/identity"
	"github.com/docflow/backend/internal/domain/shared"
	"github.com/docflow/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles authentication operations
type AuthService struct {
	users      identity.UserRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(users identity.UserRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Signup registers a new portal account. Admin accounts are provisioned
// out of band, never through self-service signup.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*LoginResult, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("USERNAME_TAKEN", "Username is already taken")
	}
	registered, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "Email is already registered")
	}

	user, err := identity.NewUser(username, email, input.Password, identity.RolePortal)
	if err != nil {
		return nil, err
	}
	if input.DisplayName != "" {
		if err := user.SetDisplayName(input.DisplayName); err != nil {
			return nil, err
		}
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("portal account registered",
		zap.String("username", user.Username),
		zap.String("email", user.Email))

	return s.issueTokens(user)
}

// Login authenticates by username or email and returns tokens. Wrong
// username and wrong password report the same error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	invalidCredentials := shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")

	name := strings.ToLower(strings.TrimSpace(input.Username))
	user, err := s.users.FindByUsername(ctx, name)
	if err != nil {
		if strings.Contains(name, "@") {
			user, err = s.users.FindByEmail(ctx, name)
		}
		if err != nil {
			s.logger.Warn("login attempt for unknown account", zap.String("username", name))
			return nil, invalidCredentials
		}
	}

	if user.Archived {
		s.logger.Warn("login attempt for archived account", zap.String("username", name))
		return nil, invalidCredentials
	}
	if !user.CheckPassword(input.Password) {
		s.logger.Warn("failed login", zap.String("username", user.Username))
		return nil, invalidCredentials
	}

	s.logger.Info("login succeeded",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Archived {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Account is no longer active")
	}

	return s.issueTokens(user)
}

// GetUser retrieves an account by ID
func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

func (s *AuthService) issueTokens(user *identity.User) (*LoginResult, error) {
	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		User:   ToUserResponse(user),
		Tokens: tokens,
	}, nil
}
