package auth

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PacMac-Mobile-LLC/Velour-sub002/internal/domain"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidRole   = errors.New("invalid role")
)

// Service validates registration submissions and issues session tokens.
// There is no persistence behind it: two identical submissions both succeed
// and receive distinct tokens.
type Service struct {
	logger   *zap.Logger
	validate *validator.Validate
	tokens   TokenIssuer
}

func NewService(logger *zap.Logger, tokens TokenIssuer) *Service {
	return &Service{
		logger:   logger,
		validate: validator.New(),
		tokens:   tokens,
	}
}

func (s *Service) Register(req domain.RegisterRequest) (*domain.RegisterResult, error) {
	if req.Role == "" {
		req.Role = domain.RoleSubscriber
	}
	if err := s.validate.Struct(req); err != nil {
		verr := classifyValidation(err)
		// passwords are deliberately excluded from logs
		s.logger.Info("register_rejected",
			zap.String("username", req.Username),
			zap.String("email", req.Email),
			zap.String("role", string(req.Role)),
			zap.String("reason", verr.Error()),
		)
		return nil, verr
	}

	user := domain.User{
		ID:          uuid.NewString(),
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	}
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	s.logger.Info("register_accepted",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)
	return &domain.RegisterResult{Token: token, User: user}, nil
}

func classifyValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrMissingFields
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			return ErrMissingFields
		case "email":
			return ErrInvalidEmail
		case "oneof":
			return ErrInvalidRole
		}
	}
	return ErrMissingFields
}
