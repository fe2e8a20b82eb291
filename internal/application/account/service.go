package account

import (
	"context"
	"errors"
	"fmt"

	"gymkeep/internal/domain/identity"
	"gymkeep/internal/domain/person"
	"gymkeep/internal/shared/authorization"
	apperrors "gymkeep/internal/shared/errors"
	"gymkeep/internal/shared/logger"
)

type Service struct {
	identityRepo identity.Repository
	personRepo   person.Repository
	provisioner  Provisioner
	hasher       PasswordHasher
	tokens       TokenIssuer
	logger       logger.Interface
}

func NewService(
	identityRepo identity.Repository,
	personRepo person.Repository,
	provisioner Provisioner,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *Service {
	return &Service{
		identityRepo: identityRepo,
		personRepo:   personRepo,
		provisioner:  provisioner,
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger,
	}
}

// Register opens a self-service client account.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*AccountDTO, error) {
	return s.Provision(ctx, ProvisionCommand{
		RegisterCommand: cmd,
		Role:            authorization.RoleClient.String(),
	})
}

// Provision creates an identity with the requested role and its person
// record in one transaction. A duplicate login, email or national ID
// aborts the whole operation and reports which field collided.
func (s *Service) Provision(ctx context.Context, cmd ProvisionCommand) (*AccountDTO, error) {
	role, ok := authorization.ParseRole(cmd.Role)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown role: %s", cmd.Role))
	}

	ident, err := identity.NewIdentity(cmd.Login, cmd.Email, role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// Fail fast before hashing; the unique index stays authoritative
	// under concurrent provisioning.
	existing, err := s.identityRepo.FindByEmail(ctx, ident.Email())
	if err != nil {
		s.logger.Errorw("failed to check email", "error", err, "login", cmd.Login)
		return nil, apperrors.NewInternalError("failed to create account")
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(identity.ErrEmailTaken.Error())
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		s.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to process password")
	}
	if err := ident.SetPasswordHash(hash); err != nil {
		return nil, apperrors.NewInternalError("failed to process password")
	}

	kind, err := person.KindForRole(role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	p, err := person.NewPerson(kind, cmd.FirstName, cmd.LastName, cmd.NationalID, cmd.PhoneNumber)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.provisioner.Provision(ctx, ident, p); err != nil {
		switch {
		case errors.Is(err, identity.ErrLoginTaken):
			return nil, apperrors.NewConflictError("login already taken")
		case errors.Is(err, identity.ErrEmailTaken):
			return nil, apperrors.NewConflictError("email already taken")
		case errors.Is(err, person.ErrNationalIDTaken):
			return nil, apperrors.NewConflictError("national ID already registered")
		}
		s.logger.Errorw("failed to provision account", "error", err, "login", cmd.Login)
		return nil, apperrors.NewInternalError("failed to create account")
	}

	s.logger.Infow("account provisioned",
		"identity_id", ident.ID(), "person_id", p.ID(), "role", role.String())

	dto := accountToDTO(ident, p)
	return &dto, nil
}

// ProvisionPerson creates a person record without a login, for people
// managed entirely by staff.
func (s *Service) ProvisionPerson(ctx context.Context, kind person.Kind, cmd RegisterCommand) (*AccountDTO, error) {
	p, err := person.NewPerson(kind, cmd.FirstName, cmd.LastName, cmd.NationalID, cmd.PhoneNumber)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.provisioner.ProvisionPerson(ctx, p); err != nil {
		if errors.Is(err, person.ErrNationalIDTaken) {
			return nil, apperrors.NewConflictError("national ID already registered")
		}
		s.logger.Errorw("failed to provision person", "error", err)
		return nil, apperrors.NewInternalError("failed to create person record")
	}

	return &AccountDTO{
		PersonID:    p.ID(),
		FirstName:   p.FirstName(),
		LastName:    p.LastName(),
		NationalID:  p.NationalID(),
		PhoneNumber: p.PhoneNumber(),
		Active:      p.Active(),
		CreatedAt:   p.CreatedAt(),
	}, nil
}

// Login authenticates by login name and password. Failures are reported
// with one generic message regardless of which check failed, so probing
// for existing logins yields nothing.
func (s *Service) Login(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	ident, err := s.identityRepo.FindByLogin(ctx, cmd.Login)
	if err != nil {
		s.logger.Errorw("failed to look up identity", "error", err)
		return nil, apperrors.NewInternalError("failed to log in")
	}
	if ident == nil {
		return nil, apperrors.NewUnauthorizedError("invalid login or password")
	}

	if !s.hasher.Verify(cmd.Password, ident.PasswordHash()) {
		s.logger.Warnw("failed login attempt", "login", cmd.Login)
		return nil, apperrors.NewUnauthorizedError("invalid login or password")
	}

	p, err := s.personRepo.GetByIdentityID(ctx, ident.ID())
	if err != nil {
		s.logger.Errorw("failed to load person for identity", "error", err, "identity_id", ident.ID())
		return nil, apperrors.NewInternalError("failed to log in")
	}
	if p == nil {
		s.logger.Errorw("identity has no person record", "identity_id", ident.ID())
		return nil, apperrors.NewInternalError("failed to log in")
	}
	if !p.Active() {
		return nil, apperrors.NewUnauthorizedError("account is disabled")
	}

	token, err := s.tokens.Generate(ident.ID(), ident.Role(), cmd.Remember)
	if err != nil {
		s.logger.Errorw("failed to issue token", "error", err, "identity_id", ident.ID())
		return nil, apperrors.NewInternalError("failed to log in")
	}

	s.logger.Infow("identity logged in", "identity_id", ident.ID(), "remember", cmd.Remember)

	return &LoginResult{
		Token:      token.Value,
		ExpiresIn:  token.ExpiresIn,
		NextTarget: authorization.SafeNextTarget(cmd.Next),
		Account:    accountToDTO(ident, p),
	}, nil
}

// Profile returns the caller's identity and person record.
func (s *Service) Profile(ctx context.Context, identityID uint) (*AccountDTO, error) {
	ident, err := s.identityRepo.GetByID(ctx, identityID)
	if err != nil {
		s.logger.Errorw("failed to get identity", "error", err, "identity_id", identityID)
		return nil, apperrors.NewInternalError("failed to load profile")
	}
	if ident == nil {
		return nil, apperrors.NewNotFoundError(identity.ErrIdentityNotFound.Error())
	}

	p, err := s.personRepo.GetByIdentityID(ctx, identityID)
	if err != nil {
		s.logger.Errorw("failed to get person", "error", err, "identity_id", identityID)
		return nil, apperrors.NewInternalError("failed to load profile")
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("person record not found")
	}

	dto := accountToDTO(ident, p)
	return &dto, nil
}
