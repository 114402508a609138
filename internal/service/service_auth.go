package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-bus-finder/internal/config"
	"github.com/MKhiriev/go-bus-finder/internal/logger"
	"github.com/MKhiriev/go-bus-finder/internal/store"
	"github.com/MKhiriev/go-bus-finder/models"
)

// dummyPassword is hashed once at construction. Logins for unknown emails
// are compared against that hash so both failure paths cost one bcrypt
// comparison.
const dummyPassword = "bus-finder-dummy-password"

// maxPasswordBytes is the bcrypt input limit. Longer passwords are truncated
// on both signup and login, so only the first 72 bytes are significant.
const maxPasswordBytes = 72

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; plaintext never leaves this type.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor for new hashes. Existing hashes carry
	// their own cost, so changing it does not affect login.
	bcryptCost int

	dummyHash []byte

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository. A cost outside bcrypt's range falls back to
// bcrypt.DefaultCost.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("failed to prepare dummy hash")
	}

	return &authService{
		userRepository: userRepository,
		bcryptCost:     cost,
		dummyHash:      dummyHash,
		logger:         logger,
	}
}

// Signup hashes req.Password and stores the new user.
//
// Only the first 72 bytes of the password are hashed.
//
// Returns:
//   - ErrPasswordHashing if bcrypt fails to produce a hash.
//   - ErrStoreFailure wrapping the store error on any insert failure,
//     including a duplicate email (see store.ErrEmailAlreadyExists).
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) error {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword(passwordBytes(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
	}

	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Warn().Str("func", "*authService.Signup").Str("email", req.Email).Msg("signup with already registered email")
		} else {
			log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		}
		return fmt.Errorf("%w: user creation ended with error: %w", ErrStoreFailure, err)
	}

	log.Info().Str("func", "*authService.Signup").Str("email", req.Email).Msg("user registered")
	return nil
}

// Login authenticates an existing user.
//
// Returns the stored user or:
//   - ErrInvalidCredentials when the email is unknown or the password does
//     not match the stored hash. The two cases are indistinguishable.
//   - ErrStoreFailure wrapping the store error when the lookup fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.compareDummy(req.Password)
			log.Debug().Str("func", "*authService.Login").Msg("login with unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("%w: user search by email failed: %w", ErrStoreFailure, err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), passwordBytes(req.Password))
	switch {
	case err == nil:
		return foundUser, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		log.Debug().Str("func", "*authService.Login").Int64("id", foundUser.ID).Msg("wrong password")
	default:
		// stored hash is unusable; the caller still sees a plain auth failure
		log.Err(err).Str("func", "*authService.Login").Int64("id", foundUser.ID).Msg("stored password hash is invalid")
	}

	return models.User{}, ErrInvalidCredentials
}

func (a *authService) compareDummy(password string) {
	if a.dummyHash == nil {
		return
	}
	_ = bcrypt.CompareHashAndPassword(a.dummyHash, passwordBytes(password))
}

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		return b[:maxPasswordBytes]
	}
	return b
}
