package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	mathrand "math/rand/v2"
	"strings"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

const (
	googlePasswordLength = 16
	googleUsernameDigits = 4
)

// authService is the concrete implementation of AuthService.
// It handles sign-up, credential verification, Google sign-in and session
// token lifecycle using a UserRepository for persistence and bcrypt for
// password digests.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// googleVerifier checks Google ID tokens. Nil disables verification.
	googleVerifier adapter.GoogleVerifier

	validator validators.Validator

	// tokenParams holds the HMAC secret, the optional issuer and the optional
	// lifetime of session tokens.
	tokenParams utils.TokenParams

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, googleVerifier adapter.GoogleVerifier, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		googleVerifier: googleVerifier,
		validator:      validator,
		tokenParams: utils.TokenParams{
			SignKey:  cfg.TokenSignKey,
			Issuer:   cfg.TokenIssuer,
			Duration: cfg.TokenDuration,
		},
		logger: logger,
	}
}

// SignUp creates a new account.
//
// Returns the persisted user or:
//   - a validators error if a field is missing or the username is invalid.
//   - store.ErrUserAlreadyExists (wrapped) if the username or email is taken.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid sign up request")
		return models.User{}, err
	}

	digest, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:   utils.NewID(),
		Username: req.Username,
		Email:    req.Email,
		Password: digest,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// SignIn authenticates an existing user by email and password.
//
// Returns the user record or:
//   - validators.ErrAllFieldsRequired if email or password is empty.
//   - store.ErrUserNotFound (wrapped) if no user has that email.
//   - ErrIncorrectPassword if the password does not match the digest.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		log.Warn().Str("id", user.UserID).Msg("wrong password")
		return models.User{}, ErrIncorrectPassword
	}

	return user, nil
}

// GoogleSignIn signs in the user registered with the Google identity's email.
// On first use it creates the account with a random password, a username
// derived from the display name and the Google photo as profile picture.
//
// When a GoogleVerifier is configured the identity is taken from the verified
// ID token and the name, email and photo sent by the client are ignored.
func (a *authService) GoogleSignIn(ctx context.Context, req models.GoogleAuthRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	identity := models.GoogleIdentity{Email: req.Email, Name: req.Name, Picture: req.GooglePhotoURL}
	if a.googleVerifier != nil {
		verified, err := a.googleVerifier.VerifyIDToken(ctx, req.IDToken)
		if err != nil {
			log.Err(err).Msg("google id token verification failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrGoogleSignInFailed, err)
		}
		identity = verified
	}

	if identity.Email == "" || identity.Name == "" {
		return models.User{}, validators.ErrAllFieldsRequired
	}

	user, err := a.userRepository.FindUserByEmail(ctx, identity.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("email", identity.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	digest, err := utils.HashPassword(rand.Text()[:googlePasswordLength])
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err = a.userRepository.CreateUser(ctx, models.User{
		UserID:         utils.NewID(),
		Username:       googleUsername(identity.Name),
		Email:          identity.Email,
		Password:       digest,
		ProfilePicture: identity.Picture,
	})
	if err != nil {
		log.Err(err).Str("email", identity.Email).Msg("google user creation ended with error")
		return models.User{}, fmt.Errorf("google user creation ended with error: %w", err)
	}

	log.Info().Str("id", user.UserID).Msg("user created from google identity")
	return user, nil
}

// CreateToken issues a signed session token carrying the user's id and admin
// flag.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenParams, user.UserID, user.IsAdmin)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", user.UserID).Msg("session token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies a raw session token. Every failure (empty, malformed,
// forged, expired, wrong issuer, missing id) is normalised to
// ErrUnauthorizedAccess so that callers do not need to inspect low-level JWT
// errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	if tokenString == "" {
		return models.Claims{}, ErrUnauthorizedAccess
	}

	claims, err := utils.ParseSessionToken(a.tokenParams, tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Claims{}, ErrUnauthorizedAccess
	}

	return claims, nil
}

// googleUsername lowercases name, drops its spaces and appends four random
// digits in 0..8.
func googleUsername(name string) string {
	var b strings.Builder
	b.WriteString(strings.ReplaceAll(strings.ToLower(name), " ", ""))
	for range googleUsernameDigits {
		b.WriteByte(byte('0' + mathrand.IntN(9)))
	}
	return b.String()
}
