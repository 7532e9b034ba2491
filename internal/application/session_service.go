package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/logging"
	"github.com/bnema/techsillies-cli/internal/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

type SessionService struct {
	api           ports.ProfileAPI
	store         *SessionStore
	credentials   ports.CredentialStore
	credentialKey string
	clock         ports.Clock
	log           logrus.FieldLogger
}

func NewSessionService(api ports.ProfileAPI, store *SessionStore, credentials ports.CredentialStore, credentialKey string, clock ports.Clock, log logrus.FieldLogger) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionService{
		api:           api,
		store:         store,
		credentials:   credentials,
		credentialKey: credentialKey,
		clock:         clock,
		log:           logging.OrDiscard(log),
	}
}

func (s *SessionService) SignIn(ctx context.Context, email, password string) (domain.UserProfile, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.UserProfile{}, fmt.Errorf("%w: email and password", domain.ErrMissingField)
	}

	profile, err := s.api.SignIn(ctx, email, password)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("sign in: %w", err)
	}

	return s.establish(ctx, profile)
}

func (s *SessionService) SignUp(ctx context.Context, form domain.SignUp) (domain.UserProfile, error) {
	if err := form.Validate(); err != nil {
		return domain.UserProfile{}, err
	}

	profile, err := s.api.SignUp(ctx, form)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("sign up: %w", err)
	}

	return s.establish(ctx, profile)
}

// CompleteOAuth stores the token handed back by the Google sign-in redirect
// and loads the profile it belongs to.
func (s *SessionService) CompleteOAuth(ctx context.Context, token string) (domain.UserProfile, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.UserProfile{}, fmt.Errorf("%w: oauth token", domain.ErrMissingField)
	}

	if err := s.credentials.Write(ctx, s.credentialKey, token); err != nil {
		return domain.UserProfile{}, fmt.Errorf("store oauth credential: %w", err)
	}

	profile, err := s.api.Profile(ctx)
	if err != nil {
		if rollbackErr := s.credentials.Remove(ctx, s.credentialKey); rollbackErr != nil {
			return domain.UserProfile{}, fmt.Errorf("load oauth profile and forget credential: %w", errors.Join(err, rollbackErr))
		}
		return domain.UserProfile{}, fmt.Errorf("load oauth profile: %w", err)
	}

	return s.establish(ctx, profile)
}

func (s *SessionService) EditProfile(ctx context.Context, cmd EditProfileCommand) (domain.UserProfile, error) {
	current := s.store.Snapshot().CurrentUser
	if current == nil {
		return domain.UserProfile{}, domain.ErrNotAuthenticated
	}

	edit := domain.EditFrom(*current)
	applyString(&edit.FirstName, cmd.FirstName)
	applyString(&edit.LastName, cmd.LastName)
	applyString(&edit.About, cmd.About)
	applyString(&edit.Company, cmd.Company)
	applyString(&edit.Headline, cmd.Headline)
	if cmd.ClearSkills {
		edit.Skills = nil
	}
	if len(cmd.RemoveSkills) > 0 {
		edit.Skills = domain.RemoveSkills(edit.Skills, cmd.RemoveSkills)
	}
	if cmd.AddSkills != "" {
		skills, err := domain.ParseSkills(edit.Skills, cmd.AddSkills)
		if err != nil {
			return domain.UserProfile{}, err
		}
		edit.Skills = skills
	}
	edit.Image = cmd.Image

	if err := edit.Validate(); err != nil {
		return domain.UserProfile{}, err
	}

	profile, err := s.api.EditProfile(ctx, edit)
	if err != nil {
		return domain.UserProfile{}, s.handleAuthError(ctx, fmt.Errorf("edit profile: %w", err))
	}

	if err := s.store.SetCurrentUser(ctx, profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

// CurrentUser returns the cached user while its credential is fresh, and asks
// the server otherwise. A rejected credential clears the session.
func (s *SessionService) CurrentUser(ctx context.Context, force bool) (domain.UserProfile, error) {
	if current := s.store.Snapshot().CurrentUser; current != nil && !force && s.credentialFresh(ctx) {
		return *current, nil
	}

	profile, err := s.api.Profile(ctx)
	if err != nil {
		return domain.UserProfile{}, s.handleAuthError(ctx, fmt.Errorf("load profile: %w", err))
	}

	if err := s.store.SetCurrentUser(ctx, profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

func (s *SessionService) SignOut(ctx context.Context) error {
	if err := s.api.SignOut(ctx); err != nil && !errors.Is(err, domain.ErrNotAuthenticated) {
		return fmt.Errorf("sign out: %w", err)
	}

	return s.store.ClearSession(ctx)
}

func (s *SessionService) establish(ctx context.Context, profile domain.UserProfile) (domain.UserProfile, error) {
	if err := s.store.SetCurrentUser(ctx, profile); err != nil {
		return domain.UserProfile{}, err
	}

	s.log.WithField("user_id", profile.ID).Info("signed in")
	return profile, nil
}

func (s *SessionService) handleAuthError(ctx context.Context, err error) error {
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		return err
	}

	if clearErr := s.store.ClearSession(ctx); clearErr != nil {
		return errors.Join(err, clearErr)
	}
	return err
}

// credentialFresh reports whether the stored credential can still be used.
// Opaque tokens and JWTs without exp are treated as fresh.
func (s *SessionService) credentialFresh(ctx context.Context) bool {
	if s.credentials == nil {
		return true
	}

	token, err := s.credentials.Read(ctx, s.credentialKey)
	if err != nil {
		if !errors.Is(err, domain.ErrCredentialNotFound) {
			s.log.WithError(err).Warn("read session credential")
		}
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return s.clock.Now().Before(exp.Time)
}

func applyString(target *string, value *string) {
	if value != nil {
		*target = strings.TrimSpace(*value)
	}
}
