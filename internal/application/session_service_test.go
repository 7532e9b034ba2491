package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/bnema/techsillies-cli/internal/ports/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixture struct {
	storeFixture
	api     *mocks.MockProfileAPI
	clock   *mocks.MockClock
	service *SessionService
}

func newSessionServiceFixture(t *testing.T) sessionServiceFixture {
	t.Helper()

	f := newStoreFixture(t)
	api := mocks.NewMockProfileAPI(t)
	clock := mocks.NewMockClock(t)
	service := NewSessionService(api, f.store, f.credentials, testCredentialKey, clock, nil)
	return sessionServiceFixture{storeFixture: f, api: api, clock: clock, service: service}
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"_id": "me",
		"exp": expiresAt.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSessionServiceSignInStoresProfile(t *testing.T) {
	f := newSessionServiceFixture(t)
	me := domain.UserProfile{ID: "me", FirstName: "Grace"}
	f.api.EXPECT().SignIn(mockAnyContext(), "grace@example.com", "hunter2").Return(me, nil)

	profile, err := f.service.SignIn(context.Background(), "  grace@example.com ", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, me, profile)
	assert.Equal(t, &me, f.store.Snapshot().CurrentUser)
}

func TestSessionServiceSignInRequiresCredentials(t *testing.T) {
	f := newSessionServiceFixture(t)

	_, err := f.service.SignIn(context.Background(), " ", "secret")
	require.ErrorIs(t, err, domain.ErrMissingField)
	assert.False(t, f.store.Snapshot().Authenticated())
}

func TestSessionServiceSignInFailureKeepsSignedOut(t *testing.T) {
	f := newSessionServiceFixture(t)
	f.api.EXPECT().SignIn(mockAnyContext(), "grace@example.com", "wrong").Return(domain.UserProfile{}, errors.New("Invalid credentials"))

	_, err := f.service.SignIn(context.Background(), "grace@example.com", "wrong")
	require.ErrorContains(t, err, "sign in: Invalid credentials")
	assert.False(t, f.store.Snapshot().Authenticated())
}

func TestSessionServiceSignUpValidatesBeforeCalling(t *testing.T) {
	f := newSessionServiceFixture(t)

	_, err := f.service.SignUp(context.Background(), domain.SignUp{FirstName: "Grace", Email: "grace@example.com"})
	require.ErrorIs(t, err, domain.ErrMissingField)
}

func TestSessionServiceSignUpEstablishesSession(t *testing.T) {
	f := newSessionServiceFixture(t)
	form := domain.SignUp{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Password: "Str0ng!pass"}
	me := domain.UserProfile{ID: "me", FirstName: "Grace", LastName: "Hopper"}
	f.api.EXPECT().SignUp(mockAnyContext(), form).Return(me, nil)

	profile, err := f.service.SignUp(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, me, profile)
	assert.True(t, f.store.Snapshot().Authenticated())
}

func TestSessionServiceCurrentUserServesCacheWhileTokenFresh(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()
	me := signedIn(t, f.storeFixture)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, f.credentials.Write(ctx, testCredentialKey, signedToken(t, now.Add(time.Hour))))
	f.clock.EXPECT().Now().Return(now)

	profile, err := f.service.CurrentUser(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, me, profile)
}

func TestSessionServiceCurrentUserRefetchesWhenTokenExpired(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()
	signedIn(t, f.storeFixture)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, f.credentials.Write(ctx, testCredentialKey, signedToken(t, now.Add(-time.Minute))))
	f.clock.EXPECT().Now().Return(now)

	fresh := domain.UserProfile{ID: "me", FirstName: "Grace", Headline: "Rear Admiral"}
	f.api.EXPECT().Profile(mockAnyContext()).Return(fresh, nil)

	profile, err := f.service.CurrentUser(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, fresh, profile)
	assert.Equal(t, "Rear Admiral", f.store.Snapshot().CurrentUser.Headline)
}

func TestSessionServiceCurrentUserTreatsOpaqueTokenAsFresh(t *testing.T) {
	f := newSessionServiceFixture(t)
	me := signedIn(t, f.storeFixture)

	profile, err := f.service.CurrentUser(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, me, profile)
}

func TestSessionServiceCurrentUserForceAlwaysFetches(t *testing.T) {
	f := newSessionServiceFixture(t)
	me := signedIn(t, f.storeFixture)
	f.api.EXPECT().Profile(mockAnyContext()).Return(me, nil).Once()

	_, err := f.service.CurrentUser(context.Background(), true)
	require.NoError(t, err)
}

func TestSessionServiceCurrentUserWithoutCredentialFetches(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()
	signedIn(t, f.storeFixture)
	require.NoError(t, f.credentials.Remove(ctx, testCredentialKey))

	f.api.EXPECT().Profile(mockAnyContext()).Return(domain.UserProfile{}, domain.ErrNotAuthenticated)

	_, err := f.service.CurrentUser(ctx, false)
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.False(t, f.store.Snapshot().Authenticated())
}

func TestSessionServiceUnauthorizedClearsSession(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()
	signedIn(t, f.storeFixture)
	require.NoError(t, f.store.SetConnections(ctx, []domain.UserProfile{{ID: "c1"}}))

	f.api.EXPECT().Profile(mockAnyContext()).Return(domain.UserProfile{}, domain.ErrNotAuthenticated)

	_, err := f.service.CurrentUser(ctx, true)
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)

	assert.Equal(t, domain.Session{}, f.store.Snapshot())
	_, err = f.credentials.Read(ctx, testCredentialKey)
	require.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestSessionServiceTransientErrorKeepsSession(t *testing.T) {
	f := newSessionServiceFixture(t)
	signedIn(t, f.storeFixture)
	f.api.EXPECT().Profile(mockAnyContext()).Return(domain.UserProfile{}, errors.New("connection refused"))

	_, err := f.service.CurrentUser(context.Background(), true)
	require.ErrorContains(t, err, "load profile: connection refused")
	assert.True(t, f.store.Snapshot().Authenticated())
}

func TestSessionServiceCompleteOAuth(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()
	me := domain.UserProfile{ID: "me", FirstName: "Grace"}
	f.api.EXPECT().Profile(mockAnyContext()).Return(me, nil)

	profile, err := f.service.CompleteOAuth(ctx, " oauth-token ")
	require.NoError(t, err)
	assert.Equal(t, me, profile)

	stored, err := f.credentials.Read(ctx, testCredentialKey)
	require.NoError(t, err)
	assert.Equal(t, "oauth-token", stored)
}

func TestSessionServiceCompleteOAuthForgetsRejectedToken(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()
	f.api.EXPECT().Profile(mockAnyContext()).Return(domain.UserProfile{}, domain.ErrNotAuthenticated)

	_, err := f.service.CompleteOAuth(ctx, "oauth-token")
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)

	_, err = f.credentials.Read(ctx, testCredentialKey)
	require.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestSessionServiceEditProfileMergesSkills(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.SetCurrentUser(ctx, domain.UserProfile{
		ID: "me", FirstName: "Grace", Headline: "Admiral", Company: "Navy", Skills: []string{"cobol"},
	}))

	headline := "Rear Admiral"
	updated := domain.UserProfile{ID: "me", FirstName: "Grace", Headline: headline, Company: "Navy", Skills: []string{"cobol", "compilers", "flow-matic"}}
	f.api.EXPECT().EditProfile(mockAnyContext(), mock.MatchedBy(func(edit domain.ProfileEdit) bool {
		return edit.Headline == headline && assert.ObjectsAreEqual([]string{"cobol", "compilers", "flow-matic"}, edit.Skills)
	})).Return(updated, nil)

	profile, err := f.service.EditProfile(ctx, EditProfileCommand{Headline: &headline, AddSkills: "compilers; flow-matic, cobol"})
	require.NoError(t, err)
	assert.Equal(t, updated, profile)
	assert.Equal(t, headline, f.store.Snapshot().CurrentUser.Headline)
}

func TestSessionServiceEditProfileRemovesBeforeAdding(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.SetCurrentUser(ctx, domain.UserProfile{
		ID: "me", FirstName: "Grace", Headline: "Admiral", Company: "Navy", Skills: []string{"cobol", "fortran"},
	}))

	updated := domain.UserProfile{ID: "me", FirstName: "Grace", Headline: "Admiral", Company: "Navy", Skills: []string{"fortran", "compilers"}}
	f.api.EXPECT().EditProfile(mockAnyContext(), mock.MatchedBy(func(edit domain.ProfileEdit) bool {
		return assert.ObjectsAreEqual([]string{"fortran", "compilers"}, edit.Skills)
	})).Return(updated, nil)

	profile, err := f.service.EditProfile(ctx, EditProfileCommand{RemoveSkills: []string{"cobol"}, AddSkills: "compilers"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fortran", "compilers"}, profile.Skills)
}

func TestSessionServiceEditProfileRejectsInvalidEdit(t *testing.T) {
	f := newSessionServiceFixture(t)
	signedIn(t, f.storeFixture)

	empty := ""
	_, err := f.service.EditProfile(context.Background(), EditProfileCommand{Company: &empty})
	require.ErrorIs(t, err, domain.ErrMissingField)
}

func TestSessionServiceEditProfileRequiresSignIn(t *testing.T) {
	f := newSessionServiceFixture(t)

	_, err := f.service.EditProfile(context.Background(), EditProfileCommand{})
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestSessionServiceSignOutClearsEverything(t *testing.T) {
	f := newSessionServiceFixture(t)
	ctx := context.Background()
	signedIn(t, f.storeFixture)
	f.api.EXPECT().SignOut(mockAnyContext()).Return(nil)

	require.NoError(t, f.service.SignOut(ctx))
	assert.False(t, f.store.Snapshot().Authenticated())
}

func TestSessionServiceSignOutToleratesExpiredSession(t *testing.T) {
	f := newSessionServiceFixture(t)
	signedIn(t, f.storeFixture)
	f.api.EXPECT().SignOut(mockAnyContext()).Return(domain.ErrNotAuthenticated)

	require.NoError(t, f.service.SignOut(context.Background()))
	assert.False(t, f.store.Snapshot().Authenticated())
}

func TestSessionServiceSignOutFailureKeepsSession(t *testing.T) {
	f := newSessionServiceFixture(t)
	signedIn(t, f.storeFixture)
	f.api.EXPECT().SignOut(mockAnyContext()).Return(errors.New("bad gateway"))

	err := f.service.SignOut(context.Background())
	require.ErrorContains(t, err, "sign out: bad gateway")
	assert.True(t, f.store.Snapshot().Authenticated())
}
