package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"shipping-quote-service/domain"
	"shipping-quote-service/repository"
)

type authenticatorMock struct {
	calls int
	token domain.CarrierToken
	err   error
}

func (a *authenticatorMock) Authenticate(ctx context.Context) (domain.CarrierToken, error) {
	a.calls++
	if a.err != nil {
		return domain.CarrierToken{}, a.err
	}
	return a.token, nil
}

func TestTokenReuse(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	auth := &authenticatorMock{token: domain.CarrierToken{
		Token:     "bearer-token",
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}}
	repo := repository.NewToken(auth)

	token, err := repo.Token(context.Background())
	require.NoError(err)
	require.EqualValues("bearer-token", token)

	token, err = repo.Token(context.Background())
	require.NoError(err)
	require.EqualValues("bearer-token", token)

	require.EqualValues(1, auth.calls)
}

func TestTokenExpiryBuffer(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	// expires within the 5 minute safety buffer, must not be cached
	auth := &authenticatorMock{token: domain.CarrierToken{
		Token:     "short-lived",
		ExpiresAt: time.Now().Add(3 * time.Minute),
	}}
	repo := repository.NewToken(auth)

	_, err := repo.Token(context.Background())
	require.NoError(err)
	_, err = repo.Token(context.Background())
	require.NoError(err)

	require.EqualValues(2, auth.calls)
}

func TestTokenAuthFailurePropagates(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	auth := &authenticatorMock{err: errors.New("401 unauthorized")}
	repo := repository.NewToken(auth)

	_, err := repo.Token(context.Background())
	require.Error(err)
	require.EqualValues(1, auth.calls)
}

func TestTokenInvalidate(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	auth := &authenticatorMock{token: domain.CarrierToken{
		Token:     "bearer-token",
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}}
	repo := repository.NewToken(auth)

	_, err := repo.Token(context.Background())
	require.NoError(err)

	repo.Invalidate()

	_, err = repo.Token(context.Background())
	require.NoError(err)
	require.EqualValues(2, auth.calls)
}
