package httperrors_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/txix-open/isp-kit/json"
	"shipping-quote-service/domain"
	"shipping-quote-service/httperrors"
)

func TestWriteErrorEnvelope(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	httpError := httperrors.New(
		http.StatusTooManyRequests,
		"rate limit has been reached, try after 1000ms",
		errors.New("client 203.0.113.7 exhausted the window"),
	)

	recorder := httptest.NewRecorder()
	err := httpError.WriteError(recorder)
	require.NoError(err)

	require.EqualValues(http.StatusTooManyRequests, recorder.Code)
	require.EqualValues("application/json", recorder.Header().Get("Content-Type"))

	body := domain.ErrorResponse{}
	err = json.NewDecoder(recorder.Body).Decode(&body)
	require.NoError(err)
	require.False(body.Success)
	require.EqualValues("rate limit has been reached, try after 1000ms", body.Error)
}

func TestWriteErrorHidesInternalError(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	httpError := httperrors.New(
		http.StatusBadRequest,
		"invalid request body",
		errors.New("decode request body: unexpected EOF"),
	)

	recorder := httptest.NewRecorder()
	err := httpError.WriteError(recorder)
	require.NoError(err)

	require.NotContains(recorder.Body.String(), "unexpected EOF")
	require.Contains(recorder.Body.String(), "invalid request body")
}
