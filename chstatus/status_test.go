package chstatus

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/chway/chquery"
	"github.com/katalvlaran/chway/model"
)

func TestClassify_KnownSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{model.ErrLatOutOfRange, KindInvalidInput},
		{model.ErrLonOutOfRange, KindInvalidInput},
		{chquery.ErrNoRoute, KindNoRoute},
		{ErrChecksumMismatch, KindDataCorruption},
		{ErrUUIDMismatch, KindDataCorruption},
		{ErrMmapFailed, KindResourceExhaustion},
		{ErrSwapTimeout, KindTransientUnavailability},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.err), c.err.Error())
	}
}

func TestClassify_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("chquery: run: %w", chquery.ErrNoRoute)
	assert.Equal(t, KindNoRoute, Classify(wrapped))
}

func TestClassify_Nil(t *testing.T) {
	assert.Equal(t, KindNone, Classify(nil))
}

func TestClassify_Unknown(t *testing.T) {
	assert.Equal(t, KindInternal, Classify(fmt.Errorf("some other package: boom")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindInvalidInput.HTTPStatus())
	assert.Equal(t, http.StatusOK, KindNoRoute.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindDataCorruption.HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, KindResourceExhaustion.HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, KindTransientUnavailability.HTTPStatus())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "no_route", KindNoRoute.String())
	assert.Equal(t, "internal", Kind(255).String())
}
