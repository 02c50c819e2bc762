package dispatch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_IsMatchesByKind(t *testing.T) {
	f := &Failure{Kind: KindConfiguration, Message: "PROVIDER_NUMBER is not set"}

	assert.True(t, errors.Is(f, ErrConfiguration))
	assert.False(t, errors.Is(f, ErrProvider))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", f), ErrConfiguration))
}

func TestFailure_ErrorIncludesCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	f := &Failure{Kind: KindProvider, Message: "sms send failed", Err: cause}

	assert.Equal(t, "provider: sms send failed: dial tcp: timeout", f.Error())
	assert.ErrorIs(t, f, cause)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnavailable, KindOf(fmt.Errorf("x: %w", &Failure{Kind: KindUnavailable})))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestResult_Accessors(t *testing.T) {
	ok := succeeded([]byte(`{"ref":"1"}`))
	assert.True(t, ok.OK())
	assert.NoError(t, ok.Err())
	assert.Equal(t, Kind(""), ok.Kind())

	bad := failed(&Failure{Kind: KindInvalidArgument, Message: "x"})
	assert.False(t, bad.OK())
	assert.Error(t, bad.Err())
	assert.Equal(t, KindInvalidArgument, bad.Kind())
}
