package credentials

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestKeyring_RoundTrip(t *testing.T) {
	keyring.MockInit()
	k := New()

	_, err := k.Token("school.instructure.com")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, k.SetToken("school.instructure.com", "  secret\n"))

	tok, err := k.Token("school.instructure.com")
	require.NoError(t, err)
	assert.Equal(t, "secret", tok)

	_, err = k.Token("other.instructure.com")
	require.ErrorIs(t, err, ErrNotFound, "tokens are scoped per host")

	require.NoError(t, k.DeleteToken("school.instructure.com"))
	_, err = k.Token("school.instructure.com")
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, k.DeleteToken("school.instructure.com"), ErrNotFound)
}

func TestKeyring_Validation(t *testing.T) {
	keyring.MockInit()
	k := New()

	require.Error(t, k.SetToken("", "secret"))
	require.Error(t, k.SetToken("school.instructure.com", "   "))

	_, err := k.Token("")
	require.Error(t, err)
}

func TestKeyring_BackendError(t *testing.T) {
	keyring.MockInitWithError(errors.New("dbus unavailable"))
	t.Cleanup(keyring.MockInit)
	k := New()

	_, err := k.Token("school.instructure.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "dbus unavailable")
}
