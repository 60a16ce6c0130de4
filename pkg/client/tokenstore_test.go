package client_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-eats/pkg/client"
)

func TestTokenStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tokens.json")

	store, err := client.NewTokenStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(client.RoleStudent, "token-a"))
	require.NoError(t, store.Set(client.RoleVendor, "token-b"))

	reloaded, err := client.NewTokenStore(path)
	require.NoError(t, err)
	assert.Equal(t, "token-a", reloaded.Get(client.RoleStudent))
	assert.Equal(t, "token-b", reloaded.Get(client.RoleVendor))

	require.NoError(t, reloaded.Clear(client.RoleStudent))

	again, err := client.NewTokenStore(path)
	require.NoError(t, err)
	assert.Empty(t, again.Get(client.RoleStudent))
	assert.Equal(t, "token-b", again.Get(client.RoleVendor))
}

func TestSessionStates(t *testing.T) {
	anon := client.Anonymous()
	assert.True(t, anon.Anonymous())
	_, active := anon.Role()
	assert.False(t, active)
	_, ok := anon.Profile()
	assert.False(t, ok)

	student := client.StudentSession(client.Profile{Name: "Asha", Email: "a@x.com"})
	role, active := student.Role()
	require.True(t, active)
	assert.Equal(t, client.RoleStudent, role)

	profile, ok := student.Profile()
	require.True(t, ok)
	assert.Equal(t, "a@x.com", profile.Email)
}
