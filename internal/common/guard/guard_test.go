package guard

import (
	"context"
	"testing"

	"github.com/c14220110/clinic-portal/internal/common/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storageWith(t *testing.T, items map[string]string) session.LocalStorage {
	t.Helper()
	ls := session.NewLocalStorage(session.NewMemoryStore(), "browser-1")
	for k, v := range items {
		require.NoError(t, ls.SetItem(context.Background(), k, v))
	}
	return ls
}

func TestCheck_CaseInsensitiveRoleMatch(t *testing.T) {
	ls := storageWith(t, map[string]string{
		session.KeyToken: "t",
		session.KeyUser:  `{"role":"Doctor"}`,
	})

	d := Check(context.Background(), ls, []string{"admin", "doctor"})

	assert.True(t, d.Allowed)
	assert.Empty(t, d.Redirect)
	require.NotNil(t, d.Session)
	assert.Equal(t, "t", d.Session.Token)
	assert.Equal(t, "Doctor", d.Session.User.Role)
}

func TestCheck_RoleMembership(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{"exact", "patient", []string{"patient"}, true},
		{"upper stored", "ADMIN", []string{"admin"}, true},
		{"upper allowed", "nurse", []string{"NURSE", "doctor"}, true},
		{"not member", "patient", []string{"admin", "doctor"}, false},
		{"empty allowed", "admin", nil, false},
		{"prefix is not member", "doc", []string{"doctor"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ls := storageWith(t, map[string]string{
				session.KeyToken: "tok",
				session.KeyUser:  `{"role":"` + tc.role + `"}`,
			})
			d := Check(context.Background(), ls, tc.allowed)
			assert.Equal(t, tc.want, d.Allowed)
			if !tc.want {
				assert.Equal(t, LoginPath, d.Redirect)
				assert.Equal(t, ReasonRoleDenied, d.Reason)
				assert.Nil(t, d.Session)
			}
		})
	}
}

func TestCheck_MissingTokenOrUser(t *testing.T) {
	cases := map[string]map[string]string{
		"nothing stored": {},
		"no token":       {session.KeyUser: `{"role":"admin"}`},
		"no user":        {session.KeyToken: "t"},
		"empty token":    {session.KeyToken: "", session.KeyUser: `{"role":"admin"}`},
	}
	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			ls := storageWith(t, items)
			d := Check(context.Background(), ls, []string{"admin"})
			assert.False(t, d.Allowed)
			assert.Equal(t, LoginPath, d.Redirect)
			assert.Equal(t, ReasonNoSession, d.Reason)
		})
	}
}

func TestCheck_MalformedUserClearsStorage(t *testing.T) {
	for _, raw := range []string{`{not json`, `null`, `"just a string"`, `{}`, `{"role":42}`} {
		t.Run(raw, func(t *testing.T) {
			ls := storageWith(t, map[string]string{
				session.KeyToken: "t",
				session.KeyUser:  raw,
				"theme":          "dark",
			})

			d := Check(context.Background(), ls, []string{"admin"})

			assert.False(t, d.Allowed)
			assert.Equal(t, LoginPath, d.Redirect)
			assert.Equal(t, ReasonMalformedUser, d.Reason)

			for _, key := range []string{session.KeyToken, session.KeyUser, "theme"} {
				_, ok, err := ls.GetItem(context.Background(), key)
				require.NoError(t, err)
				assert.False(t, ok, "%s should be cleared", key)
			}
		})
	}
}

func TestCheck_DeniedRoleKeepsStorage(t *testing.T) {
	ls := storageWith(t, map[string]string{
		session.KeyToken: "t",
		session.KeyUser:  `{"role":"patient"}`,
	})

	d := Check(context.Background(), ls, StaffRoles)
	assert.False(t, d.Allowed)

	token, ok, err := ls.GetItem(context.Background(), session.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t", token)
}

func TestCheck_EmptyRoleDeniedWithoutClearing(t *testing.T) {
	ls := storageWith(t, map[string]string{
		session.KeyToken: "t",
		session.KeyUser:  `{"role":""}`,
	})

	d := Check(context.Background(), ls, AnyRole())
	assert.False(t, d.Allowed)
	assert.Equal(t, LoginPath, d.Redirect)
	assert.Equal(t, ReasonRoleDenied, d.Reason)

	_, ok, err := ls.GetItem(context.Background(), session.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAnyRole_CoversStaffAndPatient(t *testing.T) {
	roles := AnyRole()
	assert.True(t, RoleAllowed("patient", roles))
	assert.True(t, RoleAllowed("Lab_Tech", roles))
	assert.False(t, RoleAllowed("visitor", roles))
}
