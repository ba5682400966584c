package user_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/user"
)

const testHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func newTestUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(
		kernel.NewUUID(),
		"jordan@example.com", testHash,
		"Jordan", "Lee", "+15551234567",
		role,
		time.Now(),
	)
	require.NoError(t, err)
	return u
}

func Test_NewUser(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Now()

	u, err := user.NewUser(id, "Jordan@Example.COM", testHash,
		"Jordan", "Lee", "", user.RoleCustomer, createdAt)

	require.NoError(t, err)
	assert.True(t, u.ID().IsEqual(id))
	assert.Equal(t, "jordan@example.com", u.Email())
	assert.Equal(t, testHash, u.PasswordHash())
	assert.Equal(t, "Jordan Lee", u.FullName())
	assert.Equal(t, user.RoleCustomer, u.Role())
	assert.True(t, u.IsActive())
	assert.Empty(t, u.BillingRef())
	assert.Nil(t, u.LastLoginAt())
	assert.NoError(t, u.Validate())
}

func Test_NewUser_Invalid(t *testing.T) {
	tests := map[string]struct {
		email, hash, first, last string
		role                     user.Role
	}{
		"empty email":    {email: "", hash: testHash, first: "A", last: "B", role: user.RoleCustomer},
		"bad email":      {email: "not-an-address", hash: testHash, first: "A", last: "B", role: user.RoleCustomer},
		"empty hash":     {email: "a@b.com", hash: "", first: "A", last: "B", role: user.RoleCustomer},
		"no first name":  {email: "a@b.com", hash: testHash, first: "", last: "B", role: user.RoleCustomer},
		"no last name":   {email: "a@b.com", hash: testHash, first: "A", last: "", role: user.RoleCustomer},
		"unknown role":   {email: "a@b.com", hash: testHash, first: "A", last: "B", role: user.RoleUnknown},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := user.NewUser(kernel.NewUUID(), tc.email, tc.hash,
				tc.first, tc.last, "", tc.role, time.Now())
			assert.Error(t, err)
		})
	}
}

func Test_User_RecordLogin(t *testing.T) {
	u := newTestUser(t, user.RoleCustomer)
	loginAt := time.Now()

	err := u.RecordLogin(loginAt)

	require.NoError(t, err)
	require.NotNil(t, u.LastLoginAt())
	assert.Equal(t, loginAt, *u.LastLoginAt())
}

func Test_User_RecordLogin_Deactivated(t *testing.T) {
	u := newTestUser(t, user.RoleCustomer)
	u.Deactivate()

	err := u.RecordLogin(time.Now())

	assert.ErrorIs(t, err, user.ErrUserIsDeactivated)
	assert.Nil(t, u.LastLoginAt())
}

func Test_User_AttachBillingRef(t *testing.T) {
	u := newTestUser(t, user.RoleCustomer)

	u.AttachBillingRef("cus_123")
	u.AttachBillingRef("cus_456")

	assert.Equal(t, "cus_123", u.BillingRef())
}

func Test_RoleFromString(t *testing.T) {
	for s, want := range map[string]user.Role{
		"customer": user.RoleCustomer,
		"agent":    user.RoleAgent,
		"admin":    user.RoleAdmin,
	} {
		got, err := user.RoleFromString(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, got.String())
	}

	_, err := user.RoleFromString("superuser")
	assert.Error(t, err)
}

func Test_User_NotConstructed(t *testing.T) {
	var u user.User
	assert.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
}
