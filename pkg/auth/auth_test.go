package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssuer_RoundTrip(t *testing.T) {
	t.Parallel()
	iss := NewIssuer("secret", time.Hour)
	p := Profile{UserID: 7, Username: "marta", Permissions: []string{"catalog.can_mark_returned"}}

	token, exp, err := iss.Issue(p)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := iss.Parse(token)
	require.NoError(t, err)
	require.Equal(t, p, claims.Profile)
}

func TestIssuer_Parse(t *testing.T) {
	t.Parallel()
	iss := NewIssuer("secret", time.Hour)
	token, _, err := iss.Issue(Profile{UserID: 1, Username: "ana"})
	require.NoError(t, err)

	_, err = NewIssuer("other", time.Hour).Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = iss.Parse("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	expired := NewIssuer("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.Issue(Profile{UserID: 1, Username: "ana"})
	require.NoError(t, err)
	_, err = iss.Parse(old)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestProfile_HasPerm(t *testing.T) {
	t.Parallel()
	p := Profile{Permissions: []string{"catalog.add_book"}}
	require.True(t, p.HasPerm("catalog.add_book"))
	require.False(t, p.HasPerm("catalog.change_book"))
	require.True(t, Profile{Superuser: true}.HasPerm("catalog.change_book"))
}

func TestAuthContext(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	require.False(t, IsAuthenticated(ctx))
	_, err := GetUserName(ctx)
	require.Error(t, err)

	ctx = SetAuthContext(ctx, Profile{UserID: 3, Username: "joao"})
	require.True(t, IsAuthenticated(ctx))
	name, err := GetUserName(ctx)
	require.NoError(t, err)
	require.Equal(t, "joao", name)
}
