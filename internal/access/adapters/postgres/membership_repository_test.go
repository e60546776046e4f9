package postgres

import (
	"context"
	"errors"
	"testing"

	pgdb "chat-analytics-service/internal/platform/postgres"
	"chat-analytics-service/internal/platform/postgres/postgrestest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipRepository_Member(t *testing.T) {
	db := &postgrestest.DB{
		QueryFn: func(ctx context.Context, query string, args ...any) (pgdb.RowScanner, error) {
			return postgrestest.NewRows(postgrestest.Row{"bot_1", "MEMBER"}), nil
		},
	}

	role, found, err := NewMembershipRepository(db).Membership(context.Background(), "bot_1", "user_1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "MEMBER", role)
	assert.Equal(t, []any{"bot_1", "user_1"}, db.Queries[0].Args)
}

func TestMembershipRepository_NotMember(t *testing.T) {
	db := &postgrestest.DB{
		QueryFn: func(ctx context.Context, query string, args ...any) (pgdb.RowScanner, error) {
			return postgrestest.NewRows(postgrestest.Row{"bot_1", ""}), nil
		},
	}

	role, found, err := NewMembershipRepository(db).Membership(context.Background(), "bot_1", "user_2")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, role)
}

func TestMembershipRepository_UnknownTenant(t *testing.T) {
	role, found, err := NewMembershipRepository(&postgrestest.DB{}).Membership(context.Background(), "ghost", "user_1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, role)
}

func TestMembershipRepository_DBError(t *testing.T) {
	db := &postgrestest.DB{
		QueryFn: func(ctx context.Context, query string, args ...any) (pgdb.RowScanner, error) {
			return nil, errors.New("db failure")
		},
	}

	_, _, err := NewMembershipRepository(db).Membership(context.Background(), "bot_1", "user_1")
	assert.EqualError(t, err, "db failure")
}
