package postgres

import (
	"context"

	"chat-analytics-service/internal/access/core/ports"
	pgdb "chat-analytics-service/internal/platform/postgres"
)

type MembershipRepository struct {
	db pgdb.DB
}

func NewMembershipRepository(db pgdb.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

var _ ports.MembershipReaderPort = (*MembershipRepository)(nil)

// One row per existing typebot; role is '' for non-members.
const membershipSQL = `
SELECT t.id, COALESCE(m.role, '')
FROM typebots t
LEFT JOIN typebot_members m ON m.typebot_id = t.id AND m.user_id = $2
WHERE t.id = $1`

func (r *MembershipRepository) Membership(ctx context.Context, tenantID, userID string) (string, bool, error) {
	rows, err := r.db.QueryContext(ctx, membershipSQL, tenantID, userID)
	if err != nil {
		return "", false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return "", false, rows.Err()
	}

	var id, role string
	if err := rows.Scan(&id, &role); err != nil {
		return "", false, err
	}
	return role, true, nil
}
