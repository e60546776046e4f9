package ports

import "context"

type MembershipReaderPort interface {
	// Membership returns the user's role on the typebot. tenantFound is false
	// when the typebot does not exist; role is empty when the user is not a
	// member.
	Membership(ctx context.Context, tenantID, userID string) (role string, tenantFound bool, err error)
}
