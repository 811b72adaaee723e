package services

import "context"

// RoleGate authorizes actions against the role currently persisted for
// an authenticated email. Gates never trust role claims carried in a
// credential: a role change must take effect on the next request, so
// every check is a live read of the user store.
//
// All gates fail closed: if the user record is absent when a gate runs
// (deleted between token issuance and the request), the gate returns
// domain.ErrForbidden rather than an internal error.
type RoleGate interface {
	// RequireAdmin fails with domain.ErrForbidden unless email's current role is admin
	RequireAdmin(ctx context.Context, email string) error

	// RequireSeller fails with domain.ErrForbidden unless email's current role is seller
	RequireSeller(ctx context.Context, email string) error

	// RequireBuyer fails with domain.ErrForbidden unless email's current role is buyer
	RequireBuyer(ctx context.Context, email string) error

	// RequireSelf fails with domain.ErrForbidden unless the authenticated
	// email matches the email whose resources are being requested
	RequireSelf(authEmail, email string) error
}
