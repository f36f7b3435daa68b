package invitations

import "errors"

var (
	// ErrTemplateNotFound means the referenced template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvitationNotFound covers both a missing invitation and one owned
	// by someone else. Callers cannot tell the two apart, so an invitation's
	// existence is never leaked to non-owners.
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrSlugGeneration means the retry budget ran out without landing a
	// unique slug. With 64-bit slugs this indicates a store fault, not
	// genuine exhaustion.
	ErrSlugGeneration = errors.New("could not allocate a unique url slug")
)
