package ui

import "errors"

var (
	// ErrInvalidPlacement reports a widget span exceeding grid bounds
	ErrInvalidPlacement = errors.New("ui: placement exceeds grid bounds")

	// ErrUnknownHandle reports an operation on a handle absent from the
	// registry, including handles stale after Forget
	ErrUnknownHandle = errors.New("ui: unknown widget handle")
)
