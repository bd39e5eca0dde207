package hybridstore

import (
	"fmt"

	"github.com/aligent/hybridstore/internal/keys"
)

// KeySizeError is returned by New when the encoded form of a key exceeds the
// fast tier's key length limit. Fatal to that client configuration.
type KeySizeError struct {
	Key        string
	EncodedLen int
}

func (e *KeySizeError) Error() string {
	return fmt.Sprintf("hybridstore: key %q encodes to %d characters (limit %d)",
		e.Key, e.EncodedLen, keys.MaxEncodedLen)
}

// DeleteError reports a Delete that failed on one or both tiers. Both tiers
// are always attempted; the error carries whichever causes occurred.
type DeleteError struct {
	Key        string
	CacheErr   error
	DurableErr error
}

func (e *DeleteError) Error() string {
	switch {
	case e.CacheErr != nil && e.DurableErr != nil:
		return fmt.Sprintf("delete %q failed on both tiers: cache=%v; durable=%v",
			e.Key, e.CacheErr, e.DurableErr)
	case e.CacheErr != nil:
		return fmt.Sprintf("delete %q: fast tier delete failed: %v", e.Key, e.CacheErr)
	case e.DurableErr != nil:
		return fmt.Sprintf("delete %q: durable tier delete failed: %v", e.Key, e.DurableErr)
	default:
		return fmt.Sprintf("delete %q: unknown error", e.Key)
	}
}

func (e *DeleteError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.CacheErr != nil {
		errs = append(errs, e.CacheErr)
	}
	if e.DurableErr != nil {
		errs = append(errs, e.DurableErr)
	}
	return errs
}
