// Package codec supplies serialization strategies for hybridstore clients.
//
// The same Codec runs on both tiers: the bytes written durably are the bytes
// mirrored into the fast tier, so the client's size threshold is evaluated
// once, post-serialization. codec.String gives the plain string client;
// codec.JSON[T] gives the typed document client.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
