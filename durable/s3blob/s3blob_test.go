package s3blob

import "testing"

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{}); err != ErrNilClient {
		t.Fatalf("expected ErrNilClient, got %v", err)
	}
}

func TestObjectKeyDerivation(t *testing.T) {
	cases := []struct {
		name           string
		prefix, suffix string
		key, want      string
	}{
		{"default_suffix", "", "", "testKey", "testKey.json"},
		{"prefix", "storage/", "", "testKey", "storage/testKey.json"},
		{"custom_suffix", "", ".blob", "k", "k.blob"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &Blob{prefix: tc.prefix, suffix: coalesceSuffix(tc.suffix)}
			if got := b.objectKey(tc.key); got != tc.want {
				t.Fatalf("objectKey(%q) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}
