package security_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lljaworski/invoicing/pkg/security"
)

func pemPublicKey(t *testing.T, pub any) []byte {
	t.Helper()

	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)

	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
}

func TestParsePublicKey(t *testing.T) {
	t.Parallel()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	got, err := security.ParsePublicKey(pemPublicKey(t, &key.PublicKey))
	require.NoError(t, err)
	require.True(t, key.PublicKey.Equal(got))
}

func TestParsePublicKey_Invalid(t *testing.T) {
	t.Parallel()

	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "not pem", data: []byte("public key")},
		{name: "wrong block type", data: pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{1}})},
		{name: "broken der", data: pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: []byte{1, 2, 3}})},
		{name: "not rsa", data: pemPublicKey(t, &ecKey.PublicKey)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := security.ParsePublicKey(tt.data)
			require.Error(t, err)
		})
	}
}

func TestParsePublicKeyFromFile(t *testing.T) {
	t.Parallel()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "public.pub")
	require.NoError(t, os.WriteFile(path, pemPublicKey(t, &key.PublicKey), 0o600))

	_, err = security.ParsePublicKeyFromFile(path)
	require.NoError(t, err)

	_, err = security.ParsePublicKeyFromFile(filepath.Join(t.TempDir(), "missing.pub"))
	require.Error(t, err)
}
