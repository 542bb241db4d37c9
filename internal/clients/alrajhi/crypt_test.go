package alrajhi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	testKey = []byte("0123456789abcdef0123456789abcdef")
	testIV  = []byte("fedcba9876543210")
)

func TestEncryptDecrypt(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		plain string
	}{
		{"short", "a"},
		{"block sized", "0123456789abcdef"},
		{"query string", "paymentid=100500&tranid=42&trackid=7&amt=103.5&result=CAPTURED&ref=2609"},
		{"json array", `[{"action":"1","amt":"103.5","trackId":"7"}]`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			enc, err := encrypt([]byte(tt.plain), testKey, testIV)
			require.NoError(t, err)
			require.NotEqual(t, tt.plain, enc)

			dec, err := decrypt(enc, testKey, testIV)
			require.NoError(t, err)
			require.Equal(t, tt.plain, dec)
		})
	}
}

func TestDecrypt_Invalid(t *testing.T) {
	t.Parallel()

	_, err := decrypt("not-hex", testKey, testIV)
	require.Error(t, err)

	// valid hex, wrong block size
	_, err = decrypt("abcd", testKey, testIV)
	require.Error(t, err)
}

func TestEncrypt_BadKey(t *testing.T) {
	t.Parallel()

	_, err := encrypt([]byte("x"), []byte("short"), testIV)
	require.Error(t, err)

	_, err = encrypt([]byte("x"), testKey, []byte("short-iv"))
	require.Error(t, err)
}
