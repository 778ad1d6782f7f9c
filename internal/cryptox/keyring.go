package cryptox

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/biohash-labs/biohash/internal/common"
	"github.com/biohash-labs/biohash/internal/filex"
)

// LoadOrGenerateKey returns the symmetric key stored at path, creating
// it on first use. The key file holds the base64-encoded key and is
// written with owner-only permissions via an atomic replace.
//
// A missing file triggers generation; a present but unreadable or
// malformed file is a hard error, since silently replacing the key
// would invalidate every stored secret.
func LoadOrGenerateKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read key file: %w", err)
		}
		return generateKeyFile(path)
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: key file %s is not valid base64", common.ErrorMalformedInput, path)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key file %s holds %d bytes, want %d", common.ErrorMalformedInput, path, len(key), KeySize)
	}

	return key, nil
}

func generateKeyFile(path string) ([]byte, error) {
	key := common.GenerateRandByteArray(KeySize)

	encoded := base64.StdEncoding.EncodeToString(key) + "\n"
	if err := filex.WriteFileAtomic(path, []byte(encoded), 0o600); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}

	return key, nil
}
