package infra

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/sitepress/sitepress-backend/utils"
)

// ReadParseOrGenerateSigningKey loads the RSA key used to sign session tokens from
// the environment value or from a file. When neither is set, a key is generated:
// sessions will then not survive a restart.
func ReadParseOrGenerateSigningKey(ctx context.Context, signingKey, signingKeyFile string) *rsa.PrivateKey {
	logger := utils.LoggerFromContext(ctx)

	if signingKey == "" && signingKeyFile != "" {
		content, err := os.ReadFile(signingKeyFile)
		if err != nil {
			panic(errors.Wrapf(err, "could not read signing key file %s", signingKeyFile))
		}
		signingKey = string(content)
	}

	if signingKey == "" {
		logger.WarnContext(ctx, "no session signing key provided, generating a temporary one")
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(errors.Wrap(err, "could not generate a signing key"))
		}
		return key
	}

	key, err := ParseSigningKey(signingKey)
	if err != nil {
		panic(err)
	}
	return key
}

func ParseSigningKey(privateKeyString string) (*rsa.PrivateKey, error) {
	// docker-compose escapes the newlines of multi-line env variables
	privateKeyString = strings.ReplaceAll(privateKeyString, "\\n", "\n")
	block, _ := pem.Decode([]byte(privateKeyString))
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing the RSA private key")
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		return key, errors.Wrap(err, "can't parse PKCS1 private key")
	case "PRIVATE KEY":
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, errors.Wrap(err, "can't parse PKCS8 private key")
		}
		key, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("signing key is not an RSA key")
		}
		return key, nil
	default:
		return nil, errors.Newf("unexpected PEM block type %s", block.Type)
	}
}
