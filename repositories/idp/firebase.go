package idp

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/cockroachdb/errors"

	"github.com/sitepress/sitepress-backend/models"
)

type firebaseTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type FirebaseClient struct {
	projectId string
	verifier  firebaseTokenVerifier
}

func (c *FirebaseClient) VerifyToken(ctx context.Context, firebaseToken string) (models.IdentityClaims, error) {
	token, err := c.verifier.VerifyIDToken(ctx, firebaseToken)
	if err != nil {
		return models.IdentityClaims{}, errors.Mark(
			errors.Wrap(err, "firebase VerifyIDToken error"), models.UnAuthorizedError)
	}

	if token.Issuer != c.Issuer() {
		return models.IdentityClaims{}, errors.Wrapf(models.UnAuthorizedError,
			"invalid issuer %s != %s for firebase", token.Issuer, c.Issuer())
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		email = firstIdentity(token.Firebase.Identities["email"])
	}
	if email == "" {
		return models.IdentityClaims{}, errors.Wrap(models.UnAuthorizedError,
			"unexpected firebase token content: Field email is missing")
	}

	verified, _ := token.Claims["email_verified"].(bool)

	return models.IdentityClaims{
		Issuer:        token.Issuer,
		Email:         models.NormalizeEmail(email),
		EmailVerified: verified,
	}, nil
}

func (c *FirebaseClient) Issuer() string {
	return "https://securetoken.google.com/" + c.projectId
}

func NewFirebaseClient(projectId string, verifier firebaseTokenVerifier) *FirebaseClient {
	return &FirebaseClient{
		projectId: projectId,
		verifier:  verifier,
	}
}

func firstIdentity(identities any) string {
	list, ok := identities.([]any)
	if !ok || len(list) == 0 {
		return ""
	}
	s, _ := list[0].(string)
	return s
}
