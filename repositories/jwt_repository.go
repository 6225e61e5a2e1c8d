package repositories

import (
	"crypto/rsa"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v4"

	"github.com/sitepress/sitepress-backend/models"
)

const sessionTokenIssuer = "sitepress"

type JwtRepository struct {
	jwtSigningPrivateKey rsa.PrivateKey
}

type credentialsClaim struct {
	UserId string `json:"user_id"`
	Email  string `json:"email"`
}

// We add jwt.RegisteredClaims as an embedded type, to provide fields like expiry time
type Claims struct {
	Credentials credentialsClaim `json:"credentials"`
	jwt.RegisteredClaims
}

var ValidationAlgo = jwt.SigningMethodRS256

func (repo *JwtRepository) EncodeSessionToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	claims := &Claims{
		Credentials: credentialsClaim{
			UserId: string(creds.UserId),
			Email:  creds.Email,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    sessionTokenIssuer,
			Subject:   string(creds.UserId),
		},
	}

	token := jwt.NewWithClaims(ValidationAlgo, claims)
	return token.SignedString(&repo.jwtSigningPrivateKey)
}

func (repo *JwtRepository) ValidateSessionToken(sessionToken string) (models.Session, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		method, ok := token.Method.(*jwt.SigningMethodRSA)
		if !ok || method != ValidationAlgo {
			return nil, errors.Wrapf(models.UnAuthorizedError,
				"unexpected signing method: %v", token.Header["alg"])
		}
		return &repo.jwtSigningPrivateKey.PublicKey, nil
	}

	token, err := jwt.ParseWithClaims(sessionToken, &Claims{}, keyFunc)
	if err != nil {
		return models.Session{}, errors.Mark(
			errors.Wrap(err, "Error parsing jwt token claims"),
			models.UnAuthorizedError,
		)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || !claims.VerifyIssuer(sessionTokenIssuer, true) || claims.Credentials.UserId == "" {
		return models.Session{}, errors.Wrap(models.UnAuthorizedError, "invalid session token")
	}

	session := models.Session{
		Credentials: models.Credentials{
			UserId: models.UserId(claims.Credentials.UserId),
			Email:  claims.Credentials.Email,
		},
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	return session, nil
}

func NewJWTRepository(key *rsa.PrivateKey) *JwtRepository {
	return &JwtRepository{
		jwtSigningPrivateKey: *key,
	}
}
