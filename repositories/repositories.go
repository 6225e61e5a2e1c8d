package repositories

import (
	"crypto/rsa"

	"github.com/sitepress/sitepress-backend/repositories/idp"
)

type options struct {
	uploadsBucketUrl string
	idpRepository    idp.TokenRepository
}

type Option func(*options)

func WithUploadsBucketUrl(url string) Option {
	return func(o *options) {
		o.uploadsBucketUrl = url
	}
}

func WithIdpTokenRepository(repository idp.TokenRepository) Option {
	return func(o *options) {
		o.idpRepository = repository
	}
}

type Repositories struct {
	ExecutorGetter        ExecutorGetter
	SitepressDbRepository *SitepressDbRepository
	JwtRepository         *JwtRepository
	BlobRepository        BlobRepository
	// nil unless an external identity provider is configured
	IdpTokenRepository idp.TokenRepository
}

func NewRepositories(
	pool ConnectionPool,
	jwtSigningKey *rsa.PrivateKey,
	opts ...Option,
) Repositories {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	repositories := Repositories{
		ExecutorGetter:        NewExecutorGetter(pool),
		SitepressDbRepository: NewSitepressDbRepository(),
		JwtRepository:         NewJWTRepository(jwtSigningKey),
		IdpTokenRepository:    o.idpRepository,
	}
	if o.uploadsBucketUrl != "" {
		repositories.BlobRepository = NewBlobRepository(o.uploadsBucketUrl)
	}
	return repositories
}
