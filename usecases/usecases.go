package usecases

import (
	"time"

	"github.com/sitepress/sitepress-backend/repositories"
	"github.com/sitepress/sitepress-backend/usecases/auth"
	"github.com/sitepress/sitepress-backend/usecases/executor_factory"
)

const defaultTokenLifetime = 2 * time.Hour

type Usecases struct {
	Repositories    repositories.Repositories
	appUrl          string
	publicApiUrl    string
	tokenLifetime   time.Duration
	allowSignup     bool
	resetLinkSender auth.ResetLinkSender
}

type Option func(*options)

func WithAppUrl(url string) Option {
	return func(o *options) {
		o.appUrl = url
	}
}

func WithPublicApiUrl(url string) Option {
	return func(o *options) {
		o.publicApiUrl = url
	}
}

func WithTokenLifetime(lifetime time.Duration) Option {
	return func(o *options) {
		o.tokenLifetime = lifetime
	}
}

func WithAllowSignup(allow bool) Option {
	return func(o *options) {
		o.allowSignup = allow
	}
}

func WithResetLinkSender(sender auth.ResetLinkSender) Option {
	return func(o *options) {
		o.resetLinkSender = sender
	}
}

type options struct {
	appUrl          string
	publicApiUrl    string
	tokenLifetime   time.Duration
	allowSignup     bool
	resetLinkSender auth.ResetLinkSender
}

func newUsecasesWithOptions(repositories repositories.Repositories, o *options) Usecases {
	if o.tokenLifetime == 0 {
		o.tokenLifetime = defaultTokenLifetime
	}
	if o.resetLinkSender == nil {
		o.resetLinkSender = auth.LogResetLinkSender{}
	}
	return Usecases{
		Repositories:    repositories,
		appUrl:          o.appUrl,
		publicApiUrl:    o.publicApiUrl,
		tokenLifetime:   o.tokenLifetime,
		allowSignup:     o.allowSignup,
		resetLinkSender: o.resetLinkSender,
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return newUsecasesWithOptions(repositories, o)
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.SitepressDbRepository,
	}
}

func (usecases *Usecases) NewBlogPostUsecase() BlogPostUsecase {
	return BlogPostUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.SitepressDbRepository,
	}
}

func (usecases *Usecases) NewTagUsecase() TagUsecase {
	return TagUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.SitepressDbRepository,
	}
}

func (usecases *Usecases) NewAdUsecase() AdUsecase {
	return AdUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.SitepressDbRepository,
	}
}

func (usecases *Usecases) NewUploadUsecase() UploadUsecase {
	return UploadUsecase{
		blobRepository: usecases.Repositories.BlobRepository,
		publicApiUrl:   usecases.publicApiUrl,
	}
}

func (usecases *Usecases) NewSessionUsecase() SessionUsecase {
	return SessionUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		userRepository:     usecases.Repositories.SitepressDbRepository,
		tokenRepository:    usecases.Repositories.JwtRepository,
		idpRepository:      usecases.Repositories.IdpTokenRepository,
		resetLinkSender:    usecases.resetLinkSender,
		tokenLifetime:      usecases.tokenLifetime,
		allowSignup:        usecases.allowSignup,
		appUrl:             usecases.appUrl,
	}
}

func (usecases *Usecases) NewSeedUseCase() SeedUseCase {
	return SeedUseCase{
		executorFactory: usecases.NewExecutorFactory(),
		userRepository:  usecases.Repositories.SitepressDbRepository,
	}
}
