package repositories

// SitepressDbRepository holds every query against the application database. The
// executor is passed on each call so that the same methods run inside or outside
// of a transaction.
type SitepressDbRepository struct{}

func NewSitepressDbRepository() *SitepressDbRepository {
	return &SitepressDbRepository{}
}
