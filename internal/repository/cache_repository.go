package repository

// CacheRepository stores serialized suggestion sets by key.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
