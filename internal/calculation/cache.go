package calculation

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/repository"
)

const cacheKeyPrefix = "savings:suggest:"

// CachedEngine memoizes another Suggester's output in a CacheRepository.
// Cache failures are logged and never change the result.
type CachedEngine struct {
	Engine Suggester
	Cache  repository.CacheRepository
	Logger Logger
}

// NewCachedEngine wraps engine with cache.
func NewCachedEngine(engine Suggester, cache repository.CacheRepository) *CachedEngine {
	return &CachedEngine{Engine: engine, Cache: cache, Logger: NopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (ce *CachedEngine) SetLogger(l Logger) {
	ce.Logger = loggerOrNop(l)
}

// Suggest returns the cached suggestions for the inputs, computing and storing them on a miss.
func (ce *CachedEngine) Suggest(person domain.Person, products []domain.SavingsProduct) []domain.ResultRecord {
	log := loggerOrNop(ce.Logger)

	key, err := CacheKey(person, products)
	if err != nil {
		log.Warnf("cache key for %s: %v", person.Name, err)
		return ce.Engine.Suggest(person, products)
	}

	if cached, ok := ce.Cache.Get(key); ok {
		var records []domain.ResultRecord
		if err := json.Unmarshal([]byte(cached), &records); err == nil {
			log.Debugf("%s: cache hit %s", person.Name, key)
			if records == nil {
				records = []domain.ResultRecord{}
			}
			return records
		}
		log.Warnf("%s: discarding unreadable cache entry %s", person.Name, key)
	}

	records := ce.Engine.Suggest(person, products)
	payload, err := json.Marshal(records)
	if err != nil {
		log.Warnf("%s: encoding suggestions for cache: %v", person.Name, err)
		return records
	}
	if err := ce.Cache.Set(key, string(payload)); err != nil {
		log.Warnf("%s: storing suggestions in cache: %v", person.Name, err)
	}
	return records
}

// CacheKey derives a stable key from the saver and the catalog.
func CacheKey(person domain.Person, products []domain.SavingsProduct) (string, error) {
	payload, err := json.Marshal(struct {
		Person   domain.Person           `json:"person"`
		Products []domain.SavingsProduct `json:"products"`
	}{person, products})
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key: %w", err)
	}
	return cacheKeyPrefix + strconv.FormatUint(xxhash.Sum64(payload), 16), nil
}
