package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the CineTick application
// Pattern: cinetick:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG  = 24 * time.Hour // for very stable data
	TTL_STATIC_SHORT = 6 * time.Hour  // for user profiles
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 1 * time.Hour    // for movie listings
	TTL_SEMI_STATIC_SHORT  = 10 * time.Minute // for movie details
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_SHORT = 2 * time.Minute  // for rating aggregates
	TTL_REALTIME      = 30 * time.Second // for live seat counts
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "cinetick"
)

// ================== MOVIES MODULE ==================

const (
	CACHE_KEY_MOVIES_LIST   = CACHE_PREFIX + ":movies:list"   // + :page:X:limit:Y
	CACHE_KEY_MOVIE_DETAIL  = CACHE_PREFIX + ":movies:"       // + movie-id
	CACHE_KEY_MOVIE_RATINGS = CACHE_PREFIX + ":ratings:movie:" // + movie-id
)

const (
	TTL_MOVIE_LIST    = TTL_SEMI_STATIC_MEDIUM
	TTL_MOVIE_DETAIL  = TTL_SEMI_STATIC_SHORT
	TTL_MOVIE_RATINGS = TTL_DYNAMIC_SHORT
)

// ================== PROJECTIONS MODULE ==================

const (
	CACHE_KEY_PROJECTION_SEATS = CACHE_PREFIX + ":projections:seats:" // + projection-id
)

const (
	TTL_PROJECTION_SEATS = TTL_REALTIME
)

// ================== AUTH MODULE ==================

const (
	CACHE_KEY_USER_PROFILE = CACHE_PREFIX + ":auth:user:profile:uuid:" // + user-id
)

const (
	TTL_USER_PROFILE = TTL_STATIC_SHORT
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_MOVIES_ALL  = CACHE_PREFIX + ":movies:*"
	PATTERN_INVALIDATE_RATINGS_ALL = CACHE_PREFIX + ":ratings:*"
	PATTERN_INVALIDATE_USER_ALL    = CACHE_PREFIX + ":*:user:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildMovieListKey(page, limit int) string {
	return CACHE_KEY_MOVIES_LIST + ":page:" + fmt.Sprintf("%d", page) + ":limit:" + fmt.Sprintf("%d", limit)
}

func BuildMovieDetailKey(movieID string) string {
	return CACHE_KEY_MOVIE_DETAIL + movieID
}

func BuildMovieRatingsKey(movieID string) string {
	return CACHE_KEY_MOVIE_RATINGS + movieID
}

func BuildProjectionSeatsKey(projectionID string) string {
	return CACHE_KEY_PROJECTION_SEATS + projectionID
}
