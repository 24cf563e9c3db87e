package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "tavolo"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultZenchefBaseURL = "https://api.zenchef.com/v1"
	DefaultZenchefTimeout = 10 * time.Second

	// How far ahead the next-available-date search may scan, and the widest
	// date range the feed accepts per request.
	DefaultSearchHorizonDays = 30
	DefaultFeedBatchDays     = 7

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
