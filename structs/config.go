package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Site      *SiteConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Cache     *CacheConfig
	Auth      *AuthConfig
	Email     *EmailConfig
	RateLimit *RateLimitConfig
	Export    *ExportConfig
}

type ServerConfig struct {
	AppName        string        // Talktag
	Environment    string        // development, production
	Port           string        // :8082
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

// SiteConfig is the single active site used to build public listen URLs.
// Public URLs are always derived from this configuration, never from the
// incoming request's Host header.
type SiteConfig struct {
	Domain   string // public domain without scheme, e.g. talktag.nl
	Insecure bool   // true only for local development, switches https -> http
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	ListenTTL       time.Duration // TTL for cached public listen payloads
}

type AuthConfig struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	BlacklistCacheTTL time.Duration
	CookieDomain      string // cross-subdomain cookie domain in production
}

type EmailConfig struct {
	ApiKey string
	From   string
}

type RateLimitConfig struct {
	AuthLimit     int
	AuthWindow    time.Duration
	GeneralLimit  int
	GeneralWindow time.Duration
}

type ExportConfig struct {
	OutputDir string // default output directory for the static site build
}
