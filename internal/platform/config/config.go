package config

import (
	"os"
	"strconv"
	"time"

	strutil "msalsa/pkg/platform/strings"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	Environment string
	SessionTTL  time.Duration
	Redis       RedisConfig
	Tree        TreeDefaults
}

// RedisConfig configures the optional session store backend. An empty URL
// keeps sessions in memory.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// TreeDefaults fill in tree render requests that leave fields empty.
type TreeDefaults struct {
	DivID     string
	SVGHeight int
	SVGWidth  int
	// ScriptURLs are loaded by the page before any tree is drawn
	// (Raphael and jsPhyloSVG). Empty when the host page provides them.
	ScriptURLs []string
}

const (
	defaultAddr       = ":8080"
	defaultEnv        = "local"
	defaultSessionTTL = 2 * time.Hour
	defaultDivID      = "svgCanvas"
	defaultSVGHeight  = 600
	defaultSVGWidth   = 800
)

// IsLocal reports whether the server runs on a developer machine.
func (s Server) IsLocal() bool {
	return s.Environment == defaultEnv
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:        stringEnv("MSALSA_ADDR", defaultAddr),
		Environment: stringEnv("MSALSA_ENV", defaultEnv),
		SessionTTL:  durationEnv("SESSION_TTL", defaultSessionTTL),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     intEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: 2,
			DialTimeout:  durationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Tree: TreeDefaults{
			DivID:      stringEnv("TREE_DIV_ID", defaultDivID),
			SVGHeight:  intEnv("TREE_SVG_HEIGHT", defaultSVGHeight),
			SVGWidth:   intEnv("TREE_SVG_WIDTH", defaultSVGWidth),
			ScriptURLs: strutil.SplitList(os.Getenv("TREE_SCRIPT_URLS")),
		},
	}
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
