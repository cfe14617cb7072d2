package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
)

// Config holds all runtime configuration values. Each field maps to
// one environment variable. The signing secret and the database
// coordinates are required; everything else has a sensible default.
type Config struct {
	Port                  string // HTTP port to listen on
	DBUser                string // database username
	DBPass                string // database password (optional)
	DBHost                string // database host address
	DBPort                string // database port number
	DBName                string // database name
	JWTSecret             string // secret used to sign bearer tokens
	TokenTTLHours         int    // token validity window in hours
	BcryptCost            int    // bcrypt cost for password hashing
	StrictLeaveValidation bool   // enforce from<=to and known userId on leaves
}

// Load reads configuration from the environment. Missing required
// variables cause the process to exit with a fatal log message.
func Load() Config {
	return Config{
		Port:                  envStr("APP_PORT", "3000"),
		DBUser:                must("DB_USER"),
		DBPass:                os.Getenv("DB_PASS"), // empty allowed
		DBHost:                must("DB_HOST"),
		DBPort:                must("DB_PORT"),
		DBName:                must("DB_NAME"),
		JWTSecret:             must("JWT_SECRET"),
		TokenTTLHours:         envInt("TOKEN_TTL_HOURS", 48),
		BcryptCost:            envInt("BCRYPT_COST", 10),
		StrictLeaveValidation: envBool("STRICT_LEAVE_VALIDATION", false),
	}
}

// must retrieves a required environment variable or halts the process.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
