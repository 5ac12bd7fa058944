package config // package config loads application configuration from environment variables

import (
    "os"   // os provides access to environment variables
    "time" // time parses duration values

    "github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and credentials, durations for
// session lifetime.
type Config struct {
    Env        string        // application environment (e.g. "dev", "prod")
    Port       string        // HTTP port to listen on
    DBUser     string        // database username
    DBPass     string        // database password (optional)
    DBHost     string        // database host address
    DBPort     string        // database port number
    DBName     string        // database name
    AdminUser  string        // username that is granted the admin role on login
    AdminPass  string        // password checked for the admin username only
    SessionTTL time.Duration // lifetime of a session record in the session store
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file in the working directory is loaded first when it
// exists; real environment variables take precedence.  Every value has a
// default so the application starts without any configuration.
func Load() Config {
    _ = godotenv.Load() // missing .env is not an error

    return Config{
        Env:        getenv("APP_ENV", "dev"),               // environment (dev/test/prod)
        Port:       getenv("APP_PORT", "3000"),             // port to bind the HTTP server
        DBUser:     getenv("DB_USER", "root"),              // database user
        DBPass:     os.Getenv("DB_PASS"),                   // database password (empty allowed)
        DBHost:     getenv("DB_HOST", "localhost"),         // database host
        DBPort:     getenv("DB_PORT", "3306"),              // database port
        DBName:     getenv("DB_NAME", "venue_booking"),     // database name
        AdminUser:  getenv("ADMIN_USER", "admin"),          // admin login name
        AdminPass:  getenv("ADMIN_PASS", "adminpass"),      // admin login password
        SessionTTL: parseDur(getenv("SESSION_TTL", "24h")), // session record lifetime
    }
}

// getenv returns the value of the environment variable key, or def when the
// variable is unset or empty.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// parseDur parses a duration string, falling back to 24 hours on error.
func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil || d <= 0 {
        return 24 * time.Hour
    }
    return d
}
