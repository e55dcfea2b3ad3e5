package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

// RegistrationMode selects which self-registration policy is active.
type RegistrationMode string

const (
	// RegistrationBootstrap permits registration only while the account
	// store is empty; the first account becomes admin.
	RegistrationBootstrap RegistrationMode = "bootstrap"
	// RegistrationOpen permits anyone to self-register as employee.
	RegistrationOpen RegistrationMode = "open"
)

// InsecureSessionSecret is used when ODESK_SESSION_SECRET is unset.
// Deployments must override it; the server logs a warning if they don't.
const InsecureSessionSecret = "orderdesk-insecure-dev-secret"

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("ODESK_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("ODESK_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("ODESK_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetUploadFolderPath() string {
	uploadFolderPath := os.Getenv("ODESK_UPLOAD_FOLDER")
	if uploadFolderPath == "" {
		uploadFolderPath = "uploads"
	}
	return uploadFolderPath
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("ODESK_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("ODESK_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("ODESK_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 8080
	}
	return port
}

// GetBaseURL returns the externally visible address of this deployment,
// used to build each agent's public submission link.
func GetBaseURL() string {
	base := os.Getenv("ODESK_BASE_URL")
	if base == "" {
		base = fmt.Sprintf("http://localhost:%d", GetPort())
	}
	return strings.TrimRight(base, "/")
}

// GetSessionSecret returns the cookie-signing secret and whether it came
// from the environment. The fallback is insecure and only acceptable for
// development.
func GetSessionSecret() (string, bool) {
	secret := os.Getenv("ODESK_SESSION_SECRET")
	if secret == "" {
		return InsecureSessionSecret, false
	}
	return secret, true
}

func GetSessionMaxAgeMinutes() int {
	maxAge, err := strconv.Atoi(os.Getenv("ODESK_SESSION_MAX_AGE"))
	if err != nil || maxAge <= 0 {
		return 60
	}
	return maxAge
}

func GetRegistrationMode() RegistrationMode {
	mode := RegistrationMode(os.Getenv("ODESK_REGISTRATION_MODE"))
	if mode != RegistrationOpen {
		return RegistrationBootstrap
	}
	return mode
}
