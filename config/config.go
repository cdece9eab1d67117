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
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

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
	logLevel := os.Getenv("BLOG_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("BLOG_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("BLOG_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("BLOG_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("BLOG_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("BLOG_PORT"))
	if err != nil || port <= 0 {
		return 5000
	}
	return port
}

// GetSessionSecret returns the key used to sign session cookies. An empty
// value means the caller must generate one; sessions then do not survive
// a process restart.
func GetSessionSecret() string {
	return os.Getenv("BLOG_SECRET")
}

// GetAdminUserId returns the id of the single administrator account,
// fixed once at startup. Defaults to the first registered user.
func GetAdminUserId() int {
	id, err := strconv.Atoi(os.Getenv("BLOG_ADMIN_USER_ID"))
	if err != nil || id <= 0 {
		return 1
	}
	return id
}

func GetSMTPHost() string {
	host := os.Getenv("BLOG_SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	return host
}

func GetSMTPPort() int {
	port, err := strconv.Atoi(os.Getenv("BLOG_SMTP_PORT"))
	if err != nil || port <= 0 {
		return 465
	}
	return port
}

func GetSMTPEmail() string {
	return os.Getenv("BLOG_SMTP_EMAIL")
}

func GetSMTPPassword() string {
	return os.Getenv("BLOG_SMTP_PASSWORD")
}
