package constants

import (
	"os"
	"time"
)

func GetSessionDir() string {
	path := os.Getenv("SESSION_PATH")
	if path != "" {
		return path
	}
	return "./sessions"
}

func GetServeAddr() string {
	addr := os.Getenv("SERVE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8000"
}

func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMO_ENDPOINT")
}

// grouping window so near-simultaneous note-ons form one chord
const DebounceInterval = 30 * time.Millisecond

const SessionFileExt = ".session"

const ArchiveTable = "chordflow-sessions"
