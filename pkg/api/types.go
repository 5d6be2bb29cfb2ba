package api

// APIResponse represents a standard API response envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the inspection API server.
type ServerConfig struct {
	Bind       string
	Port       int
	APIKey     string
	FilePath   string // achievements file to serve and edit
	HistoryDir string // snapshot store directory; empty disables snapshots
}

// AchievementSummary is the list-view projection of a record.
type AchievementSummary struct {
	ID       string `json:"id"`
	Unlocked bool   `json:"unlocked"`
}

// AchievementDetail is the full rendering of a record. Progress is the
// opaque payload in hex.
type AchievementDetail struct {
	ID           string `json:"id"`
	Unlocked     bool   `json:"unlocked"`
	UnlockedAt   uint64 `json:"unlocked_at"`
	Progress     string `json:"progress"`
	ProgressSize int    `json:"progress_size"`
}

// FileStats summarizes the file being served.
type FileStats struct {
	Version     uint16 `json:"version"`
	Records     int    `json:"records"`
	Unlocked    int    `json:"unlocked"`
	EncodedSize int    `json:"encoded_size"`
}

// DeleteResult reports a successful deletion.
type DeleteResult struct {
	ID         string `json:"id"`
	SnapshotID string `json:"snapshot_id,omitempty"`
	Records    int    `json:"records"`
}
