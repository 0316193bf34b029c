package models

import "time"

// BackupVersion is stamped on every exported backup document.
const BackupVersion = "1.0"

// Backup is the export/import document for the catalog and the order ledger.
type Backup struct {
	Products  []Product `json:"products"`
	Orders    []Order   `json:"orders"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
