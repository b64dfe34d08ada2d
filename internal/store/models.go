package store

type Category string

const (
	CategoryArchitecture   Category = "architecture"
	CategoryTradeoff       Category = "tradeoff"
	CategoryOptimization   Category = "optimization"
	CategoryDebugging      Category = "debugging"
	CategoryImplementation Category = "implementation"
	CategoryRequirements   Category = "requirements"
)

// Message is one transcript turn as supplied by the host payload.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// ContextItem is a classified snippet extracted from a message. Items are
// created by the classifier and never mutated afterwards.
type ContextItem struct {
	Category     Category `json:"category"`
	Content      string   `json:"content"`
	Role         string   `json:"role"`
	MessageIndex int      `json:"-"`
	Timestamp    string   `json:"timestamp"`
}

// SessionRecord is the write-once per-run artifact, one file per preservation.
type SessionRecord struct {
	SessionID   string       `json:"session_id"`
	PreservedAt string       `json:"preserved_at"`
	WorkingDir  string       `json:"working_dir"`
	ItemCount   int          `json:"item_count"`
	Items       []RecordItem `json:"items"`
}

// RecordItem is a ContextItem as persisted, with the message index dropped.
type RecordItem struct {
	Category  Category `json:"category"`
	Content   string   `json:"content"`
	Role      string   `json:"role"`
	Timestamp string   `json:"timestamp"`
}

type SummaryEntry struct {
	SessionID       string `json:"session_id"`
	LastPreservedAt string `json:"last_preserved_at"`
	ItemCount       int    `json:"item_count"`
}

// SummaryIndex is the rolling index over recent sessions, capped at
// SummaryCapacity entries with drop-from-front eviction.
type SummaryIndex struct {
	Sessions []SummaryEntry `json:"sessions"`
}

const SummaryCapacity = 20
