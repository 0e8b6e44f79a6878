package entities

// LogType categorizes combat log entries.
type LogType string

// Log entry types
const (
	LogDamage          LogType = "damage"
	LogHealing         LogType = "healing"
	LogConditionAdd    LogType = "condition_add"
	LogConditionRemove LogType = "condition_remove"
	LogDeath           LogType = "death"
	LogInfo            LogType = "info"
	LogTurnStart       LogType = "turn_start"
)

// LogEntry is a single append-only combat log record. Entries are
// never mutated or reordered after creation.
type LogEntry struct {
	ID        string  `json:"id"`
	Round     int     `json:"round"`
	ActorName string  `json:"actorName"`
	Message   string  `json:"message"`
	Type      LogType `json:"type"`
}
