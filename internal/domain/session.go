package domain

// Step identifies which form question a chat is currently answering
type Step string

const (
	StepNone         Step = ""
	StepName         Step = "name"
	StepEmail        Step = "email"
	StepPrayerStatus Step = "prayer_status"
)

// Session tracks one chat's progress through the daily form. A stored
// session always has Step != StepNone, and steps advance strictly
// name -> email -> prayer status.
type Session struct {
	ChatID int64
	Step   Step
	Name   string
	Email  string
}

// SessionStore defines the interface for in-progress session storage
type SessionStore interface {
	Get(chatID int64) (*Session, bool)
	Put(session *Session)
	Delete(chatID int64)
}
