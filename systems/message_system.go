package systems

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"ebiten-platformer/ecs"
)

// MessageLog stores recent gameplay messages for the on-screen feed
type MessageLog struct {
	Messages    []string
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []string{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.Messages = append(ml.Messages, message)

	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []string{}
}

// Subscribe feeds damage and death events into the log
func (ml *MessageLog) Subscribe(events *ecs.EventManager) {
	events.Subscribe(EventDamage, func(e ecs.Event) {
		dmg := e.(DamageEvent)
		ml.Add(fmt.Sprintf("#%d hits #%d for %d (%d left)", dmg.AttackerID, dmg.TargetID, dmg.Amount, dmg.Remaining))
	})
	events.Subscribe(EventDeath, func(e ecs.Event) {
		death := e.(DeathEvent)
		ml.Add(fmt.Sprintf("#%d was defeated", death.EntityID))
		log.Info().Uint32("entity", uint32(death.EntityID)).Uint32("killer", uint32(death.KillerID)).Msg("entity defeated")
	})
}
