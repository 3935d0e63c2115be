package orchestrator

import (
	"fmt"
	"time"
)

const dateFormatISO = "2006-01-02"

// buildSystemInstruction renders the system prompt for one exchange,
// anchoring the model to the caller's current date and time so relative
// dates resolve deterministically.
func buildSystemInstruction(now time.Time) string {
	tomorrow := now.AddDate(0, 0, 1)
	nextWeek := now.AddDate(0, 0, 7)

	return fmt.Sprintf(
		systemPromptTemplate,
		now.Format("2006-01-02 15:04"),
		now.Weekday().String(),
		tomorrow.Format(dateFormatISO),
		nextWeek.Format(dateFormatISO),
	)
}
