package telegram

const (
	msgWelcome = "<b>Lingo</b>\n\nPick a language card to flip it."

	msgHelp = "Tap a card to see its back face, then <b>Details</b> for facts or " +
		"<b>Learn More</b> to take its quiz.\n\n" +
		"During a quiz every message is an answer. Answers ignore case and surrounding spaces.\n\n" +
		"/quiz Spanish starts a quiz directly, /cancel abandons it."

	msgUnknownCommand  = "Unknown command. Try /help."
	msgQuizUsage       = "Usage: /quiz Spanish"
	msgCancelled       = "Quiz cancelled."
	msgNothingToCancel = "There is no quiz in progress."
	msgNoQuiz          = "Send /start to pick a language."
	msgExpired         = "That card is no longer available. Send /start again."
)
