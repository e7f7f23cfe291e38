package bot

// Reply texts. The form prompts and rejections are part of the bot's
// observable contract, so they live in one place.
const (
	msgWelcome = "Welcome to the Rise and Shine Challenge!\n\n" +
		"Available commands:\n" +
		"/form - Get the daily form\n" +
		"/leaderboard - View the current leaderboard\n" +
		"/start - Welcome message and available commands"

	msgWindowClosed = "Sorry, you are out of time. Please submit your form tomorrow."
	msgAskName      = "Good Morning! Please enter your name:"
	msgAskEmail     = "Please enter your email:"
	msgAskPrayer    = "Did you complete your prayer? (Yes/No)"

	msgDuplicate = "You have already submitted the form today. Please try again tomorrow."
	msgThanks    = "Thank you for your submission!"

	msgSubmitError      = "Error saving your submission."
	msgLeaderboardError = "Failed to retrieve the leaderboard."
)
