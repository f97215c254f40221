package constants

// User-facing copy shared by the CLI and the TUI.
const (
	LockedTitle   = "Cannot Add Tasks"
	LockedMessage = "You've completed a task today! Plan your tasks the day before."
	LockedNotice  = "🎯 You've completed a task today! Plan tomorrow's tasks tonight."

	ValidationTitle = "Error"
	NotFoundTitle   = "Not Found"

	CelebrationTitle   = "🎉 Congratulations!"
	CelebrationMessage = "You've completed all your tasks for today! Your achievement has been shared with your friends."

	CelebrationPostTitle    = "All Tasks Completed"
	CelebrationPostCategory = "Achievement"
	CelebrationCaptionFmt   = "🎉 %s finished their to-do list for the day, wish them congratulations!"

	PostedTitle   = "Success!"
	PostedMessage = "Your task completion has been posted to your feed! 🎉"
)
