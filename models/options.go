package models

// Fixed option sets offered by the wizards. Free text is still accepted for
// HowMet and Activity; TimeOfDay and Mutuals are picked from their sets.

// MeetingOptions are the quick-select answers for "how did you meet".
var MeetingOptions = []string{
	"Hinge",
	"Tinder",
	"Bumble",
	"Through friends",
	"At a bar",
	"At work",
	"At school/college",
	"At a party",
	"At a coffee shop",
	"At the gym",
	"At a restaurant",
	"At a concert",
	"At a wedding",
	"At a social event",
}

// ActivityOptions are the quick-select answers for the date activity.
var ActivityOptions = []string{
	"Dinner",
	"Coffee",
	"Drinks",
	"Movie",
	"Walk",
	"Concert",
	"Museum",
	"Shopping",
	"Bowling",
	"Mini golf",
	"Arcade",
	"Hiking",
	"Beach",
	"Park",
}

// TimeOfDayOptions are the time-of-day buckets.
var TimeOfDayOptions = []string{"Morning", "Afternoon", "Evening", "Night"}

// MutualsOptions answer "did you have mutual connections".
var MutualsOptions = []string{"Yes", "No", "Maybe"}

// EmojiOptions is the sentiment glyph picker set.
var EmojiOptions = []string{
	"😊", "😍", "😎", "😄", "😌", "🥰", "🤩", "🙂",
	"😐", "😒", "😞", "😔", "🙁", "😬", "🥱", "😴",
}

// RatingOptions are the accepted text-encoded ratings.
var RatingOptions = []string{"1", "2", "3", "4", "5"}
