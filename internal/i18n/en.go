package i18n

import "github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"

var en = Messages{
	AppTitle: "Huyền Phong Phật Đạo",
	Errors: Errors{
		Config:           "Server configuration error: Missing API_KEY.",
		Connect:          "Could not connect to the server. Please check your network connection.",
		Generic:          "Sorry, an error has occurred. Please try again.",
		Unknown:          "An unknown error occurred. Please try again later.",
		InvalidInput:     "The submitted information is incomplete or invalid. Please check and try again.",
		RateLimited:      "Too many requests. Please slow down and try again shortly.",
		MethodNotAllowed: "Method Not Allowed",
		Server:           "Server error",
		Horoscope:        "An error occurred while analyzing your chart. Please try again later.",
		Divination:       "An error occurred while casting the hexagram. Please try again later.",
		DateSelection:    "An error occurred while searching for auspicious dates. Please try again later.",
		Talisman:         "An unexpected error occurred while crafting the talisman. The spirits may be resting. Please try again later.",
		ImageFailed:      "Image generation failed.",
		NameRequired:     "Please enter your full name.",
		Busy:             "Please wait for the current request to finish.",
	},
	Chat: Chat{
		Greeting:    "Amitabha! I am Thien Giac. Is there anything you need guidance on regarding destiny, feng shui, or life philosophy?",
		Placeholder: "Ask about destiny, house orientation, auspicious dates...",
		Error:       "Sorry, an error has occurred. Please try again.",
		Thinking:    "...",
	},
	Horoscope: Horoscope{
		Title:         "Lifetime Horoscope Analysis",
		UserInfo:      "Personal Information",
		DateLabel:     "Date of Birth",
		TimeLabel:     "Time of Birth",
		GenderLabel:   "Gender",
		Male:          "Male",
		Female:        "Female",
		SummaryTitle:  "Destiny Overview",
		MainElement:   "Main Element",
		ZodiacAnimal:  "Zodiac Animal",
		WesternZodiac: "Western Zodiac",
		DestinyPalace: "Destiny Palace",
		LifetimeTitle: "Lifetime Analysis",
		Overview:      "Overview",
		Career:        "Career",
		Wealth:        "Wealth",
		Love:          "Love & Marriage",
		Health:        "Health",
		Family:        "Family",
		Synthesis:     "Synthesis & Holistic View",
		PeriodsTitle:  "Key Life Periods",
		Youth:         "Youth Period (Ages 18-35)",
		MiddleAge:     "Middle Age (Ages 36-55)",
		OldAge:        "Old Age (Ages 56+)",
		LuckyTitle:    "Auspicious Guide",
		Numbers:       "Lucky Numbers",
		Colors:        "Lucky Colors",
		Zodiacs:       "Compatible Zodiacs",
		Dos:           "Things to Do",
		Donts:         "Things to Avoid",
		Footer:        "Analyzed by Huyền Phong Phật Đạo © %d. This content is for reference and contemplation purposes only.",
		Loading:       "AI Thien Giac is analyzing your chart. This may take a moment...",
	},
	Divination: Divination{
		StickNumber:    "Oracle Stick Number",
		Poem:           "Interpretive Poem",
		Interpretation: "Detailed Interpretation",
		Overview:       "Overview",
		Career:         "Career",
		Love:           "Love & Family",
		Health:         "Health",
		Advice:         "Thien Giac's Advice",
		Loading:        "Casting...",
	},
	Dates: Dates{
		Title:        "List of Auspicious Dates",
		NoResults:    "No highly auspicious dates were found for this event in the selected month. Please try searching in a different month.",
		LunarDate:    "Lunar Date",
		GoodHours:    "Auspicious Hours",
		Explanation:  "Explanation",
		Conflicting:  "Conflicting Zodiacs",
		Auspicious:   "Auspicious Stars",
		Inauspicious: "Inauspicious Stars",
		Score:        "Suitability",
		Loading:      "AI Thien Giac is calculating the celestial stems, terrestrial branches, and auspicious stars to find the best date for you...",
		EventTypes: []Preset{
			{Key: "wedding", Label: "Wedding"},
			{Key: "groundbreaking", Label: "Groundbreaking Ceremony"},
			{Key: "grandOpening", Label: "Grand Opening"},
			{Key: "movingHouse", Label: "Moving to a New House"},
			{Key: "contractSigning", Label: "Signing Contracts"},
			{Key: "travel", Label: "Starting a Journey"},
		},
	},
	Talisman: Talisman{
		Title:        "Your Protective Talisman",
		Symbolism:    "Talisman Symbolism",
		Instructions: "Instructions for Use",
		Saved:        "Talisman saved to %s",
		Loading:      "AI Thien Giac is chanting mantras and drawing your protective talisman. Please wait with a sincere heart...",
		Placeholder:  "A symbolic lotus was drawn in place of the personal artwork.",
		WishTypes: []Preset{
			{Key: "overall_luck", Label: "Overall Luck & Peace"},
			{Key: "career", Label: "Career & Success"},
			{Key: "wealth", Label: "Wealth & Prosperity"},
			{Key: "love", Label: "Love & Relationships"},
			{Key: "health", Label: "Health & Safety"},
			{Key: "education", Label: "Education & Exams"},
		},
		Fallback: domain.TalismanText{
			BlessingText: "May peace and auspicious energy always be with you, illuminating your path.",
			Explanation:  "This sacred lotus symbolizes purity, enlightenment, and rebirth. It radiates a gentle energy, bringing tranquility to the mind and attracting good fortune from the ten directions.",
			Instructions: "Save this talisman image to your device. Look at it when you need peace and focus your thoughts on your aspirations. Let its positive energy guide you.",
		},
	},
}
