package trip

// Card is a home feed card
type Card struct {
	Label    string
	Title    string
	Subtitle string
}

// Game is an entry of the gaming section and the daily list
type Game struct {
	Title    string
	Subtitle string
	Action   string
}

// Feed is the content of the home screen
type Feed struct {
	Feature   Card
	StayHome  Card
	Games     []Game
	HowTo     Card
	DailyList []Game
}

// HomeFeed returns the static home screen content
func HomeFeed() Feed {
	return Feed{
		Feature: Card{
			Label:    "NEW FEATURE",
			Title:    "Travel smart",
			Subtitle: "Gather weather and dining tips quickly before you go",
		},
		StayHome: Card{
			Label:    "STAY HOME",
			Title:    "Workouts at home",
			Subtitle: "Get moving again. No routine required!",
		},
		Games: []Game{
			{Title: "Ori", Subtitle: "A metroidvania adventure", Action: "GET"},
			{Title: "Alto's Odyssey", Subtitle: "Adventure", Action: "GET"},
			{Title: "Gravity Loop", Subtitle: "Silly Gravity Arcade Puzzler", Action: "GET"},
			{Title: "Magnetic", Subtitle: "A hard science magnetic puzzle", Action: "GET"},
		},
		HowTo: Card{
			Label:    "HOW TO",
			Title:    "Stronger passwords",
			Subtitle: "Use a password manager to set safe passwords",
		},
		DailyList: []Game{
			{Title: "Morning walk", Subtitle: "Shiba Park, 30 min", Action: "OPEN"},
			{Title: "Lunch spot", Subtitle: "Tsukiji outer market", Action: "OPEN"},
			{Title: "Museum", Subtitle: "National Art Center", Action: "OPEN"},
			{Title: "Sunset view", Subtitle: "Roppongi Hills deck", Action: "OPEN"},
			{Title: "Dinner", Subtitle: "Ebisu yokocho", Action: "OPEN"},
		},
	}
}
