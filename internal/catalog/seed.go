package catalog

import "github.com/dkoroteev/streethunt/internal/models"

func f(v float64) *float64 { return &v }

// seedItems is the fixed hunt list. The ids are literals so that persisted
// progress stays attached to its item across restarts.
var seedItems = []models.HuntItem{
	{
		ID:          "7f0b3a1e-8d24-4c1a-9f5b-2e6a80c4d901",
		Name:        "Bluebird Café",
		Address:     "12 King St W",
		Description: "Cozy brunch spot with local art.",
		Clue:        "Find the ceramic bluebird near the pastry case.",
		Lat:         f(43.64870), Lon: f(-79.38171),
	},
	{
		ID:          "0c92d7b4-51f3-49ab-b6c0-aa1f2d9e3b72",
		Name:        "Green Leaf Books",
		Address:     "88 Queen St E",
		Description: "Indie bookstore & community hub.",
		Clue:        "Hunt for the vintage typewriter on the poetry shelf.",
		Lat:         f(43.65322), Lon: f(-79.37411),
	},
	{
		ID:          "3de85c09-67aa-4e12-8b44-9c01e5f7a263",
		Name:        "CineTown",
		Address:     "101 Main St",
		Description: "Classic cinema with retro posters.",
		Clue:        "Spot the golden ticket under the marquee display.",
		Lat:         f(43.68661), Lon: f(-79.30170),
	},
	{
		ID:          "b1a6f2c8-0d4e-4f77-a3b9-5e82c61d0f34",
		Name:        "Pixel Arcade",
		Address:     "5 Maple Ave",
		Description: "Retro games & neon lights.",
		Clue:        "Check by the pinball machine with the highest score.",
	},
	{
		ID:          "9e47ab63-2c58-4d90-bf12-74d6e0a8c155",
		Name:        "Bean Roasters",
		Address:     "47 Victoria Rd",
		Description: "Small-batch roastery.",
		Clue:        "Look for the tiny burlap sack near the cupping table.",
		Lat:         f(43.66054), Lon: f(-79.37699),
	},
	{
		ID:          "512fc0d7-93be-4a6f-8e21-cb30a94d7e86",
		Name:        "Riverwalk Deli",
		Address:     "3 Riverwalk Ln",
		Description: "Sandwiches with local ingredients.",
		Clue:        "Clue hides behind a jar of house pickles.",
		Lat:         f(43.64504), Lon: f(-79.35828),
	},
	{
		ID:          "e8239f15-74ac-4bd3-92e7-0f5a6c1db497",
		Name:        "Skyline Theatre",
		Address:     "72 Elm St",
		Description: "Live stage & improv.",
		Clue:        "Peek near Seat B12 sign at the aisle.",
		Lat:         f(43.65751), Lon: f(-79.38309),
	},
	{
		ID:          "26c4d8ea-b05f-4371-8a9c-f1e72b3c0658",
		Name:        "Paper & Pen",
		Address:     "19 Oak St",
		Description: "Stationery & gifts.",
		Clue:        "Find the wax seal stamp next to journals.",
	},
	{
		ID:          "f405b79c-1ae8-4c26-b3d0-68e9a2f4c713",
		Name:        "Sunset Sushi",
		Address:     "23 Bayview Blvd",
		Description: "Fresh rolls & omakase.",
		Clue:        "Search by the koi painting at the entrance.",
		Lat:         f(43.66859), Lon: f(-79.34973),
	},
	{
		ID:          "a73e50d1-c9b2-4f48-a6e5-3d08b1c7f920",
		Name:        "City Comics",
		Address:     "9 Wellington Rd",
		Description: "Comics & collectibles.",
		Clue:        "Hidden near Issue #1 display case.",
		Lat:         f(43.64391), Lon: f(-79.38529),
	},
}
