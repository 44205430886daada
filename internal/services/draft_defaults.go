package services

import "fmt"

// Default-activity tables shared by the mock generator and the sanitizer's
// day-padding step, keyed by declared interest.
var defaultActivitiesByInterest = map[string][]string{
	"culture":   {"Visit the city museum", "Walking tour of the historic quarter", "Traditional craft workshop", "Local theatre performance"},
	"history":   {"Tour the old citadel", "Explore ancient ruins", "Guided heritage walk", "Visit the war memorial"},
	"food":      {"Street food tasting tour", "Cooking class with a local chef", "Visit the central food market", "Dinner at a traditional restaurant"},
	"nature":    {"Morning hike in the nearby hills", "Botanical garden stroll", "Lakeside picnic", "Sunset viewpoint walk"},
	"art":       {"Contemporary art gallery visit", "Street art walking tour", "Artisan quarter browse", "Evening gallery opening"},
	"shopping":  {"Browse the main market", "Boutique district shopping", "Souvenir hunt in the old town", "Local designer showrooms"},
	"adventure": {"Bicycle tour of the outskirts", "Kayaking on the river", "Zipline park visit", "Rock climbing session"},
	"nightlife": {"Rooftop bar at sunset", "Live music venue", "Night market stroll", "Local brewery tasting"},
}

var genericDefaultActivities = []string{
	"Explore the city center",
	"Visit the main landmark",
	"Walk through the old town",
	"Relax at a local cafe",
	"Visit the central market",
	"Scenic viewpoint at sunset",
}

// areaLabels cycle through synthesized activity locations.
var areaLabels = []string{"Old Town", "City Center", "Riverside District", "Market Quarter", "Harbor Area"}

// slotBaseCosts index by activity slot; scaled by the budget multiplier.
var slotBaseCosts = []int{15, 30, 25, 40}

// defaultActivityName picks an activity name round-robin over the caller's
// declared interests, falling back to the generic list when none are given.
func defaultActivityName(interests []string, dayIndex, slotIndex int) string {
	seq := dayIndex*len(areaLabels) + slotIndex
	if len(interests) > 0 {
		interest := interests[seq%len(interests)]
		if options, ok := defaultActivitiesByInterest[interest]; ok {
			return options[seq%len(options)]
		}
	}
	return genericDefaultActivities[seq%len(genericDefaultActivities)]
}

func defaultActivityLocation(destination string, dayIndex, slotIndex int) string {
	return fmt.Sprintf("%s, %s", areaLabels[(dayIndex+slotIndex)%len(areaLabels)], destination)
}

// defaultSlotTime synthesizes a time as 09:00 plus two hours per slot,
// wrapping so late slots stay within the day.
func defaultSlotTime(slotIndex int) string {
	return fmt.Sprintf("%02d:00", 9+(slotIndex%7)*2)
}

func defaultSlotCost(slotIndex int, budgetMultiplier float64) int {
	base := slotBaseCosts[slotIndex%len(slotBaseCosts)]
	return int(float64(base)*budgetMultiplier + 0.5)
}

func defaultDuration(paceTier string) string {
	switch paceTier {
	case "relaxed":
		return "3 hours"
	case "active":
		return "1.5 hours"
	default:
		return "2 hours"
	}
}
