package planner

import (
	"fmt"
	"strings"

	"trip_planner/internal/domain"
)

// PromptVersion ties the prompt's embedded example schema to the
// parser's validation rules; bump both together.
const PromptVersion = "v2"

// promptExample is the literal response shape the model is asked to
// produce. ParseResponse validates against the same structure.
const promptExample = `{
  "destination": "Jaipur",
  "days": [
    {
      "day": 1,
      "theme": "Heritage & Culture",
      "morning": [
        {"activity": "Amber Fort", "description": "Hilltop fort with mirror palace", "time": "09:00 - 11:00", "cost": "₹500-1000", "tip": "Arrive early to beat the crowds", "imageKeyword": "Amber Fort Jaipur"}
      ],
      "afternoon": [
        {"activity": "City Palace", "description": "Royal residence and museums", "time": "14:00 - 16:00", "cost": "₹800-1500", "tip": "Combined tickets cover the observatory", "imageKeyword": "City Palace Jaipur"}
      ],
      "evening": [
        {"activity": "Chokhi Dhani", "description": "Rajasthani village dinner experience", "time": "18:00 - 21:00", "cost": "₹1000-2000", "tip": "Book a table in advance", "imageKeyword": "Chokhi Dhani Jaipur"}
      ],
      "breakfast": ["Laxmi Misthan Bhandar"],
      "lunch": ["Handi Restaurant"],
      "dinner": ["Suvarna Mahal"]
    }
  ],
  "highlights": ["Amber Fort", "Hawa Mahal"],
  "localTips": ["Negotiate auto fares before boarding"]
}`

// BuildPrompt renders the generation request as a single text block.
// Deterministic for identical inputs; an empty interest list renders as
// an empty clause rather than an error.
func BuildPrompt(req domain.GenerateRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a professional travel planner. Create a detailed %d-day itinerary for %s.\n\n",
		req.Duration, req.Destination)

	fmt.Fprintf(&b, "Budget level: %s.\n", req.Budget)
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "Traveler interests: %s.\n", strings.Join(req.Interests, ", "))
	}

	b.WriteString(`
Requirements:
1. Exactly ` + fmt.Sprintf("%d", req.Duration) + ` day entries, one per day of the trip.
2. Each day needs morning, afternoon and evening activities at specific named places.
3. Each day needs breakfast, lunch and dinner recommendations at real restaurants.
4. Give approximate costs in Indian Rupees (₹) for every activity.
5. Include one practical tip per activity.
6. Include an image-search keyword (imageKeyword) for every place mentioned.

Respond with ONLY this JSON, no prose, matching this exact structure:

`)
	b.WriteString(promptExample)
	return b.String()
}
