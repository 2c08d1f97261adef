package segmentation

import "github.com/arpitmittal98/shopsight/models"

// Probability floor (percent) below which a segment does not produce a
// persona.
const personaThreshold = 10

// Maximum personas returned per product.
const personaCap = 3

type personaTemplate struct {
	Name              string
	Occupation        string
	ShoppingBehavior  string
	PriceSensitivity  string
	PreferredChannels string
	PurchaseFrequency string
}

var personaTemplates = map[string]personaTemplate{
	"Fashion Forward": {
		Name:              "Emma",
		Occupation:        "Marketing Specialist",
		ShoppingBehavior:  "Shops 2-3 times per month, follows influencers",
		PriceSensitivity:  "Medium",
		PreferredChannels: "Online, Instagram",
		PurchaseFrequency: "High (2-3 times/month)",
	},
	"Classic Professional": {
		Name:              "Michael",
		Occupation:        "Senior Manager",
		ShoppingBehavior:  "Quarterly wardrobe updates, brand loyal",
		PriceSensitivity:  "Low",
		PreferredChannels: "In-store, website",
		PurchaseFrequency: "Medium (Quarterly)",
	},
	"Value Seeker": {
		Name:              "Sarah",
		Occupation:        "Teacher",
		ShoppingBehavior:  "Waits for sales, comparison shops",
		PriceSensitivity:  "High",
		PreferredChannels: "Online deals, clearance",
		PurchaseFrequency: "Medium (Monthly)",
	},
	"Active Lifestyle": {
		Name:              "Alex",
		Occupation:        "Fitness Instructor",
		ShoppingBehavior:  "Frequent purchases, comfort priority",
		PriceSensitivity:  "Medium",
		PreferredChannels: "Online, mobile app",
		PurchaseFrequency: "High (Monthly)",
	},
	"Mature Sophisticate": {
		Name:              "Patricia",
		Occupation:        "Executive",
		ShoppingBehavior:  "Selective, quality over quantity",
		PriceSensitivity:  "Low",
		PreferredChannels: "In-store, personal shopping",
		PurchaseFrequency: "Low (2-3 times/year)",
	},
}

// BuildPersonas expands the strongest segments of an analysis into buyer
// personas. Only segments above the 10% threshold qualify, ordered by
// descending probability and capped at three. If no segment clears the
// threshold the single highest-probability segment is returned so the
// caller always gets at least one persona.
func BuildPersonas(analysis *models.SegmentAnalysis) []models.Persona {
	if analysis == nil || len(analysis.Segments) == 0 {
		return nil
	}

	ranked := rankedSegments(analysis.Segments)

	personas := make([]models.Persona, 0, personaCap)
	for _, name := range ranked {
		if len(personas) == personaCap {
			break
		}
		if prob := analysis.Segments[name]; prob > personaThreshold {
			personas = append(personas, buildPersona(name, prob))
		}
	}

	if len(personas) == 0 {
		personas = append(personas, buildPersona(ranked[0], analysis.Segments[ranked[0]]))
	}
	return personas
}

func buildPersona(segment string, probability float64) models.Persona {
	tmpl := personaTemplates[segment]
	profile := segmentProfiles[segment]
	return models.Persona{
		Name:              tmpl.Name,
		Segment:           segment,
		Probability:       probability,
		AgeRange:          profile.AgeRange,
		Occupation:        tmpl.Occupation,
		Characteristics:   profile.Characteristics,
		ShoppingBehavior:  tmpl.ShoppingBehavior,
		PriceSensitivity:  tmpl.PriceSensitivity,
		PreferredChannels: tmpl.PreferredChannels,
		PurchaseFrequency: tmpl.PurchaseFrequency,
	}
}
