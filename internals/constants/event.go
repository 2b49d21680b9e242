package constants

// Kategori event yang dikenal beserta label tampilannya.
const (
	CategoryOpenClass = "open-class"
	CategoryWebinar   = "webinar"
	CategorySeminar   = "seminar"
	CategoryBootcamp  = "bootcamp"
)

var categoryLabels = map[string]string{
	CategoryOpenClass: "Open Class",
	CategoryWebinar:   "Webinar",
	CategorySeminar:   "Seminar",
	CategoryBootcamp:  "Bootcamp",
}

func IsValidCategory(category string) bool {
	_, ok := categoryLabels[category]
	return ok
}

// CategoryLabel mengembalikan label tampilan; kategori tak dikenal dikembalikan apa adanya.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

// Tipe event (gratis / berbayar).
const (
	EventTypeFree = "free"
	EventTypePaid = "paid"
)

func IsValidEventType(eventType string) bool {
	return eventType == EventTypeFree || eventType == EventTypePaid
}
