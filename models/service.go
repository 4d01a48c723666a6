package models

// Shop is a beauty/wellness business offering one or more services.
type Shop struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Address  string `bson:"address,omitempty" json:"address,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	ImageURL string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// Service is one bookable offering (e.g., a 45-minute haircut). The
// availability rules live on the service document: business hours are stored
// as "HH:MM" strings and converted to minutes at the repository boundary.
type Service struct {
	ID              string   `bson:"id" json:"id"`
	ShopID          string   `bson:"shopId" json:"shopId"`
	Name            string   `bson:"name" json:"name"`
	Description     string   `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int      `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64  `bson:"price" json:"price"`
	Currency        string   `bson:"currency,omitempty" json:"currency,omitempty"`
	OpenTime        string   `bson:"openTime" json:"openTime"`   // "09:00"
	CloseTime       string   `bson:"closeTime" json:"closeTime"` // "18:00"
	ClosedWeekdays  []int    `bson:"closedWeekdays,omitempty" json:"closedWeekdays,omitempty"`
	SpecialClosures []string `bson:"specialClosures,omitempty" json:"specialClosures,omitempty"`
}
