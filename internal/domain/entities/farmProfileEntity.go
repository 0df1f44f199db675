package entities

import "time"

// FarmProfile is the durable per-user farm record. UserID is unique across the store.
type FarmProfile struct {
	UserID   string        `json:"userId" bson:"user_id"`
	Location string        `json:"location,omitempty" bson:"location,omitempty"`
	SoilType string        `json:"soilType,omitempty" bson:"soil_type,omitempty"`
	Crops    []string      `json:"crops,omitempty" bson:"crops,omitempty"`
	History  []FarmHistory `json:"history,omitempty" bson:"history,omitempty"`
}

// FarmHistory is an interaction embedded in the profile document.
type FarmHistory struct {
	Query    string    `json:"query" bson:"query"`
	Response string    `json:"response" bson:"response"`
	Date     time.Time `json:"date" bson:"date"`
}
