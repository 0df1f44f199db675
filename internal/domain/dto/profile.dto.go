package dto

// ProfileUpsert carries the fields of a profile submission. Nil slices and
// empty strings mean "keep the stored value".
type ProfileUpsert struct {
	Location string   `json:"location"`
	SoilType string   `json:"soilType"`
	Crops    []string `json:"crops"`
}
