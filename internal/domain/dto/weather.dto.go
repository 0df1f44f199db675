package dto

// WeatherQuery selects a location either by city name or by coordinates.
// Units is passed through to the provider; empty means Kelvin.
type WeatherQuery struct {
	City  string
	Lat   string
	Lon   string
	Units string
}

// WeatherData mirrors the OpenWeather current-weather payload, reduced to the
// fields the service reads.
type WeatherData struct {
	Weather []WeatherCondition `json:"weather"`
	Main    WeatherMain        `json:"main"`
	Name    string             `json:"name"`
}

type WeatherCondition struct {
	Description string `json:"description"`
}

type WeatherMain struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}
