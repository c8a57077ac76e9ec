package weather

// apiResponse is the subset of the OpenWeatherMap current weather payload
// that is mapped into Report.
type apiResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// apiError is the error body OpenWeatherMap returns with non-200 statuses.
type apiError struct {
	Message string `json:"message"`
}
