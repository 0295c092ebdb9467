package geolocation

// GeolocationRequest HTTP request model
type GeolocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeolocationResponse HTTP response model
type GeolocationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
