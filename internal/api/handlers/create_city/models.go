package create_city

// CreateCityRequest HTTP request model
type CreateCityRequest struct {
	Name string `json:"name"`
}

// CreateCityResponse HTTP response model
type CreateCityResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}
