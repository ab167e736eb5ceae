package create_category

// CreateCategoryRequest HTTP request model
type CreateCategoryRequest struct {
	Name string `json:"name"`
}
