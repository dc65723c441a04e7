package domain

// Order is a resource owned by a single user in the CRM service.
type Order struct {
	ID       string  `json:"_id" bson:"_id,omitempty"`
	Username string  `json:"username" bson:"username"`
	Item     string  `json:"item" bson:"item"`
	Price    float64 `json:"price" bson:"price"`
}
