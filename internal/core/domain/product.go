package domain

// Product is a public catalog entry. Products are read-only for this
// service; maintenance happens through a back-office flow.
type Product struct {
	ID     string  `json:"id" bson:"_id,omitempty"`
	Title  string  `json:"title" bson:"title"`
	Artist string  `json:"artist" bson:"artist"`
	Price  float64 `json:"price" bson:"price"`
	Units  int     `json:"units" bson:"units"`
}
