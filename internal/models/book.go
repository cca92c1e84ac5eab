package models

type Book struct {
	Title         string  `json:"title" bson:"title"`
	Author        string  `json:"author" bson:"author"`
	Genre         string  `json:"genre" bson:"genre"`
	PublishedYear int     `json:"published_year" bson:"published_year"`
	Price         float64 `json:"price" bson:"price"`
	InStock       bool    `json:"in_stock" bson:"in_stock"`
	Pages         int     `json:"pages" bson:"pages"`
	Publisher     string  `json:"publisher" bson:"publisher"`
}

// BookSummary is the shape returned by projected reads: title, author and
// price included, _id excluded.
type BookSummary struct {
	Title  string  `json:"title" bson:"title"`
	Author string  `json:"author" bson:"author"`
	Price  float64 `json:"price" bson:"price"`
}
