package domain

// Post is a blog post teaser.
type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Preview     string `json:"preview"`
	ReadingTime string `json:"reading_time"`
}

// Product is a sellable workflow or template.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
	Level       string `json:"level"`
}

// Resource is a free downloadable resource.
type Resource struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Kind  string   `json:"kind"`
	Blurb string   `json:"blurb"`
	Tags  []string `json:"tags"`
}
