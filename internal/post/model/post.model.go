package model

type Post struct {
	Title   string `db:"title" json:"title"`
	Content string `db:"content" json:"content"`
}

// Page is the data rendered by posts.html.
type Page struct {
	Posts []Post
}
