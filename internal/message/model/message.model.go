package model

// Page is the data rendered by messages.html.
type Page struct {
	Messages []string
}

const AddedReply = "Message added!"
