package domain

// Citation points at the page of a project document an answer drew on.
type Citation struct {
	File string
	Page int
}

// Answer is what the chat endpoint returned for one query. Text may carry
// an in-band failure such as a quota message; it is shown as-is.
type Answer struct {
	Text      string
	Citations []Citation
}
