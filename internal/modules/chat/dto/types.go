package dto

type AskInput struct {
	Query string
}

type SourceOutput struct {
	File string
	Page int
}

type AskOutput struct {
	Answer  string
	Sources []SourceOutput
}
