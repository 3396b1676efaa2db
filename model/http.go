package model

type SongRequestBody struct {
	Song string `json:"song"`
}

type TransposeRequestBody struct {
	Song      string `json:"song"`
	HalfSteps int    `json:"half_steps"`
}

type ParseResponse struct {
	Lines [][]Phrase `json:"lines"`
}

type TextResponse struct {
	Text string `json:"text"`
}

type TokenResult struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type TokensResponse struct {
	Tokens []TokenResult `json:"tokens"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
