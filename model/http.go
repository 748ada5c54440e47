package model

// ChordMessage is the websocket payload: {"type":"chord","chord":{...}}
type ChordMessage struct {
	Type  string     `json:"type"`
	Chord ChordEvent `json:"chord"`
}

type SuggestRequestBody struct {
	Chord string `json:"chord"`
	Key   string `json:"key"`
	Goal  string `json:"goal,omitempty"`
	Top   int    `json:"top,omitempty"`
}

type SuggestResponse struct {
	Chord      string      `json:"chord"`
	Key        string      `json:"key"`
	Goal       string      `json:"goal"`
	Candidates []Candidate `json:"candidates"`
}

type ClientsResponse struct {
	Clients int `json:"clients"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
