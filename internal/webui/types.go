package webui

// View is the JSON rendering of the whole panel.
type View struct {
	Total     string        `json:"total"`
	Current   string        `json:"current"`
	History   []string      `json:"history"`
	Converter ConverterView `json:"converter"`
	Theme     ThemeView     `json:"theme"`
}

// ConverterView mirrors the unit-converter widgets.
type ConverterView struct {
	Category   string   `json:"category"`
	Input      string   `json:"input"`
	Result     string   `json:"result"`
	Categories []string `json:"categories"`
}

// ThemeView is the active palette, keyed by role.
type ThemeView struct {
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors"`
}

// SequenceRequest is the JSON body for POST /calculator/sequence.
type SequenceRequest struct {
	Keys []string `json:"keys"` // captions ("×"), aliases ("*") or key names ("multiply")
}

// SequenceResponse is the JSON response for POST /calculator/sequence.
type SequenceResponse struct {
	Steps []StepResult `json:"steps"`
	View  View         `json:"view"`
}

// StepResult records the labels after one pressed key.
type StepResult struct {
	Key     string `json:"key"`
	Total   string `json:"total"`
	Current string `json:"current"`
}

// ConvertRequest is the JSON body for POST /converter. An empty category
// keeps the current selection.
type ConvertRequest struct {
	Category string `json:"category"`
	Input    string `json:"input"`
}

// HistoryResponse is the JSON response for GET /calculator/history.
type HistoryResponse struct {
	History []string `json:"history"`
}
