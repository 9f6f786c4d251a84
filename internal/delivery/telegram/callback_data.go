package telegram

import "strings"

// Callback actions. The language name is the only parameter.
const (
	actionCard    = "card"
	actionDetails = "details"
	actionLearn   = "learn"
	actionBack    = "back"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
	}
}

// param returns the i-th parameter or "".
func (cd callbackData) param(i int) string {
	if i < len(cd.Params) {
		return cd.Params[i]
	}
	return ""
}

func buildLanguageCallback(action, language string) string {
	return callbackData{Action: action, Params: []string{language}}.encode()
}
