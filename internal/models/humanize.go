package models

import "encoding/json"

// HumanizeRequest is the inbound rewrite payload. Style is optional.
type HumanizeRequest struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

// UnmarshalJSON keeps style only when it is a JSON string; any other value
// decodes as an empty style, which resolves to the default.
func (r *HumanizeRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text  string          `json:"text"`
		Style json.RawMessage `json:"style"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Text = raw.Text
	r.Style = ""
	if len(raw.Style) > 0 {
		var style string
		if err := json.Unmarshal(raw.Style, &style); err == nil {
			r.Style = style
		}
	}
	return nil
}

// HumanizeResponse carries the rewritten text on success.
type HumanizeResponse struct {
	HumanizedText string `json:"humanizedText"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StyleInfo describes one selectable rewrite style.
type StyleInfo struct {
	Key     string `json:"key"`
	Default bool   `json:"default"`
}

type StylesResponse struct {
	Styles []StyleInfo `json:"styles"`
}
