package commentary

import "time"

// ClientConfig holds the relay connection settings.
type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
}

// Request is the request body for a commentary generation call.
type Request struct {
	Prompt    string `json:"prompt"`
	GameState string `json:"game_state,omitempty"`
}

// Message is the normalized commentary returned by the relay,
// independent of which wire format produced it.
type Message struct {
	Text      string
	SessionID string
	GameState string
}

// wireResponse accepts both relay response formats. The current format
// carries "message" plus a metadata object; the legacy format is flat
// with "response" at the top level.
type wireResponse struct {
	Message  string `json:"message"`
	Metadata *struct {
		SessionID string `json:"session_id"`
		GameState string `json:"game_state"`
	} `json:"metadata"`

	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	GameState string `json:"game_state"`
}

// normalize folds either wire format into a Message.
func (w *wireResponse) normalize() *Message {
	msg := &Message{
		Text:      w.Message,
		SessionID: w.SessionID,
		GameState: w.GameState,
	}
	if msg.Text == "" {
		msg.Text = w.Response
	}
	if w.Metadata != nil {
		if w.Metadata.SessionID != "" {
			msg.SessionID = w.Metadata.SessionID
		}
		if w.Metadata.GameState != "" {
			msg.GameState = w.Metadata.GameState
		}
	}
	return msg
}
