// Package generation talks to the reply-generation service.
package generation

import "context"

// Well-known tones. Any other string is passed to the service verbatim.
const (
	ToneDefault      = ""
	ToneProfessional = "professional"
	ToneCasual       = "casual"
	ToneFriendly     = "friendly"
	ToneFormal       = "formal"
	ToneEnthusiastic = "enthusiastic"
)

// ToneOption pairs a tone value with its display label.
type ToneOption struct {
	Value string
	Label string
}

// Tones lists the tones offered in pickers, in display order.
var Tones = []ToneOption{
	{ToneDefault, "Default"},
	{ToneProfessional, "Professional"},
	{ToneCasual, "Casual"},
	{ToneFriendly, "Friendly"},
	{ToneFormal, "Formal"},
	{ToneEnthusiastic, "Enthusiastic"},
}

// ToneLabel returns the display label for a tone, or the raw value for
// tones outside Tones.
func ToneLabel(tone string) string {
	for _, t := range Tones {
		if t.Value == tone {
			return t.Label
		}
	}
	return tone
}

// Request is the body sent to the generation service.
type Request struct {
	EmailContent string `json:"emailContent"`
	Tone         string `json:"tone"`
}

// Response is the raw service response.
type Response struct {
	Body        []byte
	ContentType string
}

// Text returns the body as display text. See FormatResponse.
func (r Response) Text() string {
	return FormatResponse(r.Body)
}

// Client generates a reply for an email.
type Client interface {
	Generate(ctx context.Context, req Request) (Response, error)
}
