package mockserver

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type toneStyle struct {
	greeting string
	body     string
	closing  string
}

var toneStyles = map[string]toneStyle{
	"": {
		greeting: "Hi,",
		body:     "Thank you for your email about %s. I have read it and will follow up shortly.",
		closing:  "Best regards",
	},
	"professional": {
		greeting: "Hello,",
		body:     "Thank you for reaching out regarding %s. I will review the details and respond with next steps.",
		closing:  "Kind regards",
	},
	"casual": {
		greeting: "Hey,",
		body:     "Thanks for the note about %s. Let me take a look and get back to you.",
		closing:  "Cheers",
	},
	"friendly": {
		greeting: "Hi there!",
		body:     "So nice to hear from you about %s. I'll get back to you soon.",
		closing:  "Warmly",
	},
	"formal": {
		greeting: "Dear Sir or Madam,",
		body:     "I acknowledge receipt of your correspondence concerning %s and shall respond in due course.",
		closing:  "Yours faithfully",
	},
	"enthusiastic": {
		greeting: "Hello!",
		body:     "Thank you so much for your message about %s! I'm excited to dig in and will reply very soon!",
		closing:  "All the best",
	},
}

// ComposeReply builds a deterministic canned reply. Unknown tones use the
// default style.
func ComposeReply(content, tone string) string {
	style, ok := toneStyles[tone]
	if !ok {
		style = toneStyles[""]
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s",
		style.greeting,
		fmt.Sprintf(style.body, topic(content)),
		style.closing,
	)
}

// topic quotes the first non-empty line of the email, or its Subject header
// when the content starts with headers.
func topic(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "From:") {
			continue
		}
		line = strings.TrimPrefix(line, "Subject:")
		return fmt.Sprintf("%q", ansi.Truncate(strings.TrimSpace(line), 60, "..."))
	}
	return "your message"
}
