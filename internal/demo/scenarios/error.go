package scenarios

import (
	"time"

	"github.com/zhubert/replywriter/internal/demo"
	"github.com/zhubert/replywriter/internal/keys"
	"github.com/zhubert/replywriter/internal/prefs"
)

// Error shows validation and service failures: submitting nothing, then a
// failing request, dismissing the banner and retrying.
var Error = &demo.Scenario{
	Name:        "error",
	Description: "Empty submit hint, service failure banner and retry",
	Width:       100,
	Height:      32,
	Setup: &demo.ScenarioSetup{
		Theme:        prefs.Dark,
		DefaultReply: "Thanks for the update, I'll take a look today.",
	},
	Steps: []demo.Step{
		demo.Wait(800 * time.Millisecond),

		demo.Annotate("Submitting without content shows a hint"),
		demo.KeyWithDesc(keys.CtrlS, "submit empty"),
		demo.Wait(1 * time.Second),

		demo.Type("The deploy is blocked on your review."),
		demo.Wait(500 * time.Millisecond),

		demo.Annotate("The service is down"),
		demo.QueueFailure("503 Service Unavailable"),
		demo.KeyWithDesc(keys.CtrlS, "submit"),
		demo.AwaitReply(),
		demo.Wait(1500 * time.Millisecond),

		demo.Annotate("Dismiss and try again"),
		demo.KeyWithDesc(keys.Escape, "dismiss banner"),
		demo.Wait(500 * time.Millisecond),
		demo.KeyWithDesc(keys.CtrlS, "retry"),
		demo.AwaitReply(),
		demo.Wait(1500 * time.Millisecond),
	},
}
