package scenarios

import (
	"time"

	"github.com/zhubert/replywriter/internal/demo"
	"github.com/zhubert/replywriter/internal/keys"
	"github.com/zhubert/replywriter/internal/prefs"
)

const basicEmail = "Hi Sam,\nAre you free for a quick call on Thursday to go over the Q3 budget?\nThanks, Priya"

const basicReply = `Hi Priya,

Thursday works well for me. How about 2pm? I'll bring the latest numbers so we can go through the Q3 budget together.

Best,
Sam`

// Basic walks through the main flow: paste an email, pick a tone, generate
// a reply, copy it and switch to the dark theme.
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Paste an email, choose a tone, generate and copy a reply",
	Width:       120,
	Height:      40,
	Setup: &demo.ScenarioSetup{
		Theme:        prefs.Light,
		DefaultReply: basicReply,
		Latency:      50 * time.Millisecond,
	},
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Capture(),

		demo.Annotate("Paste the email you received"),
		demo.TypeWithDesc(basicEmail, "type the incoming email"),
		demo.Wait(500 * time.Millisecond),

		demo.Annotate("Pick a tone"),
		demo.KeyWithDesc(keys.CtrlT, "open the tone picker"),
		demo.Wait(500 * time.Millisecond),
		demo.Key(keys.Down),
		demo.Wait(300 * time.Millisecond),
		demo.Key(keys.Enter),
		demo.Wait(500 * time.Millisecond),

		demo.Annotate("Generate the reply"),
		demo.KeyWithDesc(keys.CtrlS, "submit"),
		demo.AwaitReply(),
		demo.Wait(1500 * time.Millisecond),

		demo.Annotate("Copy it to the clipboard"),
		demo.KeyWithDesc(keys.CtrlY, "copy"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Prefer dark mode? It is remembered"),
		demo.KeyWithDesc(keys.CtrlD, "toggle theme"),
		demo.Wait(1500 * time.Millisecond),
	},
}
