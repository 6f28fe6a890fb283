package messages

import (
	"strings"
	"testing"
)

func TestByLanguage(t *testing.T) {
	eng, err := ByLanguage("eng")
	if err != nil {
		t.Fatalf("Expected English catalog, got error %v", err)
	}
	if eng.CommandDone != "/done" {
		t.Errorf("Expected English done command /done, got %q", eng.CommandDone)
	}

	gla, err := ByLanguage("gla")
	if err != nil {
		t.Fatalf("Expected Gaelic catalog, got error %v", err)
	}
	if gla.CommandDone != "/deiseil" {
		t.Errorf("Expected Gaelic done command /deiseil, got %q", gla.CommandDone)
	}

	if _, err := ByLanguage("xyz"); err == nil {
		t.Error("Expected error for unknown language, got nil")
	}
}

func TestCatalogsAreComplete(t *testing.T) {
	for _, lang := range []string{"eng", "gla"} {
		c, err := ByLanguage(lang)
		if err != nil {
			t.Fatalf("Expected catalog for %s, got error %v", lang, err)
		}

		fixed := map[string]string{
			"CommandReady":          c.CommandReady,
			"CommandNext":           c.CommandNext,
			"CommandDone":           c.CommandDone,
			"AreYouReady":           c.AreYouReady,
			"PleaseWait":            c.PleaseWait,
			"DontUnderstand":        c.DontUnderstand,
			"PartnerReadyAreYou":    c.PartnerReadyAreYou,
			"HoorayStart":           c.HoorayStart,
			"LongDiscussion":        c.LongDiscussion,
			"NotStarted":            c.NotStarted,
			"TooShort":              c.TooShort,
			"WriteSummary":          c.WriteSummary,
			"PartnerDoneAreYou":     c.PartnerDoneAreYou,
			"NextItemInstructions":  c.NextItemInstructions,
			"PartnerNextAreYou":     c.PartnerNextAreYou,
			"ExperimentOver":        c.ExperimentOver,
			"PreparingNext":         c.PreparingNext,
			"NotDone":               c.NotDone,
			"NotNext":               c.NotNext,
			"NoPartnerFound":        c.NoPartnerFound,
			"MayWaitMore":           c.MayWaitMore,
			"NoFurtherPayment":      c.NoFurtherPayment,
			"CheckBackLater":        c.CheckBackLater,
			"ConvoEndedYouWereAway": c.ConvoEndedYouWereAway,
			"PartnerAwayLong":       c.PartnerAwayLong,
			"PleaseSendToken":       c.PleaseSendToken,
			"ContactForHelp":        c.ContactForHelp,
			"SaveToken":             c.SaveToken,
			"QuestionerTitle":       c.QuestionerTitle,
			"QuestionerDescription": c.QuestionerDescription,
			"AnswererTitle":         c.AnswererTitle,
			"AnswererDescription":   c.AnswererDescription,
		}
		for name, text := range fixed {
			if text == "" {
				t.Errorf("Expected %s catalog to define %s", lang, name)
			}
		}
		if len(c.TaskGreeting) == 0 {
			t.Errorf("Expected %s catalog to define a task greeting", lang)
		}
	}
}

func TestFormatMethods(t *testing.T) {
	for _, lang := range []string{"eng", "gla"} {
		c, err := ByLanguage(lang)
		if err != nil {
			t.Fatalf("Expected catalog for %s, got error %v", lang, err)
		}

		formatted := map[string]struct{ text, arg string }{
			"Rejoined":          {c.Rejoined("morag"), "morag"},
			"LeftPleaseWait":    {c.LeftPleaseWait("morag"), "morag"},
			"Token":             {c.Token("AB12CD"), "AB12CD"},
			"MovedOut":          {c.MovedOut(300), "300"},
			"AlreadyTyped":      {c.AlreadyTyped(c.CommandReady), c.CommandReady},
			"WaitingForPartner": {c.WaitingForPartner(c.CommandDone), c.CommandDone},
		}
		for name, got := range formatted {
			if !strings.Contains(got.text, got.arg) {
				t.Errorf("Expected %s %s to contain %q, got %q", lang, name, got.arg, got.text)
			}
			if strings.Contains(got.text, "%!") {
				t.Errorf("Expected %s %s to format cleanly, got %q", lang, name, got.text)
			}
		}
	}
}
