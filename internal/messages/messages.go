// Package messages holds the per-language texts the bot sends to
// participants. Internal failures are never phrased through this package;
// everything here is participant-facing.
package messages

import "fmt"

// Catalog bundles every participant-facing text for one language,
// including the canonical command strings, which differ by language.
type Catalog struct {
	Language string

	CommandReady string
	CommandNext  string
	CommandDone  string

	AreYouReady           string
	PleaseWait            string
	DontUnderstand        string
	PartnerReadyAreYou    string
	HoorayStart           string
	LongDiscussion        string
	NotStarted            string
	TooShort              string
	WriteSummary          string
	PartnerDoneAreYou     string
	NextItemInstructions  string
	PartnerNextAreYou     string
	ExperimentOver        string
	PreparingNext         string
	NotDone               string
	NotNext               string
	NoPartnerFound        string
	MayWaitMore           string
	NoFurtherPayment      string
	CheckBackLater        string
	ConvoEndedYouWereAway string
	PartnerAwayLong       string
	PleaseSendToken       string
	ContactForHelp        string
	SaveToken             string

	QuestionerTitle       string
	QuestionerDescription string
	AnswererTitle         string
	AnswererDescription   string

	TaskGreeting []string

	rejoined          string
	leftPleaseWait    string
	token             string
	movedOut          string
	alreadyTyped      string
	waitingForPartner string
}

// Rejoined announces that a named participant re-entered the room.
func (c *Catalog) Rejoined(name string) string {
	return fmt.Sprintf(c.rejoined, name)
}

// LeftPleaseWait tells the remaining participant that their partner left.
func (c *Catalog) LeftPleaseWait(name string) string {
	return fmt.Sprintf(c.leftPleaseWait, name)
}

// Token delivers a confirmation token.
func (c *Catalog) Token(token string) string {
	return fmt.Sprintf(c.token, token)
}

// MovedOut announces the relocation delay in seconds.
func (c *Catalog) MovedOut(seconds int) string {
	return fmt.Sprintf(c.movedOut, seconds)
}

// AlreadyTyped tells a participant they already sent the given command.
func (c *Catalog) AlreadyTyped(command string) string {
	return fmt.Sprintf(c.alreadyTyped, command)
}

// WaitingForPartner confirms a command arrived and that the partner must
// now send the same command.
func (c *Catalog) WaitingForPartner(command string) string {
	return fmt.Sprintf(c.waitingForPartner, command)
}

// ByLanguage returns the catalog for a language code.
func ByLanguage(lang string) (*Catalog, error) {
	switch lang {
	case "eng":
		return English(), nil
	case "gla":
		return Gaelic(), nil
	}
	return nil, fmt.Errorf("unknown message language %q", lang)
}
