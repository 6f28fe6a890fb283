package messages

// English returns the English message catalog.
func English() *Catalog {
	const (
		cmdReady = "/ready"
		cmdNext  = "/next"
		cmdDone  = "/done"
	)
	return &Catalog{
		Language: "eng",

		CommandReady: cmdReady,
		CommandNext:  cmdNext,
		CommandDone:  cmdDone,

		AreYouReady:           "Are you ready? Please type `" + cmdReady + "` to begin the game.",
		PleaseWait:            "Please wait some more for an answer.",
		DontUnderstand:        "Sorry, but I do not understand this command.",
		PartnerReadyAreYou:    "Your partner is ready. Please, type `" + cmdReady + "`!",
		HoorayStart:           "Woo-Hoo! The game will begin now.",
		LongDiscussion:        "Your conversation has lasted a while already. When you're done talking about the exhibit, please type `" + cmdDone + "` to start the summary phase.",
		NotStarted:            "The conversation has not started yet.",
		TooShort:              "This conversation doesn't seem long enough yet. Please discuss some more!",
		WriteSummary:          "Ok, please summarise **only** the information about the exhibit **which you discussed in your conversation**.",
		PartnerDoneAreYou:     "Your partner thinks that the conversation is complete now. Type `" + cmdDone + "` if you agree.",
		NextItemInstructions:  "When you have submitted your summary, please use the `" + cmdNext + "` command to move to the next exhibit.",
		PartnerNextAreYou:     "Your partner is done with their summary. Type `" + cmdNext + "` when you are finished with yours.",
		ExperimentOver:        "The experiment is over! Thank you for participating!",
		PreparingNext:         "Ok, now preparing the next exhibit.",
		NotDone:               "Your partner seems to still want to discuss some more. Send `" + cmdDone + "` again once you two are really finished.",
		NotNext:               "Your partner is still working on their summary. Send `" + cmdNext + "` again once you two are really finished.",
		NoPartnerFound:        "Unfortunately we could not find a partner for you!",
		MayWaitMore:           "You may also wait some more :)",
		NoFurtherPayment:      "You won't be remunerated for further waiting time.",
		CheckBackLater:        "Please check back at another time of the day.",
		ConvoEndedYouWereAway: "The game ended because you were gone for too long!",
		PartnerAwayLong:       "Your partner seems to be away for a long time!",
		PleaseSendToken:       "Please write down the following token and save it for later. You will need to provide this token when submitting your bank details for reimbursement after the experiment.",
		ContactForHelp:        "If you have any problems, please email nlg@napier.ac.uk.",
		SaveToken:             "Make sure to save your token before that.",

		QuestionerTitle: "Ask questions about the exhibit.",
		QuestionerDescription: "<b>You're at the museum and you see this interesting exhibit.</b> You don't have much background information, " +
			"but you have some idea that the exhibit relates to some of the terms you see below the picture.\n\n" +
			"(1) <b>Ask your partner questions about the exhibit to learn more about it.</b> Try to learn as much as you can!\n" +
			"(2) When you feel like the conversation has covered enough information and reached a comfortable stopping point, send the message: <verbatim>" + cmdDone + "</verbatim>\n\n" +
			"Once you and your partner agree your conversation is done, you'll each write a summary of the information you discussed.\n\n<hr>",
		AnswererTitle: "Answer questions about the exhibit.",
		AnswererDescription: "<b>You work at the museum and are presenting this interesting exhibit.</b> You have a mix of 'metadata' (tables of information about the exhibit) and 'text' (paragraphs of text about the exhibit).\n\n" +
			"(1) <b>Answer your partners' questions about the exhibit.</b> Try to give appropriate answers which share relevant context from the information provided to you. <i>Do not use your own private or personal knowledge for this task.</i>\n" +
			"(2) When you feel like the conversation has covered enough information and reached a comfortable stopping point, send the message: <verbatim>" + cmdDone + "</verbatim>\n\n" +
			"Once you and your partner agree your conversation is done, you'll each write a summary of the information you discussed.\n\n<hr>",

		TaskGreeting: []string{
			"**Welcome to the QASum experiment!**",
			"In this experiment, you will have a conversation with another person about a museum exhibit and then summarise what you discussed.",
			"Please type `" + cmdReady + "` to begin the experiment.",
		},

		rejoined:          "%s has joined the game.",
		leftPleaseWait:    "%s has left the game. Please wait a bit, your partner may rejoin.",
		token:             "Here is your token: %s",
		movedOut:          "You will be moved out of this room in %ds.",
		alreadyTyped:      "You have already typed `%s`.",
		waitingForPartner: "Now waiting for your partner to type `%s`.",
	}
}
