package messages

// Gaelic returns the Scottish Gaelic message catalog.
func Gaelic() *Catalog {
	const (
		cmdReady = "/tòiseachadh"
		cmdNext  = "/ath"
		cmdDone  = "/deiseil"
	)
	return &Catalog{
		Language: "gla",

		CommandReady: cmdReady,
		CommandNext:  cmdNext,
		CommandDone:  cmdDone,

		AreYouReady:           "A bheil thu deiseil? Cuir a-steach `" + cmdReady + "` gus an còmhradh a thòiseachadh.",
		PleaseWait:            "Feuch an fuirich thu diog no dhà nas fhaide airson freagairt.",
		DontUnderstand:        "Duilich, ach chan eil mi a' tuigsinn na dh'iarr thu orm.",
		PartnerReadyAreYou:    "Tha do chompanach deiseil. Feuch gun sgrìobh thu `" + cmdReady + "`!",
		HoorayStart:           "Math fhèin! Tòisichidh an còmhradh a-nis.",
		LongDiscussion:        "Tha an còmhradh agad air mairsinn airson greis mu thràth. Nuair a bhios tu deiseil bruidhinn mun taisbeanadh, sgrìobh `" + cmdDone + "` gus an geàrr-chunntas a thòiseachadh.",
		NotStarted:            "Cha do thòisich an còmhradh fhathast.",
		TooShort:              "Chan eil coltas gu bheil an còmhradh seo fada gu leòr fhathast. Feuch an bruidhinn thu barrachd!",
		WriteSummary:          "Ceart gu leòr, feuch an toir thu geàrr-chunntas **a-mhàin** air an fhiosrachadh mun taisbeanadh **air an do bhruidhinn thu nur còmhradh**.",
		PartnerDoneAreYou:     "Tha do chompanach dhen bheachd gu bheil an còmhradh deiseil a-nis. Sgrìobh `" + cmdDone + "` ma bhios tu ag aontachadh.",
		NextItemInstructions:  "Nuair a tha thu air do gheàrr-chunntas a chuir a-steach, sgrìobh `" + cmdNext + "` gus gluasad chun ath thaisbeanadh.",
		PartnerNextAreYou:     "Tha do chom-pàirtiche deiseil leis a' gheàrr-chunntas aca. Taidhp `" + cmdNext + "` nuair a bhios tu deiseil leis an fhear agad fhèin.",
		ExperimentOver:        "Tha an sgrùdadh seachad! Tapadh leat airson a dhol an sàs ann!",
		PreparingNext:         "Ceart gu leòr, tha sinn ag ullachadh an ath thaisbeanadh...",
		NotDone:               "Tha e coltach gu bheil do chom-pàirtiche fhathast ag iarraidh barrachd còmhraidh. Cuir `" + cmdDone + "` a-rithist nuair a bhios an dithis agaibh deiseil.",
		NotNext:               "Tha do chom-pàirtiche fhathast ag obair air a' gheàrr-chunntas aca. Cuir `" + cmdNext + "` a-rithist nuair a bhios an dithis agaibh deiseil.",
		NoPartnerFound:        "Gu mì-fhortanach cha b' urrainn dhuinn com-pàirtiche a lorg dhut!",
		MayWaitMore:           "Dh'fhaodadh tu feitheamh beagan a bharrachd is dòcha :)",
		NoFurtherPayment:      "Cha bhi thu a' faighinn tuarastal airson airson a bhith feitheimh nas fhaide.",
		CheckBackLater:        "Feuch an toir thu sùil air ais aig àm eile dhen latha.",
		ConvoEndedYouWereAway: "Thàinig an geama gu crìch oir bha thu air falbh ro fhada!",
		PartnerAwayLong:       "Tha e coltach gu bheil do chompanach air falbh airson ùine mhòr!",
		PleaseSendToken:       "Sgrìobh sìos an tòcan ('token') a leanas is sàbhail e airson uair eile. Feumaidh tu an tòcan seo a thoirt seachad nuair a chuireas tu a-steach am fiosrachadh-banca agad airson ais-phàigheadh ('reimbursement') an deidh an sgrùdaidh.",
		ContactForHelp:        "Ma tha duilgheadas sam bith agad, cuir post-d gu nlg@napier.ac.uk.",
		SaveToken:             "Dèan cinnteach gun sàbhail thu an tòcan agad ro làimh.",

		QuestionerTitle: "Faighnich ceistean mun taisbeanadh.",
		QuestionerDescription: "<b>Tha thu aig an taigh-tasgaidh agus chì thu an taisbeanadh inntinneach seo.</b> Chan eil mòran cùl-fhiosrachaidh agad, ach tha beachd agad gu bheil an taisbeanadh a' buntainn ri cuid de na teirmean a chì thu fon dealbh.\n\n" +
			"(1) <b>Faighnich ceistean do chom-pàirtiche mun taisbeanadh gus barrachd ionnsachadh mu dheidhinn.</b> Feuch ri ionnsachadh cho mòr 's as urrainn dhut!\n" +
			"(2) Nuair a tha thu a' faireachdainn gu bheil an còmhradh air fiosrachadh gu leòr a chòmhdach agus air àite-stad comhfhurtail a ruighinn, cuir am brath: <verbatim>" + cmdDone + "</verbatim>\n\n" +
			"Aon uair 's gu bheil thu fhèin agus an com-pàirtiche ag aontachadh gu bheil an còmhradh agad deiseil, sgrìobhaidh gach fear agaibh geàrr-chunntas den fhiosrachadh air an do bhruidhinn thu.\n<hr />",
		AnswererTitle: "Freagairtean do na ceistean air an taisbeanadh.",
		AnswererDescription: "<b>Tha thu ag obair aig an taigh-tasgaidh agus a' taisbeanadh na h-ulaidh (exhibit item) inntinnich seo.</b> Tha an teacsa gu h-ìosal a' riochdachadh an fhiosrachaidh air fad a th' agad mun ulaidh.\n\n" +
			"(1) <b>Freagair ceistean do chom-pàirtichean mun taisbeanadh.</b> Feuch ri freagairtean iomchaidh a thoirt seachad a tha a' riochdachadh co-theacs an fhiosrachaidh a chaidh a thoirt dhut. <i>Na cleachd an t-eòlas prìobhaideach no pearsanta agad fhèin na do fhreagairtean.</i>\n" +
			"(2) Nuair a tha thu a' faireachdainn gu bheil an còmhradh air fiosrachadh gu leòr a thoir seachad agus air àite-stad comhfhurtail a ruighinn, cuir am brath: <verbatim>" + cmdDone + "</verbatim>\n<hr />",

		TaskGreeting: []string{
			"**Fàilte gu deuchainn QASum!**",
			"Anns an deuchainn seo, bidh còmhradh agad le neach eile mu thaisbeanadh taigh-tasgaidh agus an uairsin nì thu geàrr-chunntas air na bhruidhinn sibh.",
			"Feuch an sgrìobh thu `" + cmdReady + "` gus an deuchainn a thòiseachadh.",
		},

		rejoined:          "Tha %s air a dhol a-steach dhan t-seòmar.",
		leftPleaseWait:    "Tha %s air an còmhradh fhàgail. Feuch an fuirich thu beagan, air eagal 's gun till do chompanach.",
		token:             "Seo an tòcan agad: %s",
		movedOut:          "Thèid do ghluasad a-mach às an t-seòmar seo ann an %d diogan. Dèan cinnteach gun sàbhail thu do thòcan ro làimh.",
		alreadyTyped:      "Thaidhp thu `%s` mar thà.",
		waitingForPartner: "A-nis a' feitheamh ris a' chompanach agad `%s` a thaipeadh.",
	}
}
