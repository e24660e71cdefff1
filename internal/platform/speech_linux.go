package platform

func newSpeaker() Speaker {
	return lookupSpeaker(
		commandSpeaker{name: "spd-say", args: func(text string) []string { return []string{"--wait", text} }},
		commandSpeaker{name: "espeak-ng", args: plainArgs},
		commandSpeaker{name: "espeak", args: plainArgs},
	)
}
