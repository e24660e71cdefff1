package platform

func newSpeaker() Speaker {
	return lookupSpeaker(commandSpeaker{name: "say", args: plainArgs})
}
