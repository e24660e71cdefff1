package platform

import "strings"

func newSpeaker() Speaker {
	return lookupSpeaker(commandSpeaker{name: "powershell", args: sapiArgs})
}

func sapiArgs(text string) []string {
	quoted := "'" + strings.ReplaceAll(text, "'", "''") + "'"
	script := "Add-Type -AssemblyName System.Speech; " +
		"(New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak(" + quoted + ")"
	return []string{"-NoProfile", "-NonInteractive", "-Command", script}
}
