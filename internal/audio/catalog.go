package audio

// Sound identifiers that are not synthesized alarms.
const (
	SoundCustom = "custom"
	SoundTTS    = "tts"
	SoundNone   = "none"
)

// Sound is one entry of the alert picker.
type Sound struct {
	ID       string
	Name     string
	Category string
}

// Catalog lists every selectable completion sound in display order.
var Catalog = []Sound{
	{ID: "track1", Name: "Digital Alarm", Category: "Alarms"},
	{ID: "track2", Name: "Short Beep", Category: "Alarms"},
	{ID: "track3", Name: "Notification", Category: "Alarms"},
	{ID: "track4", Name: "Bell Ring", Category: "Alarms"},
	{ID: "track5", Name: "Positive Ping", Category: "Alarms"},
	{ID: "track6", Name: "Retro Alert", Category: "Alarms"},
	{ID: "track7", Name: "Game Coin", Category: "Alarms"},
	{ID: "track8", Name: "Digital Chime", Category: "Alarms"},
	{ID: "track9", Name: "Interface Beep", Category: "Alarms"},
	{ID: SoundCustom, Name: "Custom File", Category: "Custom"},
	{ID: SoundTTS, Name: "Text-to-Speech", Category: "System"},
	{ID: SoundNone, Name: "None", Category: "System"},
}

// Lookup finds a catalog entry by id.
func Lookup(id string) (Sound, bool) {
	for _, sound := range Catalog {
		if sound.ID == id {
			return sound, true
		}
	}
	return Sound{}, false
}

// LookupName finds a catalog entry by its display name.
func LookupName(name string) (Sound, bool) {
	for _, sound := range Catalog {
		if sound.Name == name {
			return sound, true
		}
	}
	return Sound{}, false
}

// Names returns the display names in catalog order.
func Names() []string {
	names := make([]string, len(Catalog))
	for i, sound := range Catalog {
		names[i] = sound.Name
	}
	return names
}
