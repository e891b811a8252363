package i18n

// Message keys. Each key is also its English text.
const (
	Playlist       = "Playlist"
	NothingPlaying = "Nothing playing"
	EmptyPlaylist  = "The playlist is empty. Press a to add a track."

	StateIdle    = "Idle"
	StateLoading = "Loading"
	StatePlaying = "Playing"
	StatePaused  = "Paused"
	StateStopped = "Stopped"

	ModeRepeat  = "repeat"
	ModeAdvance = "next"
	ModeStop    = "stop"
	Mode        = "%s mode"
	ShuffleOn   = "shuffle on"
	ShuffleOff  = "shuffle off"
	Volume      = "volume %d%%"
	Muted       = "muted"

	AddTitle      = "Add a track"
	LinkLabel     = "YouTube link:"
	NameLabel     = "Name:"
	LookingUp     = "Looking up the title..."
	LookupFailed  = "Could not look up the title: %s"
	Added         = "Added %s"
	Removed       = "Removed %s"
	ConfirmRemove = "Remove %s? (y/n)"
	Opening       = "Opening %s"
	CouldNotOpen  = "Could not open the link: %s"

	HelpPlay      = "play"
	HelpPause     = "play/pause"
	HelpStop      = "stop"
	HelpNext      = "next"
	HelpPrevious  = "previous"
	HelpSeekBack  = "rewind"
	HelpSeekAhead = "fast forward"
	HelpVolUp     = "volume up"
	HelpVolDown   = "volume down"
	HelpMute      = "mute"
	HelpMode      = "play mode"
	HelpShuffle   = "shuffle"
	HelpAdd       = "add"
	HelpRemove    = "remove"
	HelpOpen      = "open link"
	HelpLookup    = "look up title"
	HelpSubmit    = "confirm"
	HelpSwitch    = "next field"
	HelpCancel    = "cancel"
	HelpQuit      = "quit"
	HelpHelp      = "help"
)

type entry struct {
	en, pl string
}

var entries = []entry{
	{Playlist, "Playlista"},
	{NothingPlaying, "Nic nie gra"},
	{EmptyPlaylist, "Playlista jest pusta. Naciśnij a, aby dodać utwór."},

	{StateIdle, "Bezczynny"},
	{StateLoading, "Ładowanie"},
	{StatePlaying, "Odtwarzanie"},
	{StatePaused, "Pauza"},
	{StateStopped, "Zatrzymano"},

	{ModeRepeat, "powtarzanie"},
	{ModeAdvance, "następny"},
	{ModeStop, "stop"},
	{Mode, "tryb: %s"},
	{ShuffleOn, "losowo: wł."},
	{ShuffleOff, "losowo: wył."},
	{Volume, "głośność %d%%"},
	{Muted, "wyciszono"},

	{AddTitle, "Dodaj utwór"},
	{LinkLabel, "Link do YouTube:"},
	{NameLabel, "Nazwa:"},
	{LookingUp, "Szukam tytułu..."},
	{LookupFailed, "Nie udało się pobrać tytułu: %s"},
	{Added, "Dodano %s"},
	{Removed, "Usunięto %s"},
	{ConfirmRemove, "Usunąć %s? (t/n)"},
	{Opening, "Otwieram %s"},
	{CouldNotOpen, "Nie udało się otworzyć linku: %s"},

	{HelpPlay, "odtwórz"},
	{HelpPause, "odtwórz/pauza"},
	{HelpStop, "stop"},
	{HelpNext, "następny"},
	{HelpPrevious, "poprzedni"},
	{HelpSeekBack, "przewiń wstecz"},
	{HelpSeekAhead, "przewiń naprzód"},
	{HelpVolUp, "głośniej"},
	{HelpVolDown, "ciszej"},
	{HelpMute, "wycisz"},
	{HelpMode, "tryb"},
	{HelpShuffle, "losowo"},
	{HelpAdd, "dodaj"},
	{HelpRemove, "usuń"},
	{HelpOpen, "otwórz link"},
	{HelpLookup, "szukaj tytułu"},
	{HelpSubmit, "zatwierdź"},
	{HelpSwitch, "następne pole"},
	{HelpCancel, "anuluj"},
	{HelpQuit, "wyjdź"},
	{HelpHelp, "pomoc"},
}
