package sidebar

// GroupNeuroMaster is the label of the guide group in both locales.
const GroupNeuroMaster = "NeuroMaster"

// English is the sidebar of the /en/ locale.
func English() Config {
	return Config{
		{
			Prefix: "/en/guide/",
			Groups: []Group{
				{Text: GroupNeuroMaster, Children: []string{"/en/guide/arduino.md"}},
			},
		},
	}
}

// Chinese is the sidebar of the root locale.
func Chinese() Config {
	return Config{
		{
			Prefix: "/guide/",
			Groups: []Group{
				{Text: GroupNeuroMaster, Children: []string{"/guide/arduino.md"}},
			},
		},
	}
}

// Default combines the locale sidebars, root locale first.
func Default() Config {
	return append(Chinese(), English()...)
}
