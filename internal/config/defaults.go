package config

const (
	defaultStateDir      = "~/.local/share/mpvnotes"
	defaultShotDir       = "~/.local/share/mpvnotes/shots"
	defaultLogDir        = "~/.local/share/mpvnotes/logs"
	defaultPlayerBackend = "attached"
	defaultPlayerBinary  = "mpv"
	defaultPlayerSocket  = "/tmp/mpvsocket"
	defaultSettleMillis  = 300
	defaultLinkScheme    = "mpv"
	defaultLagSeconds    = 0
	defaultFillWidth     = 70
	defaultHeadingLevel  = 2
	defaultOCRBinary     = "tesseract"
	defaultOCRLanguages  = "eng"
	defaultOCRTimeout    = 60
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			ShotDir:  defaultShotDir,
			LogDir:   defaultLogDir,
		},
		Player: Player{
			Backend:      defaultPlayerBackend,
			Binary:       defaultPlayerBinary,
			Socket:       defaultPlayerSocket,
			SettleMillis: defaultSettleMillis,
		},
		Notes: Notes{
			LinkScheme:   defaultLinkScheme,
			LagSeconds:   defaultLagSeconds,
			FillWidth:    defaultFillWidth,
			HeadingLevel: defaultHeadingLevel,
		},
		OCR: OCR{
			Binary:         defaultOCRBinary,
			Languages:      defaultOCRLanguages,
			TimeoutSeconds: defaultOCRTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
