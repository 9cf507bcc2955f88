package server

// Config is gathered from the environment at server startup.
type Config struct {
	Debug bool   `envconfig:"GENEVISION_DEBUG" default:"false"`
	Port  string `envconfig:"GENEVISION_PORT" default:"5000"`

	// MaxSequenceLength bounds pathological-size pastes before the
	// engine sees them; 0 disables the cap.
	MaxSequenceLength int `envconfig:"GENEVISION_MAX_SEQUENCE_LENGTH" default:"5000000"`
}
