package pipeline

// Config holds the settings used to load and run a pipeline.
type Config struct {
	// File is the path of a YAML pipeline file. Optional.
	File string

	// Steps are step expressions ("take:2", "where:{js: true}") appended
	// after the steps of File.
	Steps []string

	// Aliases maps extra operation names to existing ones, in addition to
	// the aliases declared in File.
	Aliases map[string]string

	// Indent is the indentation used when encoding results as JSON.
	// An empty string produces compact output. Defaults to two spaces.
	Indent string
}

// DefaultConfig returns a [Config] populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Indent:  "  ",
		Aliases: map[string]string{},
	}
}
