package common

// PrintOptions controls how parse trees are displayed.
type PrintOptions struct {
	Format            string `yaml:"option-format,omitempty"`
	Indent            int    `yaml:"option-indent,omitempty"`
	IncludeSpans      bool   `yaml:"option-include-spans,omitempty"`
	TrimTokenOnOutput int    `yaml:"option-trim-token-on-output,omitempty"`
}

func DefaultPrintOptions() *PrintOptions {
	return &PrintOptions{
		Format:       "ASCIITREE",
		Indent:       2,
		IncludeSpans: true,
	}
}
