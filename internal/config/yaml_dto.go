package config

type YAMLConfig struct {
	Output     string            `yaml:"output"`
	Layout     string            `yaml:"layout"`
	QRURL      string            `yaml:"qr_url"`
	Check      string            `yaml:"check"`
	Stats      *bool             `yaml:"stats"`
	Reader     string            `yaml:"reader"`
	Palette    map[string]string `yaml:"palette"`
	Properties YAMLProperties    `yaml:"properties"`
}

type YAMLProperties struct {
	Title   string `yaml:"title"`
	Subject string `yaml:"subject"`
	Author  string `yaml:"author"`
	Company string `yaml:"company"`
}
