package types

// Config represents the job configuration. It is built once at startup from
// the environment and, in CLI mode, optionally merged with a config file.
type Config struct {
	TopicARN   string `json:"topic_arn" yaml:"topic_arn" toml:"topic_arn"`
	Region     string `json:"region" yaml:"region" toml:"region"`
	Thresholds []int  `json:"thresholds" yaml:"thresholds" toml:"thresholds"`
	Profile    string `json:"profile" yaml:"profile" toml:"profile"`
}

// Merge overlays the non-empty fields of other on top of c.
func (c Config) Merge(other Config) Config {
	if other.TopicARN != "" {
		c.TopicARN = other.TopicARN
	}
	if other.Region != "" {
		c.Region = other.Region
	}
	if len(other.Thresholds) > 0 {
		c.Thresholds = other.Thresholds
	}
	if other.Profile != "" {
		c.Profile = other.Profile
	}
	return c
}
