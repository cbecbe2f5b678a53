package kafka_config

import "time"

// Config holds producer-side Kafka configuration.
type Config struct {
	Brokers []string

	ProducerMaxAttempts  int
	ProducerBatchTimeout time.Duration
	ProducerRequireAcks  int    // -1 = all, 0 = none, 1 = leader only
	ProducerCompression  string // "none", "gzip", "snappy", "lz4", "zstd"
	ProducerAsync        bool
}

// Default returns a producer config with conservative defaults for the
// given broker list.
func Default(brokers []string) *Config {
	return &Config{
		Brokers:              brokers,
		ProducerMaxAttempts:  3,
		ProducerBatchTimeout: 100 * time.Millisecond,
		ProducerRequireAcks:  -1,
		ProducerCompression:  "snappy",
		ProducerAsync:        false,
	}
}
