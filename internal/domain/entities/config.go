package entities

// Server configuration defaults.
const (
	DefaultListenAddr     = ":8080"
	DefaultMaxUploadBytes = 5 * 1024 * 1024
	DefaultLogLevel       = "info"
)

// ServerConfig holds the runtime settings of the upload service.
// An empty StagingDir means the OS temp dir.
type ServerConfig struct {
	ListenAddr     string
	MaxUploadBytes int64
	StagingDir     string
	LogLevel       string
}
