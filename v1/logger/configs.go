package logger

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls logger creation.
type Config struct {
	// Level is the minimum level that will be emitted.
	// One of "debug", "info", "warning", "error". Defaults to "info".
	Level string `yaml:"level" envconfig:"LOGGER_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string `yaml:"serviceName" envconfig:"LOGGER_SERVICE_NAME"`
}
