package config

const (
	BuildVersion = "v0.1.0-BUILD_VERSION"

	OutputFormatText    = "text"
	OutputFormatJSON    = "json"
	OutputFormatMsgpack = "msgpack"

	DefaultLogLevel = 2
)
