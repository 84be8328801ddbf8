package class

var (
	// MjrConfig is the major error classification for the config package.
	MjrConfig Major

	// MnrConfigValue is the minor error classification for the config values.
	MnrConfigValue Minor

	// ConfigValueInvalid is the error classification for invalid config values.
	ConfigValueInvalid Class
	// ConfigValueNamingConvention is the error classification for unsupported
	// naming conventions.
	ConfigValueNamingConvention Class

	// MnrConfigRead is the minor error classification for reading the config files.
	MnrConfigRead Minor

	// ConfigReadFailed is the error classification for failures while reading
	// or unmarshaling the config.
	ConfigReadFailed Class
)

func registerConfigClasses() {
	MjrConfig = MustRegisterMajor("Config", "configuration issues")

	MnrConfigValue = MjrConfig.MustRegisterMinor("Value", "config value issues")

	ConfigValueInvalid = MnrConfigValue.MustRegisterIndex("Invalid", "invalid config value").Class()
	ConfigValueNamingConvention = MnrConfigValue.MustRegisterIndex("Naming Convention", "unsupported naming convention").Class()

	MnrConfigRead = MjrConfig.MustRegisterMinor("Read", "config reading issues")

	ConfigReadFailed = MustNewMinorClass(MnrConfigRead)
}
