package class

var (
	// MjrCommon is the major error classification for the common classes.
	MjrCommon Major

	// MnrCommonLogger is the minor error classification for the logger issues.
	MnrCommonLogger Minor

	// CommonLoggerUnknownLevel is the error classification for unknown logger level.
	CommonLoggerUnknownLevel Class
	// CommonLoggerNotImplement is the error classification when the logger
	// doesn't implement required interface.
	CommonLoggerNotImplement Class
)

func registerCommonClasses() {
	MjrCommon = MustRegisterMajor("Common", "common library classes")

	MnrCommonLogger = MjrCommon.MustRegisterMinor("Logger", "logger related issues")

	CommonLoggerUnknownLevel = MnrCommonLogger.MustRegisterIndex("Unknown Level", "provided unknown logger level").Class()
	CommonLoggerNotImplement = MnrCommonLogger.MustRegisterIndex("Not Implement", "logger doesn't implement required interface").Class()
}
