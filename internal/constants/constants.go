package constants

const EnvPrefix = "SANDWICH_"

const FormatText = "text"
const FormatJSON = "json"

const DefaultFormat = FormatText

const ExitCodeSuccess = 0
const ExitCodeFailure = 1
