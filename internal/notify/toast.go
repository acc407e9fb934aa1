package notify

// Level selects the toast style.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

const DefaultPosition = "top-right"

type Toast struct {
	Level    Level  `json:"level"`
	Message  string `json:"message"`
	Position string `json:"position"`
}

func New(level Level, message string) Toast {
	return Toast{Level: level, Message: message, Position: DefaultPosition}
}

func Info(message string) Toast    { return New(LevelInfo, message) }
func Success(message string) Toast { return New(LevelSuccess, message) }
func Warning(message string) Toast { return New(LevelWarning, message) }
func Error(message string) Toast   { return New(LevelError, message) }

// Outcome messages shown by the booking form.
const (
	MsgNotFound      = "No appointment found. You can create a new one."
	MsgExpired       = "Your previous appointment is already expired. You can create a new one."
	MsgFound         = "Appointment found!"
	MsgCheckFailed   = "Error checking appointment."
	MsgCreated       = "Appointment created successfully!"
	MsgCreateFailed  = "Error creating appointment."
	MsgUpdated       = "Appointment updated successfully!"
	MsgUpdateFailed  = "Error updating appointment."
	MsgDeleted       = "Appointment deleted successfully!"
	MsgDeleteFailed  = "Error deleting appointment."
	MsgCheckFirst    = "Check an appointment first."
	MsgPhoneRequired = "Please enter a phone number."
)
