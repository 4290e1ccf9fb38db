package constvars

type contextKey string

const (
	ContextSessionKey   contextKey = "session"
	ContextSessionIDKey contextKey = "session_id"
	ContextRequestIDKey contextKey = "request_id"
)

// Roles assignable to clinic staff accounts.
const (
	RoleAdmin        = "admin"
	RoleDentist      = "dentist"
	RoleReceptionist = "receptionist"
)

const (
	MongoCollectionPatients     = "patients"
	MongoCollectionAppointments = "appointments"
	MongoCollectionUsers        = "users"
)

const (
	URLParamPatientID     = "patientID"
	URLParamAppointmentID = "appointmentID"
	URLParamAttachmentID  = "attachmentID"
)

// MultipartFileField is the form field name the dashboard uploads under.
const MultipartFileField = "file"

const (
	StorageModeReference = "reference"
	StorageModeInline    = "inline"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const SessionKeyPrefix = "session:"
