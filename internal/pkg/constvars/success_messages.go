package constvars

const (
	RegisterSuccessMessage = "successfully registered user"
	LoginSuccessMessage    = "successfully logged in"
	LogoutSuccessMessage   = "successfully logged out"

	CreatePatientSuccessMessage = "successfully created patient"
	GetPatientsSuccessMessage   = "successfully fetched patients"
	GetPatientSuccessMessage    = "successfully fetched patient"
	UpdatePatientSuccessMessage = "successfully updated patient"
	DeletePatientSuccessMessage = "successfully deleted patient"

	UploadAttachmentSuccessMessage = "successfully uploaded attachment"
	GetAttachmentsSuccessMessage   = "successfully fetched attachments"
	DeleteAttachmentSuccessMessage = "successfully deleted attachment"

	CreateAppointmentSuccessMessage = "successfully created appointment"
	GetAppointmentsSuccessMessage   = "successfully fetched appointments"
	GetAppointmentSuccessMessage    = "successfully fetched appointment"
	UpdateAppointmentSuccessMessage = "successfully updated appointment"
	DeleteAppointmentSuccessMessage = "successfully deleted appointment"
)
