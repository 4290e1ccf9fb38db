package requests

import "io"

// UploadAttachment carries an upload after the controller has drained the
// multipart part; the usecase never touches the transport.
type UploadAttachment struct {
	PatientID    string
	OriginalName string
	ContentType  string
	Size         int64
	Payload      io.Reader
}
