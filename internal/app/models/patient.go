package models

import "time"

type Patient struct {
	ID          string       `bson:"_id,omitempty"`
	Name        string       `bson:"name"`
	Email       string       `bson:"email"`
	Phone       string       `bson:"phone"`
	BirthDate   string       `bson:"birthDate,omitempty"`
	Address     string       `bson:"address,omitempty"`
	Notes       string       `bson:"notes,omitempty"`
	Attachments []Attachment `bson:"attachments"`
	TimeModel   `bson:",inline"`
}

// Attachment is embedded in its owning patient document. Depending on the
// configured storage mode exactly one of ObjectName or Data carries the
// payload; the other stays empty.
type Attachment struct {
	ID           string    `bson:"id"`
	OriginalName string    `bson:"originalName"`
	ContentType  string    `bson:"contentType"`
	Size         int64     `bson:"size"`
	ObjectName   string    `bson:"objectName,omitempty"`
	Data         []byte    `bson:"data,omitempty"`
	UploadedAt   time.Time `bson:"uploadedAt"`
}
