package models

import "time"

type Appointment struct {
	ID              string    `bson:"_id,omitempty"`
	PatientID       string    `bson:"patientId"`
	DentistName     string    `bson:"dentistName"`
	StartTime       time.Time `bson:"startTime"`
	DurationMinutes int       `bson:"durationMinutes"`
	Reason          string    `bson:"reason,omitempty"`
	Status          string    `bson:"status"`
	TimeModel       `bson:",inline"`
}
