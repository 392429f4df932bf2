package utils

import (
	"EAsha/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ValidateWorkerData checks a worker account submitted by the admin screens.
func ValidateWorkerData(worker models.Worker) error {
	return validation.ValidateStruct(&worker,
		validation.Field(&worker.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&worker.Password, validation.Required.Error("password cannot be blank")),
		validation.Field(&worker.Name, validation.Required),
		validation.Field(&worker.Mobile, validation.Required, is.Digit, validation.Length(10, 10)),
		validation.Field(&worker.Location, validation.Required),
	)
}

// ValidateLoginForm checks that both credential fields were submitted.
func ValidateLoginForm(username, password string) error {
	return validation.Errors{
		"username": validation.Validate(username, validation.Required),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
}

// ValidateIntakeForm checks presence of the three patient draft fields.
// Presence only: age deliberately stays free text.
func ValidateIntakeForm(name, age, mobile string) error {
	return validation.Errors{
		"name":   validation.Validate(name, validation.Required),
		"age":    validation.Validate(age, validation.Required),
		"mobile": validation.Validate(mobile, validation.Required),
	}.Filter()
}
