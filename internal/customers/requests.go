package customers

import (
	"fmt"

	"github.com/clienthub/backend/internal/httperr"
	"github.com/clienthub/backend/internal/models"
	"github.com/clienthub/backend/internal/validate"
)

const (
	maxNoteLength        = 512
	maxDescriptionLength = 1000
)

type phoneRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Designation string `json:"designation"`
}

func (r *phoneRequest) Violations() []httperr.FieldError {
	return r.violationsAt("")
}

func (r *phoneRequest) violationsAt(prefix string) []httperr.FieldError {
	var violations []httperr.FieldError
	if v := validate.Required(prefix+"phoneNumber", r.PhoneNumber); v != nil {
		violations = append(violations, *v)
	}
	if v := validate.Required(prefix+"designation", r.Designation); v != nil {
		violations = append(violations, *v)
	}
	return violations
}

type addressRequest struct {
	AddressLine1  string  `json:"addressLine1"`
	AddressLine2  *string `json:"addressLine2"`
	City          string  `json:"city"`
	StateProvince *string `json:"stateProvince"`
	PostalCode    *string `json:"postalCode"`
	Region        *string `json:"region"`
	District      *string `json:"district"`
	Country       string  `json:"country"`
	AddressType   *string `json:"addressType"`
}

func (r *addressRequest) Violations() []httperr.FieldError {
	return r.violationsAt("")
}

func (r *addressRequest) violationsAt(prefix string) []httperr.FieldError {
	var violations []httperr.FieldError
	if v := validate.Required(prefix+"addressLine1", r.AddressLine1); v != nil {
		violations = append(violations, *v)
	}
	if v := validate.Required(prefix+"city", r.City); v != nil {
		violations = append(violations, *v)
	}
	if v := validate.Required(prefix+"country", r.Country); v != nil {
		violations = append(violations, *v)
	}
	return violations
}

func (r *addressRequest) model(customerID string) models.CustomerAddress {
	return models.CustomerAddress{
		CustomerID:    customerID,
		AddressLine1:  r.AddressLine1,
		AddressLine2:  r.AddressLine2,
		City:          r.City,
		StateProvince: r.StateProvince,
		PostalCode:    r.PostalCode,
		Region:        r.Region,
		District:      r.District,
		Country:       r.Country,
		AddressType:   r.AddressType,
	}
}

type customerRequest struct {
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Email     string           `json:"email"`
	Phones    []phoneRequest   `json:"phones"`
	Addresses []addressRequest `json:"addresses"`
}

func (r *customerRequest) Violations() []httperr.FieldError {
	var violations []httperr.FieldError
	if v := validate.Required("firstName", r.FirstName); v != nil {
		violations = append(violations, *v)
	}
	if v := validate.Required("lastName", r.LastName); v != nil {
		violations = append(violations, *v)
	}
	if v := validate.Email("email", r.Email); v != nil {
		violations = append(violations, *v)
	}
	for i := range r.Phones {
		violations = append(violations, r.Phones[i].violationsAt(fmt.Sprintf("phones[%d].", i))...)
	}
	for i := range r.Addresses {
		violations = append(violations, r.Addresses[i].violationsAt(fmt.Sprintf("addresses[%d].", i))...)
	}
	return violations
}

type customerUpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (r *customerUpdateRequest) Violations() []httperr.FieldError {
	var violations []httperr.FieldError
	if v := validate.Required("firstName", r.FirstName); v != nil {
		violations = append(violations, *v)
	}
	if v := validate.Required("lastName", r.LastName); v != nil {
		violations = append(violations, *v)
	}
	if v := validate.Email("email", r.Email); v != nil {
		violations = append(violations, *v)
	}
	return violations
}

type customerPatchRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

func (r *customerPatchRequest) Violations() []httperr.FieldError {
	var violations []httperr.FieldError
	if r.FirstName == nil && r.LastName == nil && r.Email == nil {
		return []httperr.FieldError{{Field: "body", Message: "at least one field is required"}}
	}
	if r.FirstName != nil {
		if v := validate.Required("firstName", *r.FirstName); v != nil {
			violations = append(violations, *v)
		}
	}
	if r.LastName != nil {
		if v := validate.Required("lastName", *r.LastName); v != nil {
			violations = append(violations, *v)
		}
	}
	if r.Email != nil {
		if v := validate.Email("email", *r.Email); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}

type noteRequest struct {
	Note string `json:"note"`
}

func (r *noteRequest) Violations() []httperr.FieldError {
	var violations []httperr.FieldError
	if v := validate.Required("note", r.Note); v != nil {
		violations = append(violations, *v)
	}
	if v := validate.MaxLen("note", r.Note, maxNoteLength); v != nil {
		violations = append(violations, *v)
	}
	return violations
}

type reminderRequest struct {
	Description validate.NullableString `json:"description"`
	DueDate     string                  `json:"dueDate"`
	Priority    string                  `json:"priority"`
}

func (r *reminderRequest) Violations() []httperr.FieldError {
	var violations []httperr.FieldError
	if v := validate.Required("dueDate", r.DueDate); v != nil {
		violations = append(violations, *v)
	} else if _, v := validate.Timestamp("dueDate", r.DueDate); v != nil {
		violations = append(violations, *v)
	}
	if r.Description.Valid {
		if v := validate.MaxLen("description", r.Description.Value, maxDescriptionLength); v != nil {
			violations = append(violations, *v)
		}
	}
	if r.Priority != "" {
		if v := validate.Enum("priority", r.Priority, models.Priorities); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}

type reminderPatchRequest struct {
	Description   validate.NullableString `json:"description"`
	DueDate       *string                 `json:"dueDate"`
	Priority      *string                 `json:"priority"`
	DateCompleted validate.NullableString `json:"dateCompleted"`
}

func (r *reminderPatchRequest) Violations() []httperr.FieldError {
	var violations []httperr.FieldError
	if r.DueDate != nil {
		if _, v := validate.Timestamp("dueDate", *r.DueDate); v != nil {
			violations = append(violations, *v)
		}
	}
	if r.Description.Valid {
		if v := validate.MaxLen("description", r.Description.Value, maxDescriptionLength); v != nil {
			violations = append(violations, *v)
		}
	}
	if r.Priority != nil {
		if v := validate.Enum("priority", *r.Priority, models.Priorities); v != nil {
			violations = append(violations, *v)
		}
	}
	if r.DateCompleted.Valid {
		if _, v := validate.Timestamp("dateCompleted", r.DateCompleted.Value); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}
