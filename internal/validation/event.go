package validation

import (
	"strings"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/api/request"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
)

// ValidateCreateEvent validates an event creation request.
//
// Required fields:
//   - ticker: non-empty
//   - exDate: YYYY-MM-DD
//
// Optional fields (validated if provided):
//   - payDate: YYYY-MM-DD
//   - amount, yield, yieldOnCost, price: non-negative
//   - status: "Confirmed" or "Projected"
//
// Returns a validation Error with field-specific messages if validation fails.
func ValidateCreateEvent(req request.CreateEventRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Ticker) == "" {
		errors["ticker"] = "ticker is required"
	}

	if strings.TrimSpace(req.ExDate) == "" {
		errors["exDate"] = "date is required"
	} else if _, err := ParseDate(req.ExDate); err != nil {
		errors["exDate"] = err.Error()
	}

	if req.PayDate != "" {
		if _, err := ParseDate(req.PayDate); err != nil {
			errors["payDate"] = err.Error()
		}
	}

	validateNonNegative(errors, "amount", req.Amount)
	validateNonNegative(errors, "yield", req.Yield)
	validateNonNegative(errors, "yieldOnCost", req.YieldOnCost)
	validateNonNegative(errors, "price", req.Price)

	if req.Status != "" && req.Status != model.StatusConfirmed && req.Status != model.StatusProjected {
		errors["status"] = "status must be Confirmed or Projected"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateEvent validates an event update request. All fields are
// optional, but provided fields must meet the same constraints as create.
func ValidateUpdateEvent(req request.UpdateEventRequest) error {
	errors := make(map[string]string)

	if req.Ticker != nil && strings.TrimSpace(*req.Ticker) == "" {
		errors["ticker"] = "ticker cannot be empty"
	}

	if req.ExDate != nil {
		if _, err := ParseDate(*req.ExDate); err != nil {
			errors["exDate"] = err.Error()
		}
	}

	// An explicit empty payDate clears the field; anything else must parse.
	if req.PayDate != nil && *req.PayDate != "" {
		if _, err := ParseDate(*req.PayDate); err != nil {
			errors["payDate"] = err.Error()
		}
	}

	validateNonNegative(errors, "amount", req.Amount)
	validateNonNegative(errors, "yield", req.Yield)
	validateNonNegative(errors, "yieldOnCost", req.YieldOnCost)
	validateNonNegative(errors, "price", req.Price)

	if req.Status != nil && *req.Status != model.StatusConfirmed && *req.Status != model.StatusProjected {
		errors["status"] = "status must be Confirmed or Projected"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateCreateCashEvent validates a cash contribution request.
func ValidateCreateCashEvent(req request.CreateCashEventRequest) error {
	errors := make(map[string]string)

	if req.Amount == nil {
		errors["amount"] = "amount is required"
	} else if *req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := ParseDate(req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func validateNonNegative(errors map[string]string, field string, value *float64) {
	if value != nil && *value < 0 {
		errors[field] = field + " cannot be negative"
	}
}
