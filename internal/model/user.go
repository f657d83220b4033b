package model

import (
	"strings"
	"time"
)

// Plan values accepted at registration.
const (
	PlanFree = "free"
	PlanPaid = "paid"
)

// User represents a registered member in the database.
// Nullable columns are pointers.
type User struct {
	ID            int64
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       *string
	City          *string
	State         *string
	Zip           *string
	Birthdate     time.Time
	Gender        string
	PasswordHash  string
	Plan          string
	PlanType      *string
	PaymentMethod *string
	APIKey        *string
	RegisteredAt  time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	FirstName             string  `json:"firstName"`
	LastName              string  `json:"lastName"`
	Email                 string  `json:"email"`
	Phone                 string  `json:"phone"`
	Address               *string `json:"address"`
	City                  *string `json:"city"`
	State                 *string `json:"state"`
	Zip                   *string `json:"zip"`
	Birthdate             string  `json:"birthdate"`
	Gender                string  `json:"gender"`
	Password              string  `json:"password"`
	ConfirmPassword       string  `json:"confirmPassword"`
	Plan                  string  `json:"plan"`
	PlanType              *string `json:"planType"`
	SelectedPaymentMethod *string `json:"selectedPaymentMethod"`
}

// MissingFields returns the JSON names of required fields left blank, in request order.
func (r RegisterRequest) MissingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
		{"phone", r.Phone},
		{"birthdate", r.Birthdate},
		{"gender", r.Gender},
		{"password", r.Password},
		{"confirmPassword", r.ConfirmPassword},
		{"plan", r.Plan},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents a password reset request.
type ForgotPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

// RegisteredUser is the public projection returned after registration.
type RegisteredUser struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}

// RegisterResponse is returned by POST /api/register.
type RegisterResponse struct {
	Message string         `json:"message"`
	User    RegisteredUser `json:"user"`
}

// UserProfile represents user data safe for API responses (no credential fields).
type UserProfile struct {
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       *string   `json:"address"`
	City          *string   `json:"city"`
	State         *string   `json:"state"`
	Zip           *string   `json:"zip"`
	Birthdate     string    `json:"birthdate"`
	Gender        string    `json:"gender"`
	Plan          string    `json:"plan"`
	PlanType      *string   `json:"plan_type"`
	PaymentMethod *string   `json:"payment_method"`
	RegisteredAt  time.Time `json:"registered_at"`
}

// LoginResponse carries the login token, the API key and the caller's profile.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	APIKey  string      `json:"api_key"`
	User    UserProfile `json:"user"`
}

// ProfileOf projects a stored user onto its public profile.
func ProfileOf(u *User) UserProfile {
	return UserProfile{
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Phone:         u.Phone,
		Address:       u.Address,
		City:          u.City,
		State:         u.State,
		Zip:           u.Zip,
		Birthdate:     u.Birthdate.Format(DateLayout),
		Gender:        u.Gender,
		Plan:          u.Plan,
		PlanType:      u.PlanType,
		PaymentMethod: u.PaymentMethod,
		RegisteredAt:  u.RegisteredAt,
	}
}

// DateLayout is the wire format for calendar dates such as birthdate.
const DateLayout = "2006-01-02"
