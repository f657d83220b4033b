package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gymtrack/gymtrack-api/internal/crypto"
	"github.com/gymtrack/gymtrack-api/internal/model"
	"github.com/gymtrack/gymtrack-api/internal/repository"
	"github.com/gymtrack/gymtrack-api/internal/repository/memstore"
)

var testHashParams = crypto.HashParams{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func newTestAuthService() (*AuthService, *memstore.Store) {
	store := memstore.New()
	return NewAuthService(store.Users(), crypto.NewHasher(testHashParams)), store
}

func strPtr(s string) *string { return &s }

func validRegisterRequest(email string) model.RegisterRequest {
	return model.RegisterRequest{
		FirstName:       "Ana",
		LastName:        "Lee",
		Email:           email,
		Phone:           "555-0100",
		Birthdate:       "1990-05-17",
		Gender:          "female",
		Password:        "p1",
		ConfirmPassword: "p1",
		Plan:            model.PlanFree,
	}
}

func TestRegister(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, validRegisterRequest("a@x.com"))
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if resp.User.FirstName != "Ana" || resp.User.Email != "a@x.com" {
		t.Errorf("unexpected projection: %+v", resp.User)
	}
	if resp.Message != "Welcome Ana, you've been registered successfully!" {
		t.Errorf("unexpected message: %q", resp.Message)
	}

	stored, err := store.Users().GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail() unexpected error: %v", err)
	}
	if stored.PasswordHash == "p1" || stored.PasswordHash == "" {
		t.Errorf("password stored as %q, want a digest", stored.PasswordHash)
	}
	if stored.APIKey == nil || *stored.APIKey == "" {
		t.Error("expected an API key to be assigned at registration")
	}
	if stored.PlanType != nil || stored.PaymentMethod != nil {
		t.Error("free plan should not carry plan_type or payment_method")
	}
}

func TestRegister_PaidPlanKeepsBillingFields(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	req := validRegisterRequest("paid@x.com")
	req.Plan = model.PlanPaid
	req.PlanType = strPtr("monthly")
	req.SelectedPaymentMethod = strPtr("card")

	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	u, _ := store.Users().GetByEmail(ctx, "paid@x.com")
	if u.PlanType == nil || *u.PlanType != "monthly" {
		t.Errorf("PlanType = %v, want monthly", u.PlanType)
	}
	if u.PaymentMethod == nil || *u.PaymentMethod != "card" {
		t.Errorf("PaymentMethod = %v, want card", u.PaymentMethod)
	}
}

func TestRegister_FreePlanDropsBillingFields(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	req := validRegisterRequest("free@x.com")
	req.PlanType = strPtr("monthly")
	req.SelectedPaymentMethod = strPtr("card")

	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	u, _ := store.Users().GetByEmail(ctx, "free@x.com")
	if u.PlanType != nil || u.PaymentMethod != nil {
		t.Errorf("expected billing fields dropped, got %v / %v", u.PlanType, u.PaymentMethod)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService()

	req := validRegisterRequest("a@x.com")
	req.Phone = ""
	req.Plan = ""

	_, err := svc.Register(context.Background(), req)

	var mf *MissingFieldsError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if len(mf.Fields) != 2 || mf.Fields[0] != "phone" || mf.Fields[1] != "plan" {
		t.Errorf("Fields = %v, want [phone plan]", mf.Fields)
	}
	if mf.Error() != "Missing required fields: phone, plan" {
		t.Errorf("unexpected message: %q", mf.Error())
	}
}

func TestRegister_BlankEmailIsMissing(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegisterRequest("   "))

	var mf *MissingFieldsError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if len(mf.Fields) != 1 || mf.Fields[0] != "email" {
		t.Errorf("Fields = %v, want [email]", mf.Fields)
	}
	if _, err := store.Users().GetByEmail(ctx, ""); err == nil {
		t.Error("expected no user stored under an empty email")
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc, _ := newTestAuthService()

	req := validRegisterRequest("a@x.com")
	req.ConfirmPassword = "p2"

	if _, err := svc.Register(context.Background(), req); err != ErrPasswordMismatch {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestRegister_PasswordMismatchBeforeDuplicateCheck(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterRequest("a@x.com")); err != nil {
		t.Fatal(err)
	}

	req := validRegisterRequest("a@x.com")
	req.ConfirmPassword = "other"
	if _, err := svc.Register(ctx, req); err != ErrPasswordMismatch {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestRegister_InvalidBirthdate(t *testing.T) {
	svc, _ := newTestAuthService()

	req := validRegisterRequest("a@x.com")
	req.Birthdate = "17/05/1990"

	if _, err := svc.Register(context.Background(), req); err != ErrInvalidBirthdate {
		t.Errorf("expected ErrInvalidBirthdate, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterRequest("a@x.com")); err != nil {
		t.Fatal(err)
	}

	dup := validRegisterRequest("  A@X.com ")
	dup.FirstName = "Other"
	if _, err := svc.Register(ctx, dup); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if ErrEmailTaken.Error() != "Email already registered." {
		t.Errorf("unexpected message: %q", ErrEmailTaken.Error())
	}

	u, err := store.Users().GetByEmail(ctx, "a@x.com")
	if err != nil || u.FirstName != "Ana" {
		t.Errorf("first user should remain retrievable, got %+v, %v", u, err)
	}
}

// racingStore hides existing users from GetByEmail so the duplicate is only
// caught by the store's unique constraint.
type racingStore struct {
	UserStore
}

func (racingStore) GetByEmail(context.Context, string) (*model.User, error) {
	return nil, repository.ErrUserNotFound
}

func TestRegister_DuplicateCaughtByStore(t *testing.T) {
	store := memstore.New()
	svc := NewAuthService(racingStore{store.Users()}, crypto.NewHasher(testHashParams))
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterRequest("a@x.com")); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(ctx, validRegisterRequest("a@x.com")); err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterRequest("a@x.com")); err != nil {
		t.Fatal(err)
	}

	resp, err := svc.Login(ctx, model.LoginRequest{Email: "a@x.com", Password: "p1"})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if len(resp.Token) != crypto.TokenLength {
		t.Errorf("token length = %d, want %d", len(resp.Token), crypto.TokenLength)
	}

	stored, _ := store.Users().GetByEmail(ctx, "a@x.com")
	if resp.APIKey != *stored.APIKey {
		t.Errorf("APIKey = %q, want stored key %q", resp.APIKey, *stored.APIKey)
	}
	if resp.User.Birthdate != "1990-05-17" || resp.User.LastName != "Lee" {
		t.Errorf("unexpected profile: %+v", resp.User)
	}
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterRequest("a@x.com")); err != nil {
		t.Fatal(err)
	}

	_, wrongPassword := svc.Login(ctx, model.LoginRequest{Email: "a@x.com", Password: "nope"})
	_, unknownEmail := svc.Login(ctx, model.LoginRequest{Email: "ghost@x.com", Password: "p1"})

	if wrongPassword != ErrInvalidCredentials || unknownEmail != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials twice, got %v and %v", wrongPassword, unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Error("error messages must not reveal whether the account exists")
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService()

	for _, req := range []model.LoginRequest{{Email: "a@x.com"}, {Password: "p1"}, {}} {
		if _, err := svc.Login(context.Background(), req); err != ErrLoginFieldsRequired {
			t.Errorf("Login(%+v) error = %v, want ErrLoginFieldsRequired", req, err)
		}
	}
}

func TestLogin_PlaceholderAPIKey(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	hash, _ := crypto.NewHasher(testHashParams).Hash("pw")
	legacy := &model.User{Email: "legacy@x.com", FirstName: "Old", PasswordHash: hash}
	if err := store.Users().Create(ctx, legacy); err != nil {
		t.Fatal(err)
	}

	resp, err := svc.Login(ctx, model.LoginRequest{Email: "legacy@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if resp.APIKey != placeholderAPIKey {
		t.Errorf("APIKey = %q, want %q", resp.APIKey, placeholderAPIKey)
	}
}

func TestForgotPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterRequest("a@x.com")); err != nil {
		t.Fatal(err)
	}

	if err := svc.ForgotPassword(ctx, model.ForgotPasswordRequest{Email: "a@x.com", NewPassword: "p2"}); err != nil {
		t.Fatalf("ForgotPassword() unexpected error: %v", err)
	}

	if _, err := svc.Login(ctx, model.LoginRequest{Email: "a@x.com", Password: "p2"}); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
	if _, err := svc.Login(ctx, model.LoginRequest{Email: "a@x.com", Password: "p1"}); err != ErrInvalidCredentials {
		t.Errorf("login with old password error = %v, want ErrInvalidCredentials", err)
	}
}

func TestForgotPassword_Errors(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  model.ForgotPasswordRequest
		want error
	}{
		{name: "missing email", req: model.ForgotPasswordRequest{NewPassword: "x"}, want: ErrResetFieldsRequired},
		{name: "missing new password", req: model.ForgotPasswordRequest{Email: "a@x.com"}, want: ErrResetFieldsRequired},
		{name: "unknown email", req: model.ForgotPasswordRequest{Email: "ghost@x.com", NewPassword: "x"}, want: ErrEmailNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.ForgotPassword(ctx, tt.req); err != tt.want {
				t.Errorf("ForgotPassword() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterRequest("a@x.com")); err != nil {
		t.Fatal(err)
	}
	stored, _ := store.Users().GetByEmail(ctx, "a@x.com")

	u, err := svc.Authorize(ctx, *stored.APIKey)
	if err != nil {
		t.Fatalf("Authorize() unexpected error: %v", err)
	}
	if u.Email != "a@x.com" {
		t.Errorf("Authorize() email = %q", u.Email)
	}

	for _, key := range []string{"", "   ", "not-a-key"} {
		if _, err := svc.Authorize(ctx, key); err != ErrInvalidAPIKey {
			t.Errorf("Authorize(%q) error = %v, want ErrInvalidAPIKey", key, err)
		}
	}
}

func TestAuthorize_LoginTokenIsNotAnAPIKey(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterRequest("a@x.com")); err != nil {
		t.Fatal(err)
	}
	resp, err := svc.Login(ctx, model.LoginRequest{Email: "a@x.com", Password: "p1"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Authorize(ctx, resp.Token); err != ErrInvalidAPIKey {
		t.Errorf("Authorize(token) error = %v, want ErrInvalidAPIKey", err)
	}
}

func TestDeleteUser(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterRequest("a@x.com")); err != nil {
		t.Fatal(err)
	}
	u, _ := store.Users().GetByEmail(ctx, "a@x.com")

	if err := svc.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("DeleteUser() unexpected error: %v", err)
	}
	if _, err := store.Users().GetByEmail(ctx, "a@x.com"); err != repository.ErrUserNotFound {
		t.Errorf("user still retrievable after delete: %v", err)
	}
	if err := svc.DeleteUser(ctx, u.ID); err != ErrUserNotFound {
		t.Errorf("second DeleteUser() error = %v, want ErrUserNotFound", err)
	}
	if err := svc.DeleteUser(ctx, 0); err != ErrInvalidID {
		t.Errorf("DeleteUser(0) error = %v, want ErrInvalidID", err)
	}
}
