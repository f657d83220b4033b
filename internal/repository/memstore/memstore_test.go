package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/gymtrack/gymtrack-api/internal/model"
	"github.com/gymtrack/gymtrack-api/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	users := New().Users()
	ctx := context.Background()

	if err := users.Create(ctx, &model.User{Email: "a@x.com"}); err != nil {
		t.Fatalf("first Create() unexpected error: %v", err)
	}
	if err := users.Create(ctx, &model.User{Email: "a@x.com"}); err != repository.ErrDuplicateEmail {
		t.Fatalf("second Create() error = %v, want ErrDuplicateEmail", err)
	}
	if _, err := users.GetByEmail(ctx, "a@x.com"); err != nil {
		t.Fatalf("GetByEmail() after duplicate: %v", err)
	}
}

func TestCreateConcurrentSameEmail(t *testing.T) {
	users := New().Users()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- users.Create(context.Background(), &model.User{Email: "race@x.com"})
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch err {
		case nil:
			ok++
		case repository.ErrDuplicateEmail:
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || dup != 9 {
		t.Errorf("got %d successes and %d duplicates, want 1 and 9", ok, dup)
	}
}

func TestGetByAPIKey(t *testing.T) {
	users := New().Users()
	ctx := context.Background()

	if err := users.Create(ctx, &model.User{Email: "a@x.com", APIKey: strPtr("k1")}); err != nil {
		t.Fatal(err)
	}
	if err := users.Create(ctx, &model.User{Email: "b@x.com"}); err != nil {
		t.Fatal(err)
	}

	u, err := users.GetByAPIKey(ctx, "k1")
	if err != nil || u.Email != "a@x.com" {
		t.Fatalf("GetByAPIKey(k1) = %v, %v", u, err)
	}
	for _, key := range []string{"", "nope"} {
		if _, err := users.GetByAPIKey(ctx, key); err != repository.ErrUserNotFound {
			t.Errorf("GetByAPIKey(%q) error = %v, want ErrUserNotFound", key, err)
		}
	}
	if err := users.Create(ctx, &model.User{Email: "c@x.com", APIKey: strPtr("k1")}); err != repository.ErrDuplicateAPIKey {
		t.Errorf("Create() with reused key error = %v, want ErrDuplicateAPIKey", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	store := New()
	ctx := context.Background()

	owner := &model.User{Email: "a@x.com"}
	other := &model.User{Email: "b@x.com"}
	for _, u := range []*model.User{owner, other} {
		if err := store.Users().Create(ctx, u); err != nil {
			t.Fatal(err)
		}
	}
	for _, uid := range []int64{owner.ID, other.ID} {
		if err := store.Workouts().Create(ctx, &model.Workout{UserID: uid, Name: "run"}); err != nil {
			t.Fatal(err)
		}
		if err := store.Reminders().Create(ctx, &model.Reminder{UserID: uid, Task: "Yoga"}); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.Users().Delete(ctx, owner.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if err := store.Users().Delete(ctx, owner.ID); err != repository.ErrUserNotFound {
		t.Fatalf("second Delete() error = %v, want ErrUserNotFound", err)
	}

	if _, err := store.Users().GetByEmail(ctx, "a@x.com"); err != repository.ErrUserNotFound {
		t.Errorf("GetByEmail() after delete error = %v", err)
	}
	if ws, _ := store.Workouts().ListByUserEmail(ctx, "a@x.com"); len(ws) != 0 {
		t.Errorf("expected no workouts for deleted user, got %d", len(ws))
	}
	all, _ := store.Workouts().List(ctx)
	if len(all) != 1 || all[0].UserID != other.ID {
		t.Errorf("expected only the other user's workout to remain, got %+v", all)
	}
	if rs, _ := store.Reminders().ListByUserEmail(ctx, "b@x.com"); len(rs) != 1 {
		t.Errorf("expected other user's reminder to remain, got %d", len(rs))
	}
}

func TestWorkoutRequiresOwner(t *testing.T) {
	store := New()
	err := store.Workouts().Create(context.Background(), &model.Workout{UserID: 42})
	if err != repository.ErrUserNotFound {
		t.Errorf("Create() error = %v, want ErrUserNotFound", err)
	}
}

func TestWorkoutListByUserEmailNewestFirst(t *testing.T) {
	store := New()
	ctx := context.Background()

	u := &model.User{Email: "a@x.com"}
	if err := store.Users().Create(ctx, u); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"first", "second", "third"} {
		if err := store.Workouts().Create(ctx, &model.Workout{UserID: u.ID, Name: name}); err != nil {
			t.Fatal(err)
		}
	}

	ws, err := store.Workouts().ListByUserEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(ws) != 3 || ws[0].Name != "third" || ws[2].Name != "first" {
		t.Errorf("unexpected order: %+v", ws)
	}
}
