package service

import (
	"peerlearn_backend/internal/model"
	"peerlearn_backend/internal/repository"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(repository.NewUserRepository(db)), db
}

func setLastActivity(t *testing.T, svc *UserService, userID string, at time.Time, streak int) {
	t.Helper()

	if err := svc.UserRepo.UpdateStreak(userID, streak, at); err != nil {
		t.Fatalf("set streak: %v", err)
	}
}

func TestStreakStartsAtOne(t *testing.T) {
	svc, db := newUserService(t)
	user := createTestUser(t, db, "ivy", 0)

	if err := svc.RecordActivity(user.ID); err != nil {
		t.Fatalf("record activity: %v", err)
	}

	got := reloadUser(t, db, user.ID)
	if got.StreakCount != 1 {
		t.Fatalf("streak = %d, want 1", got.StreakCount)
	}
	if got.LastActivity == nil {
		t.Fatal("last activity not set")
	}
}

func TestStreakSameDayNoOp(t *testing.T) {
	svc, db := newUserService(t)
	user := createTestUser(t, db, "jack", 0)

	setLastActivity(t, svc, user.ID, time.Now().Add(-time.Hour), 3)

	if err := svc.RecordActivity(user.ID); err != nil {
		t.Fatalf("record activity: %v", err)
	}
	if got := reloadUser(t, db, user.ID); got.StreakCount != 3 {
		t.Fatalf("streak = %d, want unchanged 3", got.StreakCount)
	}
}

func TestStreakExtendsNextDay(t *testing.T) {
	svc, db := newUserService(t)
	user := createTestUser(t, db, "kira", 0)

	setLastActivity(t, svc, user.ID, time.Now().AddDate(0, 0, -1), 3)

	if err := svc.RecordActivity(user.ID); err != nil {
		t.Fatalf("record activity: %v", err)
	}
	if got := reloadUser(t, db, user.ID); got.StreakCount != 4 {
		t.Fatalf("streak = %d, want 4", got.StreakCount)
	}
}

func TestStreakUpdateLeavesCoinBalanceAlone(t *testing.T) {
	svc, db := newUserService(t)
	user := createTestUser(t, db, "mona", 0)

	// a coin credit landing between the streak read and write must survive
	stale, err := svc.UserRepo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	err = db.Model(&model.User{}).Where("id = ?", user.ID).
		Update("coins", gorm.Expr("coins + ?", 20)).Error
	if err != nil {
		t.Fatalf("credit coins: %v", err)
	}

	if err := svc.UserRepo.UpdateStreak(user.ID, stale.StreakCount+1, time.Now()); err != nil {
		t.Fatalf("update streak: %v", err)
	}

	got := reloadUser(t, db, user.ID)
	if got.Coins != 20 {
		t.Fatalf("coins after streak update = %d, want 20", got.Coins)
	}
	if got.StreakCount != 1 {
		t.Fatalf("streak = %d, want 1", got.StreakCount)
	}
}

func TestStreakResetsAfterGap(t *testing.T) {
	svc, db := newUserService(t)
	user := createTestUser(t, db, "liam", 0)

	setLastActivity(t, svc, user.ID, time.Now().AddDate(0, 0, -3), 7)

	if err := svc.RecordActivity(user.ID); err != nil {
		t.Fatalf("record activity: %v", err)
	}
	if got := reloadUser(t, db, user.ID); got.StreakCount != 1 {
		t.Fatalf("streak = %d, want reset to 1", got.StreakCount)
	}
}
