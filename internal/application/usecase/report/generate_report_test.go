package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// fakeUserRepo is an in-memory UserRepository for report tests.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakeTransactionRepo implements only the parts of TransactionRepository the
// report path exercises; everything else is unreachable from this use case.
type fakeTransactionRepo struct {
	transactions   []*entity.Transaction
	dateRangeCalls int
}

func (r *fakeTransactionRepo) Create(_ context.Context, _ *entity.Transaction) error {
	return errors.New("not implemented")
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeTransactionRepo) FindByIDWithCategory(_ context.Context, _ uuid.UUID) (*entity.TransactionWithCategory, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.TransactionWithCategory, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeTransactionRepo) FindByCategory(_ context.Context, _ uuid.UUID) ([]*entity.TransactionWithCategory, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeTransactionRepo) FindByUserAndDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	r.dateRangeCalls++
	var results []*entity.Transaction
	for _, trx := range r.transactions {
		if trx.UserID == userID && !trx.TrxDate.Before(start) && !trx.TrxDate.After(end) {
			results = append(results, trx)
		}
	}
	return results, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error {
	return errors.New("not implemented")
}

func (r *fakeTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return errors.New("not implemented")
}

func TestGenerateReportUseCase_Execute(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("sums income and expense into a balance", func(t *testing.T) {
		user := entity.NewUser("Ana Lima", "ana@example.com")
		salary := uuid.New()
		groceries := uuid.New()

		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			entity.NewTransaction(user.ID, salary, entity.TransactionTypeIncome, decimal.NewFromFloat(100.00), day(5), ""),
			entity.NewTransaction(user.ID, groceries, entity.TransactionTypeExpense, decimal.NewFromFloat(25.50), day(10), ""),
			entity.NewTransaction(user.ID, groceries, entity.TransactionTypeExpense, decimal.NewFromFloat(14.50), day(15), ""),
		}}

		uc := NewGenerateReportUseCase(newFakeUserRepo(user), repo)

		output, err := uc.Execute(context.Background(), GenerateReportInput{
			UserID:    user.ID,
			StartDate: day(1),
			EndDate:   day(31),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.TotalIncome.Equal(decimal.NewFromFloat(100.00)) {
			t.Errorf("expected total income 100.00, got %s", output.TotalIncome)
		}
		if !output.TotalExpense.Equal(decimal.NewFromFloat(40.00)) {
			t.Errorf("expected total expense 40.00, got %s", output.TotalExpense)
		}
		if !output.Balance.Equal(decimal.NewFromFloat(60.00)) {
			t.Errorf("expected balance 60.00, got %s", output.Balance)
		}
	})

	t.Run("excludes transactions outside the inclusive range", func(t *testing.T) {
		user := entity.NewUser("Ana Lima", "ana@example.com")
		category := uuid.New()

		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			entity.NewTransaction(user.ID, category, entity.TransactionTypeExpense, decimal.NewFromInt(1), day(4), ""),
			entity.NewTransaction(user.ID, category, entity.TransactionTypeExpense, decimal.NewFromInt(2), day(5), ""),
			entity.NewTransaction(user.ID, category, entity.TransactionTypeExpense, decimal.NewFromInt(4), day(20), ""),
			entity.NewTransaction(user.ID, category, entity.TransactionTypeExpense, decimal.NewFromInt(8), day(21), ""),
		}}

		uc := NewGenerateReportUseCase(newFakeUserRepo(user), repo)

		output, err := uc.Execute(context.Background(), GenerateReportInput{
			UserID:    user.ID,
			StartDate: day(5),
			EndDate:   day(20),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Boundary days 5 and 20 are in, 4 and 21 are out.
		if !output.TotalExpense.Equal(decimal.NewFromInt(6)) {
			t.Errorf("expected total expense 6, got %s", output.TotalExpense)
		}
	})

	t.Run("returns zero totals for an empty range", func(t *testing.T) {
		user := entity.NewUser("Ana Lima", "ana@example.com")
		repo := &fakeTransactionRepo{}
		uc := NewGenerateReportUseCase(newFakeUserRepo(user), repo)

		output, err := uc.Execute(context.Background(), GenerateReportInput{
			UserID:    user.ID,
			StartDate: day(1),
			EndDate:   day(31),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.TotalIncome.IsZero() || !output.TotalExpense.IsZero() || !output.Balance.IsZero() {
			t.Errorf("expected all-zero report, got income=%s expense=%s balance=%s",
				output.TotalIncome, output.TotalExpense, output.Balance)
		}
	})

	t.Run("is read-only and repeatable", func(t *testing.T) {
		user := entity.NewUser("Ana Lima", "ana@example.com")
		category := uuid.New()
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			entity.NewTransaction(user.ID, category, entity.TransactionTypeIncome, decimal.NewFromInt(50), day(10), ""),
		}}
		uc := NewGenerateReportUseCase(newFakeUserRepo(user), repo)

		input := GenerateReportInput{UserID: user.ID, StartDate: day(1), EndDate: day(31)}

		first, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !first.Balance.Equal(second.Balance) {
			t.Errorf("expected identical balances, got %s and %s", first.Balance, second.Balance)
		}
	})

	t.Run("rejects an inverted date range before touching storage", func(t *testing.T) {
		user := entity.NewUser("Ana Lima", "ana@example.com")
		repo := &fakeTransactionRepo{}
		uc := NewGenerateReportUseCase(newFakeUserRepo(user), repo)

		_, err := uc.Execute(context.Background(), GenerateReportInput{
			UserID:    user.ID,
			StartDate: day(20),
			EndDate:   day(5),
		})

		assertReportErrorCode(t, err, domainerror.ErrCodeInvalidDateRange)
		if repo.dateRangeCalls != 0 {
			t.Errorf("expected no storage calls, got %d", repo.dateRangeCalls)
		}
	})

	t.Run("fails when user does not exist", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		uc := NewGenerateReportUseCase(newFakeUserRepo(), repo)

		_, err := uc.Execute(context.Background(), GenerateReportInput{
			UserID:    uuid.New(),
			StartDate: day(1),
			EndDate:   day(31),
		})

		assertReportErrorCode(t, err, domainerror.ErrCodeReportUserNotFound)
	})
}

func assertReportErrorCode(t *testing.T, err error, want domainerror.ReportErrorCode) {
	t.Helper()

	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var rptErr *domainerror.ReportError
	if !errors.As(err, &rptErr) {
		t.Fatalf("expected ReportError, got %T: %v", err, err)
	}

	if rptErr.Code != want {
		t.Errorf("expected code %s, got %s", want, rptErr.Code)
	}
}
